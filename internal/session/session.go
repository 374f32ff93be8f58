package session

import (
	"strings"
	"time"

	"github.com/amrit/rehearse/internal/catalog"
)

// ResponseKind distinguishes typed answers from timed-question notes.
type ResponseKind string

const (
	KindTyped ResponseKind = "typed"
	KindTimed ResponseKind = "timed"
)

// ResponseRecord is one answered question. It snapshots the question text
// so the record stays valid if the catalog changes later. Records are
// created once, when the student advances past a question, and never
// mutated afterward.
type ResponseRecord struct {
	QuestionID string
	Question   string
	Kind       ResponseKind
	Answer     string // typed answer, or self-reflection notes for timed
	WordCount  int    // typed only
	Feedback   string // optional AI feedback or placeholder
	AnsweredAt time.Time
}

// Set holds the two ordered question sequences chosen for one session.
// The sequences are disjoint by question id.
type Set struct {
	Typed []catalog.Question
	Timed []catalog.Question
}

// Session is the unit of persistence: one student's run through a practice
// interview. It is owned by the Engine until PhaseComplete, at which point
// it becomes an immutable record.
type Session struct {
	ID              string
	StudentName     string
	StartedAt       time.Time
	Phase           Phase
	Questions       Set
	Cursor          int // index into the active phase's question sequence
	Responses       []ResponseRecord
	FeedbackEnabled bool
	SavedTo         string // storage location once persisted, empty otherwise
}

// Current returns the active question for the current phase, or nil when
// the phase has no pending question.
func (s *Session) Current() *catalog.Question {
	var qs []catalog.Question
	switch s.Phase {
	case PhaseTyped:
		qs = s.Questions.Typed
	case PhaseTimed:
		qs = s.Questions.Timed
	default:
		return nil
	}
	if s.Cursor < 0 || s.Cursor >= len(qs) {
		return nil
	}
	return &qs[s.Cursor]
}

// TypedResponses returns the typed records in answer order.
func (s *Session) TypedResponses() []ResponseRecord {
	return s.responsesOfKind(KindTyped)
}

// TimedResponses returns the timed-question records in answer order.
func (s *Session) TimedResponses() []ResponseRecord {
	return s.responsesOfKind(KindTimed)
}

func (s *Session) responsesOfKind(kind ResponseKind) []ResponseRecord {
	var out []ResponseRecord
	for _, r := range s.Responses {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// newSessionID derives an identifier from the start time and the sanitized
// student name, e.g. "20260115_143002_Alex_Lee".
func newSessionID(name string, startedAt time.Time) string {
	return startedAt.Format("20060102_150405") + "_" + SanitizeName(name)
}

// SanitizeName reduces a student name to a filesystem-safe token: only
// letters, digits, spaces, dashes and underscores are kept, and spaces
// become underscores.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

// wordCount counts whitespace-separated words in a typed answer.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
