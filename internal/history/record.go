// Package history persists completed practice sessions and aggregates them
// for reviewers. Records are append-only: a session is written once at
// completion and never updated.
package history

import (
	"time"

	"github.com/amrit/rehearse/internal/session"
)

// TypedEntry is one typed answer as stored on disk.
type TypedEntry struct {
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	WordCount  int       `json:"word_count"`
	Timestamp  time.Time `json:"timestamp"`
	AIFeedback string    `json:"ai_feedback,omitempty"`
}

// TimedEntry is one timed-question reflection as stored on disk.
type TimedEntry struct {
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Notes      string    `json:"notes"`
	Timestamp  time.Time `json:"timestamp"`
}

// SessionRecord is the durable form of one completed session.
type SessionRecord struct {
	StudentName      string       `json:"student_name"`
	SessionID        string       `json:"session_id"`
	SessionTimestamp time.Time    `json:"session_timestamp"`
	TypedResponses   []TypedEntry `json:"typed_responses"`
	VideoResponses   []TimedEntry `json:"video_responses"`
}

// FromSession converts a completed session into its durable record.
func FromSession(s *session.Session) SessionRecord {
	rec := SessionRecord{
		StudentName:      s.StudentName,
		SessionID:        s.ID,
		SessionTimestamp: s.StartedAt,
		TypedResponses:   []TypedEntry{},
		VideoResponses:   []TimedEntry{},
	}
	for _, r := range s.Responses {
		switch r.Kind {
		case session.KindTyped:
			rec.TypedResponses = append(rec.TypedResponses, TypedEntry{
				QuestionID: r.QuestionID,
				Question:   r.Question,
				Response:   r.Answer,
				WordCount:  r.WordCount,
				Timestamp:  r.AnsweredAt,
				AIFeedback: r.Feedback,
			})
		case session.KindTimed:
			rec.VideoResponses = append(rec.VideoResponses, TimedEntry{
				QuestionID: r.QuestionID,
				Question:   r.Question,
				Notes:      r.Answer,
				Timestamp:  r.AnsweredAt,
			})
		}
	}
	return rec
}

// ResponseCount returns the total number of responses in the record.
func (r SessionRecord) ResponseCount() int {
	return len(r.TypedResponses) + len(r.VideoResponses)
}
