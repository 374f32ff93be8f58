package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/amrit/rehearse/internal/catalog"
)

// Validation errors rejected at the point of entry, before any state
// mutation.
var (
	ErrEmptyName   = errors.New("student name must not be empty")
	ErrEmptyAnswer = errors.New("answer must not be empty")
)

// PersistError wraps a failed durable write. The in-memory session stays in
// PhaseComplete and remains inspectable.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("could not save session: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Coach produces feedback text for one answered question. Failures never
// block progress; the engine degrades them to a stored placeholder.
type Coach interface {
	Feedback(ctx context.Context, question, answer string) (string, error)
}

// Recorder persists a completed session and returns its storage location.
type Recorder interface {
	Save(ctx context.Context, s *Session) (string, error)
}

// Engine sequences one session at a time through the phase machine. It owns
// the live Session between Start and a terminal phase.
type Engine struct {
	selector SelectorConfig
	coach    Coach
	recorder Recorder
	clock    func() time.Time
	rng      *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine clock; tests use this to fix timestamps.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRand overrides the selection rng for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine creates an Engine. Both coach and recorder may be nil: a nil
// coach means feedback is unavailable, a nil recorder means completed
// sessions are not persisted.
func NewEngine(cfg SelectorConfig, coach Coach, recorder Recorder, opts ...Option) *Engine {
	e := &Engine{
		selector: cfg,
		coach:    coach,
		recorder: recorder,
		clock:    time.Now,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FeedbackAvailable reports whether a feedback capability is configured.
func (e *Engine) FeedbackAvailable() bool {
	return e.coach != nil
}

// Start validates the student name, selects the session's questions and
// returns a new Session in PhaseTyped. A shortfall in the catalog yields a
// smaller session, never an error.
func (e *Engine) Start(bank []catalog.Question, studentName string, enableFeedback bool) (*Session, error) {
	name := strings.TrimSpace(studentName)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := e.clock()
	s := &Session{
		ID:              newSessionID(name, now),
		StudentName:     name,
		StartedAt:       now,
		Phase:           PhaseWelcome,
		Questions:       Select(bank, e.selector, e.rng),
		FeedbackEnabled: enableFeedback && e.coach != nil,
	}
	e.advance(s, PhaseTyped)
	if len(s.Questions.Typed) == 0 {
		// Nothing to type (thin catalog): go straight to the intro.
		e.advance(s, PhaseVideoIntro)
	}
	return s, nil
}

// SubmitTyped records a typed answer for the current question. Empty
// answers are rejected without mutating the session. When the feedback
// capability is enabled the call blocks on one bounded feedback request;
// a failed request degrades to a placeholder in the record.
func (e *Engine) SubmitTyped(ctx context.Context, s *Session, answer string) error {
	if s.Phase != PhaseTyped {
		return &InvalidTransitionError{From: s.Phase, Op: "submit a typed answer"}
	}
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}

	q := s.Current()
	rec := ResponseRecord{
		QuestionID: q.ID,
		Question:   q.Prompt,
		Kind:       KindTyped,
		Answer:     answer,
		WordCount:  wordCount(answer),
		AnsweredAt: e.clock(),
	}

	if s.FeedbackEnabled {
		rec.Feedback = e.fetchFeedback(ctx, q.Prompt, answer)
	}

	s.Responses = append(s.Responses, rec)
	s.Cursor++
	if s.Cursor >= len(s.Questions.Typed) {
		e.advance(s, PhaseVideoIntro)
		s.Cursor = 0
	}
	return nil
}

// BeginTimed confirms the recording instructions and enters the timed phase.
// With an empty timed set the session completes immediately.
func (e *Engine) BeginTimed(ctx context.Context, s *Session) error {
	if s.Phase != PhaseVideoIntro {
		return &InvalidTransitionError{From: s.Phase, Op: "begin the timed phase"}
	}
	e.advance(s, PhaseTimed)
	s.Cursor = 0
	if len(s.Questions.Timed) == 0 {
		return e.complete(ctx, s)
	}
	return nil
}

// SubmitNotes records self-reflection notes for the current timed question.
// Notes are always accepted, even empty, and regardless of timer expiry.
// Answering the last question completes the session and triggers the single
// durable write; a failed write is returned as a *PersistError but does not
// revert the phase.
func (e *Engine) SubmitNotes(ctx context.Context, s *Session, notes string) error {
	if s.Phase != PhaseTimed {
		return &InvalidTransitionError{From: s.Phase, Op: "submit notes"}
	}

	q := s.Current()
	s.Responses = append(s.Responses, ResponseRecord{
		QuestionID: q.ID,
		Question:   q.Prompt,
		Kind:       KindTimed,
		Answer:     notes,
		AnsweredAt: e.clock(),
	})
	s.Cursor++
	if s.Cursor < len(s.Questions.Timed) {
		return nil
	}
	return e.complete(ctx, s)
}

// complete moves the session to its terminal phase and performs the single
// durable write. The phase is advanced before saving so a failed write
// leaves a complete, inspectable in-memory record.
func (e *Engine) complete(ctx context.Context, s *Session) error {
	e.advance(s, PhaseComplete)
	if e.recorder == nil {
		return nil
	}
	location, err := e.recorder.Save(ctx, s)
	if err != nil {
		return &PersistError{Err: err}
	}
	s.SavedTo = location
	return nil
}

// Abandon aborts the session, discarding all uncommitted responses. No
// partial record is ever persisted.
func (e *Engine) Abandon(s *Session) error {
	if s.Phase.Terminal() {
		return &InvalidTransitionError{From: s.Phase, Op: "abandon the session"}
	}
	e.advance(s, PhaseAbandoned)
	return nil
}

// fetchFeedback runs one feedback request and degrades failures to
// human-readable placeholder text.
func (e *Engine) fetchFeedback(ctx context.Context, question, answer string) string {
	fb, err := e.coach.Feedback(ctx, question, answer)
	if err != nil {
		return fmt.Sprintf("Could not generate AI feedback: %v", err)
	}
	return fb
}

// advance moves the session to next, panicking on a transition the table
// forbids. All callers check phase first, so a panic here is a bug in the
// engine itself, not bad input.
func (e *Engine) advance(s *Session, next Phase) {
	if !s.Phase.CanEnter(next) {
		panic(fmt.Sprintf("illegal transition %s -> %s", s.Phase, next))
	}
	s.Phase = next
}
