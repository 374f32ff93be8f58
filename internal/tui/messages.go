package tui

import "time"

// submitDoneMsg is sent when a typed answer (and its optional feedback
// request) has been processed by the engine.
type submitDoneMsg struct {
	Feedback string
	Err      error
}

// notesDoneMsg is sent when timed-question notes have been recorded.
type notesDoneMsg struct {
	Err error
}

// timerTickMsg is sent every second while the countdown runs.
type timerTickMsg time.Time
