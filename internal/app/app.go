// Package app wires the session engine to the terminal UI.
package app

import (
	"time"

	"github.com/amrit/rehearse/internal/catalog"
	"github.com/amrit/rehearse/internal/session"
	"github.com/amrit/rehearse/internal/tui"
)

// DefaultTimedDuration is the answer window for each timed question.
const DefaultTimedDuration = 60 * time.Second

// Options carries the dependencies for one practice session. Coach and
// Recorder are optional: without a coach the feedback toggle is hidden,
// without a recorder nothing is persisted.
type Options struct {
	Catalog       []catalog.Question
	Selector      session.SelectorConfig
	Coach         session.Coach
	Recorder      session.Recorder
	TimedDuration time.Duration
}

// Run starts a practice session and blocks until it ends.
func Run(opts Options) error {
	if opts.TimedDuration <= 0 {
		opts.TimedDuration = DefaultTimedDuration
	}

	engine := session.NewEngine(opts.Selector, opts.Coach, opts.Recorder)
	return tui.Run(engine, opts.Catalog, opts.TimedDuration)
}
