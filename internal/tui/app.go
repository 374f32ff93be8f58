// Package tui is the terminal front end for a practice session. It is a
// thin adapter: every state change goes through the session engine, and the
// model only holds what the screen needs to draw.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/rehearse/internal/catalog"
	"github.com/amrit/rehearse/internal/session"
	"github.com/amrit/rehearse/internal/timer"
	"github.com/amrit/rehearse/internal/ui/components"
	"github.com/amrit/rehearse/internal/ui/theme"
)

// Model is the root Bubble Tea model for a practice session.
type Model struct {
	engine        *session.Engine
	bank          []catalog.Question
	timedDuration time.Duration

	sess   *session.Session
	width  int
	height int

	// Welcome inputs.
	nameInput    components.TextInput
	wantFeedback bool
	nameErr      string

	// Typed phase.
	answer       components.TextArea
	spin         spinner.Model
	submitting   bool
	lastFeedback string
	answerErr    string

	// Timed phase.
	notes        components.TextArea
	countdown    *timer.Countdown
	timerRunning bool

	confirmQuit bool
	saveErr     string
}

// New creates the root model. The session is not started until the student
// confirms their name on the welcome screen.
func New(engine *session.Engine, bank []catalog.Question, timedDuration time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		engine:        engine,
		bank:          bank,
		timedDuration: timedDuration,
		nameInput:     components.NewTextInput("Your name...", 60),
		wantFeedback:  true,
		answer:        components.NewTextArea("Type your answer here...", 70, 8),
		notes:         components.NewTextArea("How did it go? Jot down anything you want to remember...", 70, 6),
		spin:          sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.nameInput.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.answer.SetSize(min(70, m.width-10), 8)
		m.notes.SetSize(min(70, m.width-10), 6)
		return m, nil

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case notesDoneMsg:
		return m.handleNotesDone(msg)

	case timerTickMsg:
		if m.timerRunning && m.countdown != nil {
			if m.countdown.Expired() {
				m.timerRunning = false
				return m, nil
			}
			return m, tickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m.abandonAndQuit()
	}

	if m.confirmQuit {
		switch key {
		case "y", "Y":
			return m.abandonAndQuit()
		case "n", "N", "esc":
			m.confirmQuit = false
		}
		return m, nil
	}

	// A submission in flight owns the session; ignore input until it lands.
	if m.submitting {
		return m, nil
	}

	// The feedback overlay is dismissed by any key, even when answering it
	// finished the typed phase.
	if m.lastFeedback != "" {
		m.lastFeedback = ""
		return m, nil
	}

	if key == "esc" && (m.sess == nil || !m.sess.Phase.Terminal()) {
		m.confirmQuit = true
		return m, nil
	}

	phase := session.PhaseWelcome
	if m.sess != nil {
		phase = m.sess.Phase
	}

	switch phase {
	case session.PhaseWelcome:
		return m.handleWelcomeKey(msg)
	case session.PhaseTyped:
		return m.handleTypedKey(msg)
	case session.PhaseVideoIntro:
		if key == "enter" {
			return m.beginTimed()
		}
	case session.PhaseTimed:
		return m.handleTimedKey(msg)
	case session.PhaseComplete:
		// Terminal states are only left by building a fresh session.
		if key == "r" {
			return m.restart()
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s, err := m.engine.Start(m.bank, m.nameInput.Value(), m.wantFeedback)
		if err != nil {
			if errors.Is(err, session.ErrEmptyName) {
				m.nameErr = "Please enter your name to begin."
			} else {
				m.nameErr = err.Error()
			}
			return m, nil
		}
		m.nameErr = ""
		m.sess = s
		return m, m.answer.Init()
	case "tab":
		if m.engine.FeedbackAvailable() {
			m.wantFeedback = !m.wantFeedback
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleTypedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+d" {
		if strings.TrimSpace(m.answer.Value()) == "" {
			m.answerErr = "Please write an answer before submitting."
			return m, nil
		}
		m.answerErr = ""
		m.submitting = true
		return m, tea.Batch(m.submitTypedCmd(m.answer.Value()), m.spin.Tick)
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m Model) handleTimedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Before the countdown starts, the screen only offers starting it.
	if m.countdown == nil {
		if msg.String() == "enter" {
			m.countdown = timer.Start(m.timedDuration)
			m.timerRunning = true
			return m, tea.Batch(m.notes.Init(), tickCmd())
		}
		return m, nil
	}

	if msg.String() == "ctrl+d" {
		m.submitting = true
		return m, m.submitNotesCmd(m.notes.Value())
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.sess == nil {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.sess.Phase {
	case session.PhaseTyped:
		m.answer, cmd = m.answer.Update(msg)
	case session.PhaseTimed:
		if m.countdown != nil {
			m.notes, cmd = m.notes.Update(msg)
		}
	}
	return m, cmd
}

// submitTypedCmd runs the answer submission, including the optional blocking
// feedback request, off the UI loop.
func (m Model) submitTypedCmd(answer string) tea.Cmd {
	eng, s := m.engine, m.sess
	return func() tea.Msg {
		if err := eng.SubmitTyped(context.Background(), s, answer); err != nil {
			return submitDoneMsg{Err: err}
		}
		fb := ""
		if s.FeedbackEnabled && len(s.Responses) > 0 {
			fb = s.Responses[len(s.Responses)-1].Feedback
		}
		return submitDoneMsg{Feedback: fb}
	}
}

func (m Model) submitNotesCmd(notes string) tea.Cmd {
	eng, s := m.engine, m.sess
	return func() tea.Msg {
		return notesDoneMsg{Err: eng.SubmitNotes(context.Background(), s, notes)}
	}
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.Err != nil {
		m.answerErr = msg.Err.Error()
		return m, nil
	}
	m.answer.Reset()
	m.lastFeedback = msg.Feedback
	return m, nil
}

func (m Model) handleNotesDone(msg notesDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.notes.Reset()
	m.countdown = nil
	m.timerRunning = false

	if msg.Err != nil {
		var pe *session.PersistError
		if errors.As(msg.Err, &pe) {
			// The session itself is complete; surface the write failure.
			m.saveErr = pe.Error()
			return m, nil
		}
		m.answerErr = msg.Err.Error()
	}
	return m, nil
}

func (m Model) beginTimed() (tea.Model, tea.Cmd) {
	if err := m.engine.BeginTimed(context.Background(), m.sess); err != nil {
		var pe *session.PersistError
		if errors.As(err, &pe) {
			m.saveErr = pe.Error()
			return m, nil
		}
		m.answerErr = err.Error()
	}
	return m, nil
}

// restart returns to the welcome screen for another round. The finished
// session is already persisted; a new one is built from scratch.
func (m Model) restart() (tea.Model, tea.Cmd) {
	fresh := New(m.engine, m.bank, m.timedDuration)
	fresh.width = m.width
	fresh.height = m.height
	fresh.wantFeedback = m.wantFeedback
	return fresh, fresh.Init()
}

func (m Model) abandonAndQuit() (tea.Model, tea.Cmd) {
	if m.sess != nil && !m.sess.Phase.Terminal() {
		_ = m.engine.Abandon(m.sess)
	}
	return m, tea.Quit
}

// tickCmd returns a 1-second tick command for the countdown display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(engine *session.Engine, bank []catalog.Question, timedDuration time.Duration) error {
	p := tea.NewProgram(New(engine, bank, timedDuration))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run practice session: %w", err)
	}
	return nil
}
