package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/amrit/rehearse/internal/catalog"
	"github.com/amrit/rehearse/internal/session"
)

func newTestModel() Model {
	engine := session.NewEngine(session.DefaultSelectorConfig(), nil, nil)
	m := New(engine, catalog.DefaultQuestions(), 60*time.Second)
	m.width = 100
	m.height = 30
	return m
}

func pressKey(t *testing.T, m Model, key rune) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyPressMsg{Code: key})
	return updated.(Model)
}

func pressEnter(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return updated.(Model)
}

func TestEnterWithoutNameShowsError(t *testing.T) {
	m := newTestModel()
	m = pressEnter(t, m)

	if m.sess != nil {
		t.Fatal("session must not start without a name")
	}
	if m.nameErr == "" {
		t.Error("expected a name error message")
	}
}

func TestEnterWithNameStartsSession(t *testing.T) {
	m := newTestModel()
	m.nameInput.Model.SetValue("Alex Lee")
	m = pressEnter(t, m)

	if m.sess == nil {
		t.Fatal("expected a started session")
	}
	if m.sess.Phase != session.PhaseTyped {
		t.Errorf("phase = %s, want typed", m.sess.Phase)
	}
	if m.nameErr != "" {
		t.Errorf("unexpected error: %q", m.nameErr)
	}
}

func TestEscOpensQuitConfirmAndAbandons(t *testing.T) {
	m := newTestModel()
	m.nameInput.Model.SetValue("Alex")
	m = pressEnter(t, m)

	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(Model)
	if !m.confirmQuit {
		t.Fatal("esc must open the quit confirmation")
	}

	// N keeps the session alive.
	m = pressKey(t, m, 'n')
	if m.confirmQuit || m.sess.Phase != session.PhaseTyped {
		t.Fatal("n must resume the session")
	}

	// Y abandons it.
	updated, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(Model)
	m = pressKey(t, m, 'y')
	if m.sess.Phase != session.PhaseAbandoned {
		t.Errorf("phase = %s, want abandoned", m.sess.Phase)
	}
}

func TestFeedbackOverlayDismissedByAnyKey(t *testing.T) {
	m := newTestModel()
	m.nameInput.Model.SetValue("Alex")
	m = pressEnter(t, m)

	m.lastFeedback = "Good answer, add an example."
	m = pressKey(t, m, 'x')
	if m.lastFeedback != "" {
		t.Error("any key must dismiss the feedback overlay")
	}
}

func TestTimerStartsOnEnter(t *testing.T) {
	m := newTestModel()
	m.nameInput.Model.SetValue("Alex")
	m = pressEnter(t, m)

	// Walk the session to the timed phase directly through the engine.
	m.sess.Phase = session.PhaseTimed
	m.sess.Cursor = 0

	if m.countdown != nil {
		t.Fatal("countdown must not run before the student starts it")
	}
	m = pressEnter(t, m)
	if m.countdown == nil || !m.timerRunning {
		t.Fatal("enter must start the countdown")
	}
	if m.countdown.Duration() != 60*time.Second {
		t.Errorf("duration = %s", m.countdown.Duration())
	}
}

func TestPhaseTitles(t *testing.T) {
	m := newTestModel()
	if m.phaseTitle() != "Welcome" {
		t.Errorf("title = %q", m.phaseTitle())
	}

	m.nameInput.Model.SetValue("Alex")
	m = pressEnter(t, m)
	if m.phaseTitle() != "Written Questions" {
		t.Errorf("title = %q", m.phaseTitle())
	}
}
