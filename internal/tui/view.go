package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/rehearse/internal/session"
	"github.com/amrit/rehearse/internal/ui/components"
	"github.com/amrit/rehearse/internal/ui/layout"
	"github.com/amrit/rehearse/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	student := ""
	if m.sess != nil {
		student = m.sess.StudentName
	}
	header := layout.RenderHeader(m.phaseTitle(), student, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	switch {
	case m.confirmQuit:
		content = m.renderQuitConfirm()
	case m.lastFeedback != "":
		content = m.renderFeedbackCard()
	case m.sess == nil || m.sess.Phase == session.PhaseWelcome:
		content = m.renderWelcome()
	case m.sess.Phase == session.PhaseTyped:
		content = m.renderTyped()
	case m.sess.Phase == session.PhaseVideoIntro:
		content = m.renderIntro()
	case m.sess.Phase == session.PhaseTimed:
		content = m.renderTimed()
	case m.sess.Phase == session.PhaseComplete:
		content = m.renderComplete()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) phaseTitle() string {
	if m.sess == nil {
		return "Welcome"
	}
	switch m.sess.Phase {
	case session.PhaseTyped:
		return "Written Questions"
	case session.PhaseVideoIntro:
		return "Get Ready to Record"
	case session.PhaseTimed:
		return "Recording Practice"
	case session.PhaseComplete:
		return "Session Complete"
	}
	return "Welcome"
}

func (m Model) keyHints() []layout.KeyHint {
	if m.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if m.submitting {
		return nil
	}
	if m.lastFeedback != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}

	phase := session.PhaseWelcome
	if m.sess != nil {
		phase = m.sess.Phase
	}
	switch phase {
	case session.PhaseWelcome:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Begin"}}
		if m.engine.FeedbackAvailable() {
			hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Toggle AI feedback"})
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	case session.PhaseTyped:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case session.PhaseVideoIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "I'm ready"},
			{Key: "Esc", Description: "Quit"},
		}
	case session.PhaseTimed:
		if m.countdown == nil {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Start the timer"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Save notes & continue"},
			{Key: "Esc", Description: "Quit"},
		}
	case session.PhaseComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "Practice again"},
			{Key: "any key", Description: "Exit"},
		}
	}
	return nil
}

func (m Model) renderWelcome() string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(m.width).Render("Interview Practice"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(m.width).Render(
		"Practise answering interview questions in writing and out loud."))
	b.WriteString("\n\n\n")

	b.WriteString(theme.Body.Render("  What's your name?"))
	b.WriteString("\n\n  ")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	if m.engine.FeedbackAvailable() {
		check := "[ ]"
		if m.wantFeedback {
			check = "[x]"
		}
		b.WriteString(theme.Selected.Render("  " + check + " AI feedback on written answers"))
		b.WriteString("\n")
	} else {
		b.WriteString(theme.Hint.Render("  AI feedback is not available on this machine."))
		b.WriteString("\n")
	}

	if m.nameErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + m.nameErr))
	}

	return b.String()
}

func (m Model) renderTyped() string {
	q := m.sess.Current()
	if q == nil {
		return ""
	}

	if m.submitting {
		return "\n\n" + theme.Subtitle.Width(m.width).Render(
			m.spin.View()+" Getting feedback on your answer...")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(components.RenderProgress(m.sess.Cursor+1, len(m.sess.Questions.Typed), m.width-4))
	b.WriteString("\n\n  ")
	b.WriteString(theme.Question.Render(q.Prompt))
	if q.Tips != "" {
		b.WriteString("\n  ")
		b.WriteString(theme.Hint.Render(q.Tips))
	}
	b.WriteString("\n\n  ")
	b.WriteString(strings.ReplaceAll(m.answer.View(), "\n", "\n  "))

	words := len(strings.Fields(m.answer.Value()))
	b.WriteString("\n\n  ")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d words", words)))

	if m.answerErr != "" {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(m.answerErr))
	}

	return b.String()
}

func (m Model) renderFeedbackCard() string {
	card := theme.Card.Width(min(74, m.width-4)).Render(
		theme.Feedback.Render("Coach's feedback") + "\n\n" + m.lastFeedback)
	return "\n" + lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(card)
}

func (m Model) renderIntro() string {
	lines := []string{
		"Nice work on the written questions!",
		"",
		"Next up: answering out loud, against the clock.",
		"",
		"For each question you get " + fmt.Sprintf("%d seconds", int(m.timedDuration.Seconds())) + " to answer",
		"as if you were in the room. Speak your answer aloud,",
		"then note down how it went.",
		"",
		"The timer starts when you say so.",
	}
	card := theme.Card.Width(min(60, m.width-4)).Render(strings.Join(lines, "\n"))
	return "\n" + lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(card)
}

func (m Model) renderTimed() string {
	q := m.sess.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(components.RenderProgress(m.sess.Cursor+1, len(m.sess.Questions.Timed), m.width-4))
	b.WriteString("\n\n  ")
	b.WriteString(theme.Question.Render(q.Prompt))
	if q.Tips != "" {
		b.WriteString("\n  ")
		b.WriteString(theme.Hint.Render(q.Tips))
	}
	b.WriteString("\n\n")

	if m.countdown == nil {
		b.WriteString(theme.Hint.Render("  Press Enter when you're ready to start the timer."))
		return b.String()
	}

	secs := m.countdown.RemainingSeconds()
	display := fmt.Sprintf("  %d:%02d", secs/60, secs%60)
	if secs <= 10 {
		b.WriteString(theme.TimerUrgent.Render(display))
	} else {
		b.WriteString(theme.TimerCalm.Render(display))
	}
	if m.countdown.Expired() {
		b.WriteString(theme.Hint.Render("   Time's up! Finish your notes when you're ready."))
	}

	b.WriteString("\n\n  ")
	b.WriteString(strings.ReplaceAll(m.notes.View(), "\n", "\n  "))

	if m.answerErr != "" {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(m.answerErr))
	}

	return b.String()
}

func (m Model) renderComplete() string {
	var lines []string
	lines = append(lines,
		theme.Title.Render("Well done, "+m.sess.StudentName+"!"),
		"",
		fmt.Sprintf("You answered %d written and %d spoken questions.",
			len(m.sess.TypedResponses()), len(m.sess.TimedResponses())),
	)
	if m.sess.SavedTo != "" {
		lines = append(lines, "", theme.Hint.Render("Saved to "+m.sess.SavedTo))
	}
	if m.saveErr != "" {
		lines = append(lines, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(m.saveErr),
			theme.Hint.Render("Your answers are shown above; tell your coach about this error."))
	}

	card := theme.Card.Width(min(64, m.width-4)).Render(strings.Join(lines, "\n"))
	return "\n" + lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(card)
}

func (m Model) renderQuitConfirm() string {
	card := theme.Card.Width(min(50, m.width-4)).Render(
		theme.Question.Render("End this session?") + "\n\n" +
			"Nothing will be saved if you stop now.")
	return "\n" + lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(card)
}
