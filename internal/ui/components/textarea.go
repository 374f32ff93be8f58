package components

import (
	tea "charm.land/bubbletea/v2"

	"charm.land/bubbles/v2/textarea"
)

// TextArea wraps bubbles/textarea for multi-line answers and notes.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new multi-line input.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()

	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current content.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// Reset clears the content for the next question.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// SetSize resizes the area on terminal resize.
func (t *TextArea) SetSize(width, height int) {
	if width > 0 {
		t.Model.SetWidth(width)
	}
	if height > 0 {
		t.Model.SetHeight(height)
	}
}
