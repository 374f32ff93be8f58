package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/amrit/rehearse/internal/ui/theme"
)

// RenderProgress renders a "Question N of M" line with a simple bar.
func RenderProgress(current, total, width int) string {
	if total <= 0 {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", current, total))

	barWidth := width - lipgloss.Width(label) - 4
	if barWidth < 10 {
		return label
	}

	filled := barWidth * current / total
	if filled > barWidth {
		filled = barWidth
	}
	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return label + "  " + bar
}
