package components

import (
	"fmt"

	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. message is a transient
// notice (last action result); pending is the open approvals count.
func RenderStatusBar(width int, message string, pending int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if message != "" {
		left += "  " + lipgloss.NewStyle().Foreground(t.Accent).Render(message)
	}

	right := ""
	if pending > 0 {
		right = lipgloss.NewStyle().Foreground(t.Orange).Render(
			fmt.Sprintf("%d pending approvals ", pending))
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
