package components

import (
	"fmt"
	"strings"

	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is a single entry in the tab bar. Tabs are selected with number keys
// so single letters stay free for in-tab actions (approve, reject, new).
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs in display order.
var Tabs = []Tab{
	{Name: "Dashboard", Key: '1'},
	{Name: "Fuel", Key: '2'},
	{Name: "Expenses", Key: '3'},
	{Name: "Invoices", Key: '4'},
	{Name: "Approvals", Key: '5'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(fmt.Sprintf("[%c] %s", tab.Key, tab.Name)))
		} else {
			parts = append(parts,
				dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]")+
					inactiveStyle.Render(" "+tab.Name))
		}
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
