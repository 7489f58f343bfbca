package components

import (
	"fmt"
	"strings"

	"fcab/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HBarRow is one row of a horizontal bar list: a label, a pre-formatted
// value, and the raw magnitude used to scale the bar.
type HBarRow struct {
	Label string
	Value string
	Raw   float64
}

// HBarList renders labeled horizontal bars scaled to the largest row.
// Suits small ranked series (per-bus mileage, vendor spend).
func HBarList(rows []HBarRow, color lipgloss.Color, width int) string {
	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Render("no data")
	}
	t := theme.Active

	labelW, valueW := 0, 0
	maxRaw := 0.0
	for _, r := range rows {
		if len(r.Label) > labelW {
			labelW = len(r.Label)
		}
		if len(r.Value) > valueW {
			valueW = len(r.Value)
		}
		if r.Raw > maxRaw {
			maxRaw = r.Raw
		}
	}

	barMax := width - labelW - valueW - 3
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, r := range rows {
		barLen := 0
		if maxRaw > 0 {
			barLen = int(r.Raw / maxRaw * float64(barMax))
		}
		if barLen > barMax {
			barLen = barMax
		}
		if r.Raw > 0 && barLen == 0 {
			barLen = 1
		}
		fmt.Fprintf(&b, "%s %s %s%s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)),
			valueStyle.Render(fmt.Sprintf("%*s", valueW, r.Value)),
			barStyle.Render(strings.Repeat("█", barLen)),
			trackStyle.Render(strings.Repeat("·", barMax-barLen)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Sparkline renders a unicode block sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}
