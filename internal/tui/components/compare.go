package components

import (
	"math"
	"strings"

	"github.com/theirongolddev/bolan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one row of a CompareBars chart.
type Bar struct {
	Label string
	Value float64
	Text  string // rendered after the bar, e.g. the formatted amount
}

// BarWidth returns how many cells of width a value fills against top.
func BarWidth(value, top float64, width int) int {
	if top <= 0 || value <= 0 || width <= 0 {
		return 0
	}
	frac := value / top
	if math.IsNaN(frac) {
		return 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// CompareBars renders horizontal bars scaled to the largest value, with
// labels padded to a common width. width is the full line width.
func CompareBars(bars []Bar, width int) string {
	t := theme.Active

	labelW, textW := 0, 0
	top := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		textW = max(textW, lipgloss.Width(b.Text))
		top = max(top, b.Value)
	}

	barW := width - labelW - textW - 2
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	filledStyle := lipgloss.NewStyle().Foreground(t.Cost)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		filled := BarWidth(b.Value, top, barW)

		var line strings.Builder
		line.WriteString(labelStyle.Render(b.Label + strings.Repeat(" ", labelW-lipgloss.Width(b.Label))))
		line.WriteString(" ")
		line.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
		line.WriteString(emptyStyle.Render(strings.Repeat("░", barW-filled)))
		line.WriteString(" ")
		line.WriteString(textStyle.Render(strings.Repeat(" ", textW-lipgloss.Width(b.Text)) + b.Text))
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
