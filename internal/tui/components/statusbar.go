package components

import (
	"strings"

	"github.com/theirongolddev/bolan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var keyHints = []string{"[tab]nästa", "[enter]beräkna", "[?]hjälp", "[ctrl+r]rensa", "[esc]avsluta"}

// RenderStatusBar renders the bottom key-hint bar with an optional
// right-aligned note. Hints that do not fit are dropped from the end.
func RenderStatusBar(width int, note string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	right := ""
	if note != "" {
		right = note + " "
	}

	left := ""
	for _, h := range keyHints {
		next := left + " " + h
		if lipgloss.Width(next)+lipgloss.Width(right) > width {
			break
		}
		left = next
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
