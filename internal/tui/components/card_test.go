package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/bolan/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 2}, {81, 2}, {100, 3}, {7, 4}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) = %v, sums to %d", tc.total, tc.n, widths, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow(_, 0) != nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Månadsbesparning", Value: "1 167 kr", Color: theme.Active.Savings},
		{Label: "Årsbesparning", Value: "14 000 kr", Color: theme.Active.Savings},
	}, 60)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
	if !strings.Contains(row, "\x1b[") {
		t.Error("metric row has no ANSI styling")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Kort", "Innehåll", 22)
	tallCard := FocusCard("Hög", "Rad 1\nRad 2\nRad 3\nRad 4", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("Joined height = %d, want %d", got, tallLines)
	}
}

func TestBarWidth(t *testing.T) {
	cases := []struct {
		value, top float64
		width, want int
	}{
		{13500, 13500, 30, 30},
		{12333, 13500, 30, 27},
		{0, 13500, 30, 0},
		{-5, 10, 30, 0},
		{10, 0, 30, 0},
		{20, 10, 30, 30},
		{math.Inf(1), math.Inf(1), 30, 0},
		{math.Inf(1), 10, 30, 30},
		{10, math.Inf(1), 30, 0},
	}
	for _, tc := range cases {
		if got := BarWidth(tc.value, tc.top, tc.width); got != tc.want {
			t.Errorf("BarWidth(%v, %v, %d) = %d, want %d", tc.value, tc.top, tc.width, got, tc.want)
		}
	}
}

func TestCompareBarsAlignsRows(t *testing.T) {
	out := CompareBars([]Bar{
		{Label: "Nuvarande", Value: 13500, Text: "13 500 kr"},
		{Label: "Ny", Value: 12333, Text: "12 333 kr"},
	}, 50)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Fatalf("rows differ in width: %d vs %d", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
	if lipgloss.Width(lines[0]) != 50 {
		t.Fatalf("row width = %d, want 50", lipgloss.Width(lines[0]))
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Fatal("larger value should have the longer bar")
	}
}

func TestStatusBarFitsWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	for _, w := range []int{44, 64, 100} {
		bar := RenderStatusBar(w, "ej uppdaterad")
		if strings.Contains(bar, "\n") {
			t.Errorf("width %d: status bar wrapped", w)
		}
		if got := lipgloss.Width(bar); got != w {
			t.Errorf("width %d: rendered %d cells", w, got)
		}
		if !strings.Contains(bar, "ej uppdaterad") {
			t.Errorf("width %d: note dropped", w)
		}
	}
	if !strings.Contains(RenderStatusBar(100, ""), "[esc]avsluta") {
		t.Error("wide bar should show every hint")
	}
}

func TestMetricCardRowNotes(t *testing.T) {
	theme.SetActive("flexoki-dark")

	withNote := MetricCardRow([]Metric{
		{Label: "Månadsbesparning", Value: "1 167 kr", Note: "8,64 % lägre"},
		{Label: "Årsbesparning", Value: "14 000 kr"},
	}, 60)
	without := MetricCardRow([]Metric{
		{Label: "Månadsbesparning", Value: "1 167 kr"},
		{Label: "Årsbesparning", Value: "14 000 kr"},
	}, 60)

	if !strings.Contains(withNote, "8,64 % lägre") {
		t.Fatal("note not rendered")
	}
	if got, want := len(strings.Split(withNote, "\n")), len(strings.Split(without, "\n"))+1; got != want {
		t.Fatalf("row with note has %d lines, want %d", got, want)
	}
	for i, line := range strings.Split(withNote, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}
