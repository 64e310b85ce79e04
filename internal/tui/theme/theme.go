// Package theme defines color themes for the bolan calculator form.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the form and result panel.
type Theme struct {
	Name        string
	Background  lipgloss.Color // Main app background
	Surface     lipgloss.Color // Card backgrounds
	Border      lipgloss.Color // Idle input and card borders
	BorderFocus lipgloss.Color // Focused input border
	TextDim     lipgloss.Color // Hints, disabled button
	TextMuted   lipgloss.Color // Labels
	TextPrimary lipgloss.Color // Values and typed text
	Accent      lipgloss.Color // Titles, enabled button
	Cost        lipgloss.Color // Monthly cost values and bars
	Savings     lipgloss.Color // Non-negative savings
	Loss        lipgloss.Color // Negative savings
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	BorderFocus: lipgloss.Color("#3AA99F"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Cost:        lipgloss.Color("#4385BE"),
	Savings:     lipgloss.Color("#879A39"),
	Loss:        lipgloss.Color("#D14D41"),
}

// CatppuccinMocha is a warm pastel theme.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Background:  lipgloss.Color("#1E1E2E"),
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	BorderFocus: lipgloss.Color("#89B4FA"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Cost:        lipgloss.Color("#FAB387"),
	Savings:     lipgloss.Color("#A6E3A1"),
	Loss:        lipgloss.Color("#F38BA8"),
}

// Light is a high-contrast theme for light terminal backgrounds.
var Light = Theme{
	Name:        "light",
	Background:  lipgloss.Color("#FFFCF0"),
	Surface:     lipgloss.Color("#F2F0E5"),
	Border:      lipgloss.Color("#CECDC3"),
	BorderFocus: lipgloss.Color("#24837B"),
	TextDim:     lipgloss.Color("#B7B5AC"),
	TextMuted:   lipgloss.Color("#6F6E69"),
	TextPrimary: lipgloss.Color("#100F0F"),
	Accent:      lipgloss.Color("#24837B"),
	Cost:        lipgloss.Color("#205EA6"),
	Savings:     lipgloss.Color("#66800B"),
	Loss:        lipgloss.Color("#AF3029"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Background:  lipgloss.Color("0"),
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("6"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Cost:        lipgloss.Color("4"),
	Savings:     lipgloss.Color("2"),
	Loss:        lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Light, Terminal}

// Names returns the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SavingsColor picks the savings or loss color for a value.
func (t Theme) SavingsColor(v float64) lipgloss.Color {
	if v < 0 {
		return t.Loss
	}
	return t.Savings
}
