// Package tui provides the interactive Bubble Tea form for bolan.
package tui

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/bolan/internal/cli"
	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/mortgage"
	"github.com/theirongolddev/bolan/internal/tui/components"
	"github.com/theirongolddev/bolan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 44
	maxFormWidth     = 64

	rateStep = 0.01

	// focusButton is the focus index after the four inputs.
	focusButton = 4
	focusCount  = 5
)

// App is the root Bubble Tea model.
type App struct {
	calc   *mortgage.Calculator
	inputs []textinput.Model
	focus  int

	// UI state
	width    int
	height   int
	showHelp bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
	setupErr  error
}

// NewApp creates the form, prefilled with any raw field text.
func NewApp(prefill map[mortgage.Field]string) App {
	calc := mortgage.New(prefill)

	inputs := make([]textinput.Model, len(mortgage.Fields))
	for i, f := range mortgage.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = 32
		ti.Width = 28
		ti.SetValue(calc.Display(f))
		inputs[i] = ti
	}
	inputs[0].Focus()

	a := App{
		calc:      calc,
		inputs:    inputs,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		fileCfg, _ := config.LoadFile()
		a.setupVals = SetupValuesFrom(fileCfg)
		a.setupForm = NewSetupForm(&a.setupVals, false)
	}
	a.applyInputStyles()
	return a
}

// Calculator exposes the form's calculator state.
func (a App) Calculator() *mortgage.Calculator {
	return a.calc
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "esc":
			return a, tea.Quit
		case "?":
			a.showHelp = true
			return a, nil
		case "tab", "down":
			cmd := a.setFocus(a.focus + 1)
			return a, cmd
		case "shift+tab", "up":
			cmd := a.setFocus(a.focus - 1)
			return a, cmd
		case "ctrl+s":
			a.calculate()
			return a, nil
		case "ctrl+r":
			a.reset()
			cmd := a.setFocus(0)
			return a, cmd
		case "enter":
			if a.focus == focusButton {
				a.calculate()
				return a, nil
			}
			cmd := a.setFocus(a.focus + 1)
			return a, cmd
		case "ctrl+up", "ctrl+down":
			if a.focus < focusButton && !mortgage.Fields[a.focus].IsAmount() {
				dir := 1.0
				if key == "ctrl+down" {
					dir = -1
				}
				a.stepRate(dir)
			}
			return a, nil
		}

		if a.focus == focusButton {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}
		return a.updateInput(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.focus < focusButton {
		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupErr = saveSetup(a.setupVals)
		if a.setupErr != nil {
			log.Printf("bolan: saving setup: %v", a.setupErr)
		}
		a.needSetup = false
		a.setupForm = nil
		a.applyInputStyles()
		return a, textinput.Blink
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

// updateInput forwards a key to the focused input and pushes the new text
// through the calculator. Amount fields are re-rendered grouped on every
// keystroke; rate fields only drop characters a number input would refuse.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := mortgage.Fields[a.focus]

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	typed := a.inputs[a.focus].Value()
	tail := keptAfter([]rune(typed)[a.inputs[a.focus].Position():], f)

	if !f.IsAmount() {
		typed = filterRate(typed)
	}
	a.calc.Set(f, typed)

	if shown := a.calc.Display(f); shown != a.inputs[a.focus].Value() {
		a.inputs[a.focus].SetValue(shown)
		a.inputs[a.focus].SetCursor(cursorBefore([]rune(shown), tail, f))
	}
	return a, cmd
}

// keptAfter counts the runes after the cursor that survive normalization,
// so the cursor can be put back in front of the same characters.
func keptAfter(after []rune, f mortgage.Field) int {
	n := 0
	for _, r := range after {
		if keepsRune(r, f) {
			n++
		}
	}
	return n
}

// cursorBefore returns the position in shown that has tail kept runes
// after it.
func cursorBefore(shown []rune, tail int, f mortgage.Field) int {
	pos := len(shown)
	for pos > 0 && tail > 0 {
		pos--
		if keepsRune(shown[pos], f) {
			tail--
		}
	}
	return pos
}

func keepsRune(r rune, f mortgage.Field) bool {
	if (r >= '0' && r <= '9') || r == '.' || r == '-' {
		return true
	}
	return r == ',' && !f.IsAmount()
}

// filterRate keeps digits, '.', and '-', reading a decimal comma as '.'.
func filterRate(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		case r == ',':
			return '.'
		default:
			return -1
		}
	}, s)
}

func (a *App) stepRate(dir float64) {
	f := mortgage.Fields[a.focus]
	v, _ := mortgage.ParseNumber(a.calc.Raw(f))
	v = math.Round((v+dir*rateStep)*100) / 100
	text := strconv.FormatFloat(v, 'f', -1, 64)

	a.calc.Set(f, text)
	a.inputs[a.focus].SetValue(a.calc.Display(f))
	a.inputs[a.focus].CursorEnd()
}

func (a *App) setFocus(i int) tea.Cmd {
	a.focus = (i + focusCount) % focusCount

	var cmd tea.Cmd
	for j := range a.inputs {
		if j == a.focus {
			cmd = a.inputs[j].Focus()
		} else {
			a.inputs[j].Blur()
		}
	}
	a.applyInputStyles()
	return cmd
}

func (a *App) calculate() {
	r, ok := a.calc.Calculate()
	if !ok {
		return
	}
	log.Printf("bolan: calculated %+v", r)
}

func (a *App) reset() {
	a.calc.Reset()
	for i := range a.inputs {
		a.inputs[i].SetValue("")
	}
}

func (a *App) applyInputStyles() {
	t := theme.Active
	for i := range a.inputs {
		a.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary)
		a.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim)
		a.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(t.Accent)
	}
}

func (a App) formWidth() int {
	w := a.width
	if w > maxFormWidth {
		w = maxFormWidth
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return "\n  Terminalen är för smal.\n  bolan behöver minst " +
			strconv.Itoa(minTerminalWidth) + " kolumner.\n"
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.formWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Width(w).Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var form strings.Builder
	for i, f := range mortgage.Fields {
		form.WriteString(labelStyle.Render(f.Label()))
		form.WriteString("\n")

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Width(components.CardInnerWidth(w) - 2).
			Padding(0, 1)
		if i == a.focus {
			box = box.BorderForeground(t.BorderFocus)
		}
		form.WriteString(box.Render(a.inputs[i].View()))
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(a.renderButton(components.CardInnerWidth(w)))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Bolånekalkylator"))
	b.WriteString("\n\n")
	b.WriteString(components.ContentCard("", form.String(), w))
	b.WriteString("\n")

	if r, ok := a.calc.Result(); ok {
		b.WriteString(a.renderResult(r, w))
		b.WriteString("\n")
	}

	if a.setupErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Loss)
		b.WriteString(warn.Render("  Kunde inte spara inställningar: " + a.setupErr.Error()))
		b.WriteString("\n")
	}

	note := ""
	if a.calc.Stale() {
		note = "ej uppdaterad"
	}
	b.WriteString(components.RenderStatusBar(w, note))
	return b.String()
}

// renderButton draws the calculate action, dimmed while the form is invalid.
func (a App) renderButton(width int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)

	switch {
	case !a.calc.Valid():
		style = style.Foreground(t.TextDim).Background(t.Surface)
	case a.focus == focusButton:
		style = style.Foreground(t.Background).Background(t.Accent)
	default:
		style = style.Foreground(t.Accent).Background(t.Surface)
	}
	return style.Render("Beräkna")
}

func (a App) renderResult(r mortgage.Result, w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	rows := []struct {
		label string
		value float64
	}{
		{"Nuvarande månadskostnad", r.CurrentMonthlyPayment},
		{"Ny månadskostnad", r.NewMonthlyPayment},
	}

	var body strings.Builder
	for _, row := range rows {
		value := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(cli.FormatKronor(row.value))
		gap := inner - lipgloss.Width(row.label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		body.WriteString(labelStyle.Render(row.label))
		body.WriteString(strings.Repeat(" ", gap))
		body.WriteString(value)
		body.WriteString("\n")
	}

	note := savingsNote(r)
	body.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Månadsbesparning", Value: cli.FormatKronor(r.MonthlySavings), Note: note, Color: t.SavingsColor(r.MonthlySavings)},
		{Label: "Årsbesparning", Value: cli.FormatKronor(r.YearlySavings), Note: note, Color: t.SavingsColor(r.YearlySavings)},
	}, inner))
	body.WriteString("\n\n")
	body.WriteString(components.CompareBars([]components.Bar{
		{Label: "Nu", Value: r.CurrentMonthlyPayment, Text: cli.FormatKronor(r.CurrentMonthlyPayment)},
		{Label: "Ny", Value: r.NewMonthlyPayment, Text: cli.FormatKronor(r.NewMonthlyPayment)},
	}, inner))

	if a.calc.Stale() {
		hint := lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
		body.WriteString("\n\n")
		body.WriteString(hint.Render("Fälten har ändrats. Tryck Beräkna för att uppdatera."))
	}

	return components.ContentCard("Resultat", body.String(), w)
}

// savingsNote describes the new cost relative to the current one, e.g.
// "8,64 % lägre". Empty when the share is not a finite number.
func savingsNote(r mortgage.Result) string {
	pct := r.MonthlySavings / r.CurrentMonthlyPayment * 100
	switch {
	case math.IsNaN(pct) || math.IsInf(pct, 0):
		return ""
	case pct < 0:
		return cli.FormatRate(-pct) + " högre"
	default:
		return cli.FormatRate(pct) + " lägre"
	}
}

func (a App) viewHelp() string {
	t := theme.Active
	w := a.formWidth()

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	keys := []struct{ key, desc string }{
		{"tab / ↓", "nästa fält"},
		{"shift+tab / ↑", "föregående fält"},
		{"enter", "nästa fält, eller beräkna på knappen"},
		{"ctrl+s", "beräkna direkt"},
		{"ctrl+↑ / ctrl+↓", "ändra räntan med 0,01"},
		{"ctrl+r", "rensa formuläret"},
		{"esc / ctrl+c", "avsluta"},
	}

	var body strings.Builder
	for _, k := range keys {
		body.WriteString(keyStyle.Render(padTo(k.key, 18)))
		body.WriteString(descStyle.Render(k.desc))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(descStyle.Render("Beräkna är avstängd tills alla fält är ifyllda,\nlånet och amorteringen är större än noll och\nräntorna inte är negativa."))
	body.WriteString("\n\n")
	body.WriteString(descStyle.Render("Tryck valfri tangent för att stänga."))

	return "\n" + components.FocusCard("Hjälp", body.String(), w)
}

func padTo(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
