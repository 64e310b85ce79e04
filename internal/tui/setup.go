package tui

import (
	"errors"
	"net"
	"strings"

	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup wizard.
type SetupValues struct {
	Theme string
	Addr  string
}

// SetupValuesFrom seeds the wizard with the current config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme: cfg.Appearance.Theme,
		Addr:  cfg.Server.Addr,
	}
}

// Apply copies the answers into cfg. Blank answers leave cfg unchanged.
func (v SetupValues) Apply(cfg *config.Config) {
	if _, ok := theme.Lookup(v.Theme); ok {
		cfg.Appearance.Theme = v.Theme
	}
	if addr := strings.TrimSpace(v.Addr); addr != "" {
		cfg.Server.Addr = addr
	}
}

func validateAddr(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(s); err != nil {
		return errors.New("ange värd:port, t.ex. 127.0.0.1:8788")
	}
	return nil
}

// NewSetupForm builds the huh wizard. The first-run flow inside the
// calculator only asks for the theme; `bolan setup` also asks for the
// server address.
func NewSetupForm(v *SetupValues, includeServer bool) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	fields := []huh.Field{
		huh.NewNote().
			Title("Välkommen till bolan").
			Description("Jämför din nuvarande bolånekostnad med en erbjuden ränta."),
		huh.NewSelect[string]().
			Title("Färgtema").
			Options(themeOpts...).
			Value(&v.Theme),
	}
	if includeServer {
		fields = append(fields,
			huh.NewInput().
				Title("Adress för `bolan serve`").
				Placeholder("127.0.0.1:8788").
				Validate(validateAddr).
				Value(&v.Addr),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// saveSetup writes the wizard answers and activates the chosen theme.
// BOLAN_* overrides are never written to the file.
func saveSetup(v SetupValues) error {
	cfg, _ := config.LoadFile()
	v.Apply(&cfg)
	theme.SetActive(cfg.Appearance.Theme)
	return config.Save(cfg)
}
