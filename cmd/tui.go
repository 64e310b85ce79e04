package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/tui"
	"github.com/theirongolddev/bolan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

const debugLogFile = "bolan-debug.log"

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The TUI falls back to defaults so a broken config never blocks it
	cfg := config.LoadOrDefault()
	theme.SetActive(cfg.Appearance.Theme)

	// Anything logged while the alt screen is up would corrupt it
	log.SetOutput(io.Discard)
	if config.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "bolan")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(inputFlags())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
