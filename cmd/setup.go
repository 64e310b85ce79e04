package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so env overrides are not saved
	cfg, _ := config.LoadFile()
	vals := tui.SetupValuesFrom(cfg)

	if err := tui.NewSetupForm(&vals, true).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	vals.Apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `bolan setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
