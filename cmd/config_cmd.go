// Package cmd implements the bolan CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/bolan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s%s\n", cfg.Appearance.Theme, envNote(config.EnvTheme))
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:   %s%s\n", cfg.Server.Addr, envNote(config.EnvAddr))
	fmt.Printf("    Log level: %s\n", cfg.Server.LogLevel)
	fmt.Println()

	if config.DebugEnabled() {
		fmt.Printf("  Debug log: %s (%s is set)\n", debugLogFile, config.EnvDebug)
		fmt.Println()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("  Problems:\n    %v\n\n", err)
	}

	fmt.Println("  Run `bolan setup` to reconfigure.")
	return nil
}

func envNote(key string) string {
	if os.Getenv(key) != "" {
		return fmt.Sprintf("  (from %s)", key)
	}
	return ""
}
