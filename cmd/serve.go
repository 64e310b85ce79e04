package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/logx"
	"github.com/theirongolddev/bolan/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr     string
	flagServeLogLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator as an HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().StringVar(&flagServeLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagServeAddr != "" {
		cfg.Server.Addr = flagServeAddr
	}
	if flagServeLogLevel != "" {
		cfg.Server.LogLevel = flagServeLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := logx.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	logger := logx.New(os.Stderr, level, "server")

	svc := server.New(server.Config{
		Addr:   cfg.Server.Addr,
		Logger: logger,
	})

	fmt.Printf("  bolan listening on http://%s\n", cfg.Server.Addr)
	fmt.Printf("  Try: curl 'http://%s/v1/calculate?loan=2000000&current_rate=4.5&new_rate=3.8&amortization=6000'\n", cfg.Server.Addr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
