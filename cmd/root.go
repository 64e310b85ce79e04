package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/bolan/internal/config"
	"github.com/theirongolddev/bolan/internal/mortgage"

	"github.com/spf13/cobra"
)

var (
	flagLoan         string
	flagCurrentRate  string
	flagNewRate      string
	flagAmortization string
	flagNoDotEnv     bool
)

var rootCmd = &cobra.Command{
	Use:   "bolan",
	Short: "Mortgage savings calculator",
	Long: "Compare your current monthly mortgage cost with the cost at an offered rate.\n" +
		"Runs the interactive form unless a subcommand is given.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.PersistentFlags().StringVar(&flagLoan, "loan", "", `Loan amount in kronor (e.g. "2 000 000")`)
	rootCmd.PersistentFlags().StringVar(&flagCurrentRate, "current-rate", "", "Current annual interest rate in percent")
	rootCmd.PersistentFlags().StringVar(&flagNewRate, "new-rate", "", "Offered annual interest rate in percent")
	rootCmd.PersistentFlags().StringVar(&flagAmortization, "amortization", "", "Monthly amortization in kronor")
	rootCmd.PersistentFlags().BoolVar(&flagNoDotEnv, "no-dotenv", false, "Do not load .env from the working directory")
}

func loadDotEnv() {
	if flagNoDotEnv {
		return
	}
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
	}
}

// inputFlags returns the raw text of the four input flags keyed by field.
func inputFlags() map[mortgage.Field]string {
	return map[mortgage.Field]string{
		mortgage.LoanAmount:          flagLoan,
		mortgage.CurrentRate:         flagCurrentRate,
		mortgage.NewRate:             flagNewRate,
		mortgage.MonthlyAmortization: flagAmortization,
	}
}

// flagName maps a field to the flag that sets it.
func flagName(f mortgage.Field) string {
	switch f {
	case mortgage.LoanAmount:
		return "--loan"
	case mortgage.CurrentRate:
		return "--current-rate"
	case mortgage.NewRate:
		return "--new-rate"
	case mortgage.MonthlyAmortization:
		return "--amortization"
	default:
		return f.String()
	}
}
