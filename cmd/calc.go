package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/bolan/internal/cli"
	"github.com/theirongolddev/bolan/internal/client"
	"github.com/theirongolddev/bolan/internal/mortgage"

	"github.com/spf13/cobra"
)

var (
	flagJSON   bool
	flagServer string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate savings once and print the result",
	Example: `  bolan calc --loan "2 000 000" --current-rate 4.5 --new-rate 3.8 --amortization 6000
  bolan calc --loan 2000000 --current-rate 4,5 --new-rate 3,8 --amortization 6000 --json`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the unrounded result as JSON")
	calcCmd.Flags().StringVar(&flagServer, "server", "", "Calculate on a running bolan server at this `host:port`")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	var r mortgage.Result
	if c := client.New(flagServer); c != nil {
		if err := c.Healthy(cmd.Context()); err != nil {
			return fmt.Errorf("server %s: %w", flagServer, err)
		}
		resp, err := c.Calculate(cmd.Context(), flagText(inputFlags()))
		if err != nil {
			return fmt.Errorf("remote calculate: %w", err)
		}
		r = resp.Result
	} else {
		in, err := parseFlagInputs(inputFlags())
		if err != nil {
			return err
		}
		r = mortgage.Compute(in)
	}

	if flagJSON {
		if !r.Finite() {
			return fmt.Errorf("cannot print as JSON: %w", mortgage.ErrNotFinite)
		}
		return writeResultJSON(os.Stdout, r)
	}
	fmt.Print(renderCalc(r))
	return nil
}

// flagText reads a decimal comma in rate flags as a point.
func flagText(raw map[mortgage.Field]string) map[mortgage.Field]string {
	text := make(map[mortgage.Field]string, len(raw))
	for f, v := range raw {
		if !f.IsAmount() {
			v = strings.Replace(strings.TrimSpace(v), ",", ".", 1)
		}
		text[f] = v
	}
	return text
}

// parseFlagInputs parses flag text the way the form does and names the
// offending flag on failure.
func parseFlagInputs(raw map[mortgage.Field]string) (mortgage.Inputs, error) {
	text := flagText(raw)

	for _, f := range mortgage.Fields {
		c := mortgage.New(map[mortgage.Field]string{f: text[f]})
		if _, ok := mortgage.ParseNumber(c.Raw(f)); !ok {
			return mortgage.Inputs{}, fmt.Errorf("%s: %q is not a number: %w", flagName(f), raw[f], mortgage.ErrIncomplete)
		}
	}

	in, err := mortgage.ParseInputs(text)
	if err != nil {
		if errors.Is(err, mortgage.ErrOutOfRange) {
			return mortgage.Inputs{}, fmt.Errorf("%w (loan and amortization must be > 0, rates >= 0)", err)
		}
		return mortgage.Inputs{}, err
	}
	return in, nil
}

func writeResultJSON(w io.Writer, r mortgage.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func renderCalc(r mortgage.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("BOLÅNEKALKYL"))
	b.WriteString("\n\n")

	in := r.Inputs
	b.WriteString(cli.RenderTable(cli.Table{
		Title: "Underlag",
		Rows: [][]string{
			{"Lånebelopp", cli.FormatKronor(in.LoanAmount)},
			{"Nuvarande ränta", cli.FormatRate(in.CurrentRate)},
			{"Ny ränta", cli.FormatRate(in.NewRate)},
			{"Amortering per månad", cli.FormatKronor(in.MonthlyAmortization)},
		},
	}))
	b.WriteString("\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Title: "Resultat",
		Rows: [][]string{
			{"Nuvarande månadskostnad", cli.FormatKronor(r.CurrentMonthlyPayment)},
			{"Ny månadskostnad", cli.FormatKronor(r.NewMonthlyPayment)},
			{"---"},
			{"Månadsbesparning", cli.FormatDelta(r.MonthlySavings)},
			{"Årsbesparning", cli.FormatDelta(r.YearlySavings)},
		},
		Tones: []cli.Tone{
			cli.ToneNeutral,
			cli.ToneNeutral,
			cli.ToneNeutral,
			cli.ToneFor(r.MonthlySavings),
			cli.ToneFor(r.YearlySavings),
		},
	}))
	b.WriteString("\n")

	top := max(r.CurrentMonthlyPayment, r.NewMonthlyPayment)
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Nu", r.CurrentMonthlyPayment},
		{"Ny", r.NewMonthlyPayment},
	} {
		b.WriteString(cli.RenderHorizontalBar(row.label, row.value, top, 30))
		b.WriteString("  ")
		b.WriteString(cli.FormatKronor(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}
