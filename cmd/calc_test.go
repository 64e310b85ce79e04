package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/bolan/internal/mortgage"
	"github.com/theirongolddev/bolan/internal/server"
)

func TestParseFlagInputs(t *testing.T) {
	in, err := parseFlagInputs(map[mortgage.Field]string{
		mortgage.LoanAmount:          "2 000 000",
		mortgage.CurrentRate:         "4,5",
		mortgage.NewRate:             " 3.8 ",
		mortgage.MonthlyAmortization: "6000 kr",
	})
	if err != nil {
		t.Fatalf("parseFlagInputs: %v", err)
	}
	want := mortgage.Inputs{LoanAmount: 2000000, CurrentRate: 4.5, NewRate: 3.8, MonthlyAmortization: 6000}
	if in != want {
		t.Fatalf("got %+v, want %+v", in, want)
	}
}

func TestParseFlagInputsErrors(t *testing.T) {
	valid := map[mortgage.Field]string{
		mortgage.LoanAmount:          "2000000",
		mortgage.CurrentRate:         "4.5",
		mortgage.NewRate:             "3.8",
		mortgage.MonthlyAmortization: "6000",
	}

	cases := []struct {
		name    string
		field   mortgage.Field
		value   string
		wantErr error
		mention string
	}{
		{"missing amortization", mortgage.MonthlyAmortization, "", mortgage.ErrIncomplete, "--amortization"},
		{"letters in rate", mortgage.NewRate, "abc", mortgage.ErrIncomplete, "--new-rate"},
		{"zero loan", mortgage.LoanAmount, "0", mortgage.ErrOutOfRange, "loan"},
		{"negative rate", mortgage.CurrentRate, "-1", mortgage.ErrOutOfRange, "current_rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := make(map[mortgage.Field]string, len(valid))
			for f, v := range valid {
				raw[f] = v
			}
			raw[tc.field] = tc.value

			_, err := parseFlagInputs(raw)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.mention) {
				t.Fatalf("error %q does not name %s", err, tc.mention)
			}
		})
	}
}

func TestWriteResultJSON(t *testing.T) {
	r := mortgage.Compute(mortgage.Inputs{LoanAmount: 2000000, CurrentRate: 4.5, NewRate: 3.8, MonthlyAmortization: 6000})

	var buf bytes.Buffer
	if err := writeResultJSON(&buf, r); err != nil {
		t.Fatalf("writeResultJSON: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if v, _ := got["yearly_savings"].(float64); math.Abs(v-14000) > 1e-6 {
		t.Fatalf("yearly_savings = %v, want 14000", got["yearly_savings"])
	}
	if _, ok := got["inputs"].(map[string]any); !ok {
		t.Fatal("inputs missing from JSON")
	}
}

func TestRenderCalc(t *testing.T) {
	r := mortgage.Compute(mortgage.Inputs{LoanAmount: 2000000, CurrentRate: 3.8, NewRate: 4.5, MonthlyAmortization: 6000})
	out := renderCalc(r)

	for _, want := range []string{"BOLÅNEKALKYL", "Nuvarande månadskostnad", "Årsbesparning", "4,50 %", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// Higher new rate: savings are negative and shown with a minus sign.
	if !strings.Contains(out, "-1") {
		t.Error("negative savings not rendered with a minus sign")
	}
}

func TestFlagNameCoversAllFields(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range mortgage.Fields {
		name := flagName(f)
		if !strings.HasPrefix(name, "--") {
			t.Errorf("flagName(%v) = %q", f, name)
		}
		if rootCmd.PersistentFlags().Lookup(strings.TrimPrefix(name, "--")) == nil {
			t.Errorf("flag %s not registered", name)
		}
		seen[name] = true
	}
	if len(seen) != len(mortgage.Fields) {
		t.Fatalf("flag names not unique: %v", seen)
	}
}

func TestRenderCalcUnboundedInputs(t *testing.T) {
	huge := renderCalc(mortgage.Compute(mortgage.Inputs{LoanAmount: 2000000, CurrentRate: 4.5, NewRate: 3.8, MonthlyAmortization: 1e19}))
	if !strings.Contains(huge, "Nuvarande månadskostnad") {
		t.Fatal("huge amortization not rendered")
	}

	inf := renderCalc(mortgage.Compute(mortgage.Inputs{LoanAmount: 1000, CurrentRate: 1e308, NewRate: 0, MonthlyAmortization: 1}))
	if !strings.Contains(inf, "∞ kr") {
		t.Fatalf("infinite payment not shown as ∞:\n%s", inf)
	}
}

func TestRenderStatus(t *testing.T) {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	out := renderStatus(server.Status{
		StartedAt:    started,
		Requests:     12,
		Calculations: 10,
		Rejected:     2,
		LastError:    "loan: missing or non-numeric value",
	}, started.Add(90*time.Second))

	for _, want := range []string{"1m30s", "Förfrågningar", "12", "Avvisade", "loan: missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q", want)
		}
	}
}
