// Package mortgage holds the savings calculator: the four input fields,
// their normalization and validation, and the payment arithmetic.
package mortgage

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field identifies one of the four calculator inputs.
type Field int

const (
	LoanAmount Field = iota
	CurrentRate
	NewRate
	MonthlyAmortization
	fieldCount // sentinel
)

// Fields lists the inputs in form order.
var Fields = []Field{LoanAmount, CurrentRate, NewRate, MonthlyAmortization}

// String returns the field's API key.
func (f Field) String() string {
	switch f {
	case LoanAmount:
		return "loan"
	case CurrentRate:
		return "current_rate"
	case NewRate:
		return "new_rate"
	case MonthlyAmortization:
		return "amortization"
	default:
		return "unknown"
	}
}

// Label returns the Swedish form label.
func (f Field) Label() string {
	switch f {
	case LoanAmount:
		return "Lånebelopp (kr)"
	case CurrentRate:
		return "Nuvarande ränta (%)"
	case NewRate:
		return "Erbjuden ränta (%)"
	case MonthlyAmortization:
		return "Månatlig amortering (kr)"
	default:
		return ""
	}
}

// Placeholder returns the example value shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case LoanAmount:
		return "2 000 000"
	case CurrentRate:
		return "4.5"
	case NewRate:
		return "3.8"
	case MonthlyAmortization:
		return "6 000"
	default:
		return ""
	}
}

// IsAmount reports whether the field holds a kronor amount. Amount fields are
// normalized and shown grouped; rate fields are kept as typed.
func (f Field) IsAmount() bool {
	return f == LoanAmount || f == MonthlyAmortization
}

var (
	// ErrIncomplete means a field is empty or not a number.
	ErrIncomplete = errors.New("missing or non-numeric value")
	// ErrOutOfRange means a field parsed but breaks its sign rule.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotFinite means valid inputs produced an infinite payment, which
	// cannot be sent as JSON.
	ErrNotFinite = errors.New("result is not a finite number")
)

// Inputs is a parsed snapshot of the four fields.
type Inputs struct {
	LoanAmount          float64 `json:"loan"`
	CurrentRate         float64 `json:"current_rate"`
	NewRate             float64 `json:"new_rate"`
	MonthlyAmortization float64 `json:"amortization"`
}

// Result holds the derived payments. Values are unrounded.
type Result struct {
	Inputs                Inputs  `json:"inputs"`
	CurrentMonthlyPayment float64 `json:"current_monthly_payment"`
	NewMonthlyPayment     float64 `json:"new_monthly_payment"`
	MonthlySavings        float64 `json:"monthly_savings"`
	YearlySavings         float64 `json:"yearly_savings"`
}

// Finite reports whether every derived value is a finite number. Inputs
// have no upper bound, so a huge rate can overflow to +Inf.
func (r Result) Finite() bool {
	for _, v := range []float64{r.CurrentMonthlyPayment, r.NewMonthlyPayment, r.MonthlySavings, r.YearlySavings} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MonthlyInterest returns the interest-only part of a monthly payment for an
// annual rate given in percent.
func MonthlyInterest(loanAmount, ratePercent float64) float64 {
	return (loanAmount * (ratePercent / 100)) / 12
}

// Compute derives the payments and savings from in.
func Compute(in Inputs) Result {
	current := in.MonthlyAmortization + MonthlyInterest(in.LoanAmount, in.CurrentRate)
	next := in.MonthlyAmortization + MonthlyInterest(in.LoanAmount, in.NewRate)
	return Result{
		Inputs:                in,
		CurrentMonthlyPayment: current,
		NewMonthlyPayment:     next,
		MonthlySavings:        current - next,
		YearlySavings:         (current - next) * 12,
	}
}

// Validate checks the sign rules: loan and amortization must be positive,
// rates non-negative. There are no upper bounds.
func Validate(in Inputs) error {
	checks := []struct {
		field Field
		value float64
		ok    bool
	}{
		{LoanAmount, in.LoanAmount, in.LoanAmount > 0},
		{CurrentRate, in.CurrentRate, in.CurrentRate >= 0},
		{NewRate, in.NewRate, in.NewRate >= 0},
		{MonthlyAmortization, in.MonthlyAmortization, in.MonthlyAmortization > 0},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%s: %w", c.field, ErrIncomplete)
		}
		if !c.ok {
			return fmt.Errorf("%s %v: %w", c.field, c.value, ErrOutOfRange)
		}
	}
	return nil
}

// Normalize strips everything except digits, '.' and '-' from typed amount
// text, so "2 000 000" becomes "2000000".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumber parses field text as a finite float64.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseInputs converts raw text for each field into Inputs. Amount text is
// normalized first, the same way the form does it.
func ParseInputs(raw map[Field]string) (Inputs, error) {
	var c Calculator
	for _, f := range Fields {
		c.Set(f, raw[f])
	}
	return c.Inputs()
}
