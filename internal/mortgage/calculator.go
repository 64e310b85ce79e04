package mortgage

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/bolan/internal/cli"
)

// State is the calculator's result state.
type State int

const (
	Unset    State = iota // no result shown
	Computed              // result shown for the last calculated snapshot
)

func (s State) String() string {
	if s == Computed {
		return "computed"
	}
	return "unset"
}

// Calculator owns the four text fields and the last calculated result.
// The zero value is an empty calculator in the Unset state.
//
// Editing a field never touches the stored result: it stays on screen,
// possibly stale, until Calculate runs again.
type Calculator struct {
	raw    [fieldCount]string
	result *Result
}

// New returns a calculator prefilled with raw text per field.
func New(prefill map[Field]string) *Calculator {
	c := &Calculator{}
	for f, v := range prefill {
		c.Set(f, v)
	}
	return c
}

// Set stores text for a field. Amount fields keep only digits, '.' and '-';
// rate fields keep the text as typed, trimmed.
func (c *Calculator) Set(f Field, text string) {
	if f < 0 || f >= fieldCount {
		return
	}
	if f.IsAmount() {
		c.raw[f] = Normalize(text)
		return
	}
	c.raw[f] = strings.TrimSpace(text)
}

// Raw returns the stored text for a field.
func (c *Calculator) Raw(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return c.raw[f]
}

// Display returns the text to show in the field's input. Amounts are grouped
// with sv-SE thousand separators; rates are shown as stored.
func (c *Calculator) Display(f Field) string {
	v := c.Raw(f)
	if v == "" || !f.IsAmount() {
		return v
	}
	return cli.GroupDigits(v)
}

// Inputs parses the current fields.
func (c *Calculator) Inputs() (Inputs, error) {
	var vals [fieldCount]float64
	for _, f := range Fields {
		v, ok := ParseNumber(c.raw[f])
		if !ok {
			return Inputs{}, fmt.Errorf("%s: %w", f, ErrIncomplete)
		}
		vals[f] = v
	}
	in := Inputs{
		LoanAmount:          vals[LoanAmount],
		CurrentRate:         vals[CurrentRate],
		NewRate:             vals[NewRate],
		MonthlyAmortization: vals[MonthlyAmortization],
	}
	if err := Validate(in); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// Valid reports whether the calculate action is enabled.
func (c *Calculator) Valid() bool {
	_, err := c.Inputs()
	return err == nil
}

// Calculate computes a new result from the current fields and replaces the
// previous one. It does nothing and returns false when the fields are invalid.
func (c *Calculator) Calculate() (Result, bool) {
	in, err := c.Inputs()
	if err != nil {
		return Result{}, false
	}
	r := Compute(in)
	c.result = &r
	return r, true
}

// Result returns the last calculated result, if any.
func (c *Calculator) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// State reports Unset or Computed.
func (c *Calculator) State() State {
	if c.result == nil {
		return Unset
	}
	return Computed
}

// Stale reports whether a shown result no longer matches the fields.
func (c *Calculator) Stale() bool {
	if c.result == nil {
		return false
	}
	in, err := c.Inputs()
	return err != nil || in != c.result.Inputs
}

// Reset clears all fields and the result.
func (c *Calculator) Reset() {
	*c = Calculator{}
}
