package mortgage

import (
	"testing"
)

func filled() *Calculator {
	return New(map[Field]string{
		LoanAmount:          "2 000 000",
		CurrentRate:         "4.5",
		NewRate:             "3.8",
		MonthlyAmortization: "6 000",
	})
}

func TestCalculator_ValidGate(t *testing.T) {
	cases := []struct {
		name                       string
		loan, cur, next, amortized string
		want                       bool
	}{
		{"all valid", "2000000", "4.5", "3.8", "6000", true},
		{"zero rates allowed", "1", "0", "0", "1", true},
		{"empty loan", "", "4.5", "3.8", "6000", false},
		{"empty current rate", "2000000", "", "3.8", "6000", false},
		{"empty new rate", "2000000", "4.5", "", "6000", false},
		{"empty amortization", "2000000", "4.5", "3.8", "", false},
		{"zero loan", "0", "4.5", "3.8", "6000", false},
		{"negative loan", "-5", "4.5", "3.8", "6000", false},
		{"zero amortization", "2000000", "4.5", "3.8", "0", false},
		{"negative current rate", "2000000", "-0.5", "3.8", "6000", false},
		{"negative new rate", "2000000", "4.5", "-1", "6000", false},
		{"letters only loan", "abc", "4.5", "3.8", "6000", false},
		{"lone minus", "-", "4.5", "3.8", "6000", false},
		{"two decimal points", "1.2.3", "4.5", "3.8", "6000", false},
		{"non-numeric rate", "2000000", "x", "3.8", "6000", false},
		{"new rate above current", "2000000", "3.0", "4.5", "6000", true},
	}
	for _, tc := range cases {
		c := New(map[Field]string{
			LoanAmount:          tc.loan,
			CurrentRate:         tc.cur,
			NewRate:             tc.next,
			MonthlyAmortization: tc.amortized,
		})
		if got := c.Valid(); got != tc.want {
			t.Errorf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCalculator_SetNormalizesAmountsOnly(t *testing.T) {
	var c Calculator
	c.Set(LoanAmount, "2 000 000")
	c.Set(MonthlyAmortization, "6 000")
	c.Set(CurrentRate, " 4.50 ")

	if got := c.Raw(LoanAmount); got != "2000000" {
		t.Fatalf("Raw(LoanAmount) = %q, want 2000000", got)
	}
	if got := c.Raw(MonthlyAmortization); got != "6000" {
		t.Fatalf("Raw(MonthlyAmortization) = %q, want 6000", got)
	}
	if got := c.Raw(CurrentRate); got != "4.50" {
		t.Fatalf("Raw(CurrentRate) = %q, want 4.50", got)
	}
	if got := c.Display(CurrentRate); got != "4.50" {
		t.Fatalf("Display(CurrentRate) = %q, want unchanged 4.50", got)
	}
	if got := Normalize(c.Display(LoanAmount)); got != "2000000" {
		t.Fatalf("Display(LoanAmount) does not round-trip: %q", c.Display(LoanAmount))
	}
}

func TestCalculator_StateMachine(t *testing.T) {
	c := &Calculator{}
	if c.State() != Unset {
		t.Fatalf("new calculator state = %v, want unset", c.State())
	}
	if _, ok := c.Calculate(); ok {
		t.Fatal("Calculate succeeded on empty form")
	}
	if c.State() != Unset {
		t.Fatal("failed Calculate changed state")
	}

	c = filled()
	first, ok := c.Calculate()
	if !ok {
		t.Fatal("Calculate failed on valid form")
	}
	if c.State() != Computed {
		t.Fatalf("state = %v, want computed", c.State())
	}

	second, ok := c.Calculate()
	if !ok || second != first {
		t.Fatalf("recalculate with same inputs = %+v, want %+v", second, first)
	}

	stored, ok := c.Result()
	if !ok || stored != first {
		t.Fatalf("Result() = %+v, %v", stored, ok)
	}
}

func TestCalculator_EditKeepsStaleResult(t *testing.T) {
	c := filled()
	first, _ := c.Calculate()

	c.Set(NewRate, "2.0")
	got, ok := c.Result()
	if !ok || got != first {
		t.Fatal("editing a field changed the shown result")
	}
	if !c.Stale() {
		t.Fatal("Stale() = false after edit")
	}

	// Invalid edit keeps the old result too.
	c.Set(LoanAmount, "")
	if _, ok := c.Result(); !ok {
		t.Fatal("invalidating a field dropped the result")
	}
	if _, ok := c.Calculate(); ok {
		t.Fatal("Calculate succeeded with empty loan")
	}
	if got, _ := c.Result(); got != first {
		t.Fatal("failed Calculate replaced the result")
	}

	c.Set(LoanAmount, "2000000")
	second, ok := c.Calculate()
	if !ok {
		t.Fatal("Calculate failed after fixing input")
	}
	if second.NewMonthlyPayment == first.NewMonthlyPayment {
		t.Fatal("recalculation did not replace the result")
	}
	if c.Stale() {
		t.Fatal("Stale() = true right after Calculate")
	}
}

func TestCalculator_Reset(t *testing.T) {
	c := filled()
	c.Calculate()
	c.Reset()
	if c.State() != Unset || c.Raw(LoanAmount) != "" || c.Valid() {
		t.Fatal("Reset did not clear the calculator")
	}
}
