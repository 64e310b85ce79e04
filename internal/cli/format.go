// Package cli provides number formatting and rendering utilities for
// terminal output.
package cli

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the only locale bolan formats for.
var Locale = language.MustParse("sv-SE")

var printer = message.NewPrinter(Locale)

// Currency is appended to formatted amounts.
const Currency = "kr"

// Shown in place of amounts that are not finite numbers.
const (
	Infinite   = "∞"
	NotANumber = "?"
)

// groupSep is the locale's thousand separator, taken from the printer.
var groupSep = func() string {
	s := strings.TrimPrefix(printer.Sprintf("%d", 1000000), "1")
	if i := strings.Index(s, "000"); i > 0 {
		return s[:i]
	}
	return "\u00a0"
}()

// groupInt inserts the group separator every three digits from the right.
func groupInt(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatInt groups an integer with the locale's thousand separator.
// e.g., 2000000 -> "2 000 000"
func FormatInt(n int64) string {
	// Keep an ASCII minus; the locale's U+2212 does not survive Normalize.
	s := strconv.FormatInt(n, 10)
	if digits, neg := strings.CutPrefix(s, "-"); neg {
		return "-" + groupInt(digits)
	}
	return groupInt(s)
}

// FormatWhole rounds v to a whole number and groups it. There is no upper
// bound; non-finite values render as Infinite or NotANumber.
func FormatWhole(v float64) string {
	switch {
	case math.IsNaN(v):
		return NotANumber
	case math.IsInf(v, 1):
		return Infinite
	case math.IsInf(v, -1):
		return "-" + Infinite
	}
	r := math.Round(v)
	s := groupInt(strconv.FormatFloat(math.Abs(r), 'f', 0, 64))
	if r < 0 {
		return "-" + s
	}
	return s
}

// FormatKronor rounds to the nearest whole krona and groups it.
// e.g., 13499.6 -> "13 500 kr"
func FormatKronor(v float64) string {
	return FormatWhole(v) + " " + Currency
}

// FormatRate formats a percent rate with two decimals and a decimal comma.
// e.g., 4.5 -> "4,50 %"
func FormatRate(pct float64) string {
	return strings.Replace(strconv.FormatFloat(pct, 'f', 2, 64), ".", ",", 1) + " %"
}

// GroupDigits re-renders normalized amount text with thousand separators.
// A typed fraction is kept verbatim so the result normalizes back to the
// same text. Text that is not a plain number, such as a lone "-" while the
// user is still typing, comes back unchanged.
func GroupDigits(raw string) string {
	body, neg := strings.CutPrefix(raw, "-")
	intPart, frac, hasDot := strings.Cut(body, ".")
	if intPart == "" || !allDigits(intPart) || !allDigits(frac) {
		return raw
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	s := groupInt(intPart)
	if neg {
		s = "-" + s
	}
	if hasDot {
		s += "." + frac
	}
	return s
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatDelta formats a kronor difference with an explicit sign.
func FormatDelta(v float64) string {
	if math.Round(v) > 0 {
		return "+" + FormatKronor(v)
	}
	return FormatKronor(v)
}
