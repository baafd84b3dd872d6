package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a human-entered amount string into a decimal.
func Parse(s string) (decimal.Decimal, error) {
	// allow common thousands separators (commas, underscores and spaces)
	sanitized := strings.ReplaceAll(s, ",", "")
	sanitized = strings.ReplaceAll(sanitized, "_", "")
	sanitized = strings.ReplaceAll(sanitized, " ", "")

	parsed, err := decimal.NewFromString(sanitized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string: %s", s)
	}

	return parsed, nil
}

// Format renders the given amount rounded to the given number of decimal places,
// trimming any trailing zeroes.
func Format(d decimal.Decimal, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	s := d.StringFixed(int32(decimals)) //nolint:gosec
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	if s == "-0" {
		return "0"
	}

	return s
}
