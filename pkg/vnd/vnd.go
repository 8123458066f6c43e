package vnd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a whole-VND amount with dot thousand separators and the
// currency suffix, e.g. 1500000 -> "1.500.000 ₫".
func Format(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + " ₫"
	if neg {
		out = "-" + out
	}
	return out
}
