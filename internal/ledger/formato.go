package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatearSoles renders d as Peruvian soles: S/ 1,234.50.
func FormatearSoles(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	entero, frac := s[:len(s)-3], s[len(s)-2:]
	var b strings.Builder
	for i, r := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "S/ " + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
