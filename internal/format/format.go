// Package format renders monetary and percentage values the way the
// ContaSmart reports present them: Brazilian currency notation with a dot
// for thousands and a comma for decimals.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats a value as "R$ 1.234,56". Negative values keep a leading
// minus sign; use Accounting for the parenthesized report style.
func Currency(v decimal.Decimal) string {
	neg := v.IsNegative()

	s := v.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder

	if neg {
		sb.WriteByte('-')
	}

	sb.WriteString("R$ ")

	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(digit)
	}

	sb.WriteByte(',')
	sb.WriteString(fracPart)

	return sb.String()
}

// Accounting formats a value like Currency but wraps negatives in
// parentheses, as statement line items are printed.
func Accounting(v decimal.Decimal) string {
	if v.IsNegative() {
		return "(" + Currency(v.Abs()) + ")"
	}

	return Currency(v)
}

// Percent formats a value as "37.55%".
func Percent(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}
