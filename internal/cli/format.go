package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes every rendered amount unless configured otherwise.
const DefaultCurrencySymbol = "$"

// FormatCurrency renders amount with thousands separators and exactly two
// decimals, e.g. "$1,500.50". Negative amounts render as "$-5.00".
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(2) // "1500.50", any magnitude
	point := strings.IndexByte(fixed, '.')

	return symbol + sign + groupThousands(fixed[:point]) + fixed[point:]
}

// groupThousands inserts a comma between every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a percentage with one decimal, e.g. "40.0%".
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(1) + "%"
}
