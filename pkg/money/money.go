// Package money formats catalog and invoice amounts for display.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatCurrency renders amount in en-US grouping with no fraction digits,
// e.g. 1199 -> "$1,199". Halves round away from zero. NaN and infinities
// yield an empty string.
func FormatCurrency(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	prefix, ok := symbols[code]
	if !ok {
		prefix = code + " "
	}

	rounded := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + prefix + group(rounded.String())
}

// Amount converts a float price into a two-place decimal.
func Amount(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
