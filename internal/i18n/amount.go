package i18n

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmountFormat reports an amount that does not follow the current
// language's number format.
var ErrAmountFormat = errors.New("malformed amount")

// separators returns the grouping and decimal separators Money prints.
func (l Lang) separators() (group, dec byte) {
	if l == EN {
		return ',', '.'
	}
	return '.', ','
}

// Number formats an amount the way Money does, without the currency sign.
func (t *Translator) Number(amount decimal.Decimal) string {
	return strings.Replace(t.Money(amount), "$", "", 1)
}

// ParseAmount reads an amount typed the way Money shows it for the current
// language. A leading "$" is optional. Grouping separators must split the
// integer part into groups of three and at most two decimals are accepted,
// so "1,000" in English and "1.000" in Spanish both read as a thousand while
// "12,50" in English is rejected rather than guessed.
func (t *Translator) ParseAmount(raw string) (decimal.Decimal, error) {
	group, dec := t.Lang().separators()

	s := strings.TrimSpace(raw)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return decimal.Zero, ErrAmountFormat
	}

	whole, frac, hasFrac := strings.Cut(s, string(dec))
	if hasFrac && (frac == "" || len(frac) > 2 || !digits(frac)) {
		return decimal.Zero, ErrAmountFormat
	}
	whole, ok := ungroup(whole, group)
	if !ok {
		return decimal.Zero, ErrAmountFormat
	}

	plain := whole
	if hasFrac {
		plain += "." + frac
	}
	if neg {
		plain = "-" + plain
	}
	amount, err := decimal.NewFromString(plain)
	if err != nil {
		return decimal.Zero, ErrAmountFormat
	}
	return amount, nil
}

// ungroup strips grouping separators from an integer part, checking that
// every group after the first has exactly three digits.
func ungroup(s string, group byte) (string, bool) {
	parts := strings.Split(s, string(group))
	if len(parts) == 1 {
		return s, digits(s)
	}
	if len(parts[0]) == 0 || len(parts[0]) > 3 || !digits(parts[0]) {
		return "", false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 || !digits(p) {
			return "", false
		}
	}
	return strings.Join(parts, ""), true
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
