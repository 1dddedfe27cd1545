package utils

import (
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount rounded to the currency's precision and
// prefixed with its symbol, e.g. "₦8,350.00" or "10,000 FCFA".
func FormatAmount(amount decimal.Decimal, code domain.CurrencyCode) string {
	cur, ok := domain.LookupCurrency(code)
	if !ok {
		return amount.String() + " " + string(code)
	}
	amount = RoundToPrecision(amount, code)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	s := groupThousands(amount.Abs().StringFixed(int32(cur.Precision)))
	if code == domain.CurrencyCFA || code == domain.CurrencyUSDT {
		return sign + s + " " + cur.Symbol
	}
	return sign + cur.Symbol + s
}

// RoundToPrecision rounds an amount to the number of decimals the currency carries.
func RoundToPrecision(amount decimal.Decimal, code domain.CurrencyCode) decimal.Decimal {
	cur, ok := domain.LookupCurrency(code)
	if !ok {
		return amount
	}
	return amount.Round(int32(cur.Precision))
}

func groupThousands(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	out := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	return string(out) + frac
}
