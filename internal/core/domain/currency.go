package domain

import "strings"

// CurrencyCode identifies one of the wallet currencies.
type CurrencyCode string

const (
	CurrencyCFA  CurrencyCode = "CFA"
	CurrencyNGN  CurrencyCode = "NGN"
	CurrencyUSDT CurrencyCode = "USDT"
)

// Currency describes a supported currency and how its amounts are displayed.
type Currency struct {
	Code      CurrencyCode `json:"code"`
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	Precision int          `json:"precision"` // digits after the decimal point
}

// SupportedCurrencies lists every currency a wallet can hold, in provisioning order.
var SupportedCurrencies = []Currency{
	{Code: CurrencyCFA, Symbol: "FCFA", Name: "CFA Franc", Precision: 0},
	{Code: CurrencyNGN, Symbol: "₦", Name: "Nigerian Naira", Precision: 2},
	{Code: CurrencyUSDT, Symbol: "USDT", Name: "Tether USD", Precision: 6},
}

// ParseCurrencyCode normalises s and reports whether it names a supported currency.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	return code, code.IsSupported()
}

// IsSupported reports whether c is one of SupportedCurrencies.
func (c CurrencyCode) IsSupported() bool {
	_, ok := LookupCurrency(c)
	return ok
}

// LookupCurrency returns the metadata for c.
func LookupCurrency(c CurrencyCode) (Currency, bool) {
	for _, cur := range SupportedCurrencies {
		if cur.Code == c {
			return cur, true
		}
	}
	return Currency{}, false
}

func (c CurrencyCode) String() string { return string(c) }
