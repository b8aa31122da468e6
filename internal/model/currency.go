package model

// Currency is the denomination of an account.
type Currency int

const (
	// CurrencyUnknown is used when a currency code did not resolve.
	CurrencyUnknown Currency = iota
	// CurrencyUSDollar is United States dollars.
	CurrencyUSDollar
)

// ParseCurrency maps an ISO code to a Currency. Only "USD" is recognized,
// and the match is exact.
func ParseCurrency(code string) Currency {
	if code == "USD" {
		return CurrencyUSDollar
	}
	return CurrencyUnknown
}

func (c Currency) String() string {
	if c == CurrencyUSDollar {
		return "USD"
	}
	return "unknown"
}

// CurrencyFromInt maps a numeric currency value back to a Currency.
// Out-of-range values map to CurrencyUnknown.
func CurrencyFromInt(n int) Currency {
	if c := Currency(n); c == CurrencyUSDollar {
		return c
	}
	return CurrencyUnknown
}
