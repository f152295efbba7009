package extraction

import "strings"

// Currency is an ISO 4217 code from the supported set
type Currency string

const (
	RWF Currency = "RWF"
	KES Currency = "KES"
	UGX Currency = "UGX"
	TZS Currency = "TZS"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// DefaultCurrency is assumed when the text carries no indicator
const DefaultCurrency = RWF

// currencyIndicators is checked in order; tokens are matched case-sensitively
var currencyIndicators = []struct {
	currency Currency
	tokens   []string
}{
	{RWF, []string{"RWF", "Frw", "FRW"}},
	{KES, []string{"KES", "Ksh"}},
	{UGX, []string{"UGX"}},
	{TZS, []string{"TZS"}},
	{USD, []string{"USD", "$"}},
	{EUR, []string{"EUR", "€"}},
	{GBP, []string{"GBP", "£"}},
}

// Currencies returns the supported currency codes in detection order
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencyIndicators))
	for _, ind := range currencyIndicators {
		out = append(out, ind.currency)
	}
	return out
}

// ParseCurrency looks up a currency code, ignoring case and surrounding space
func ParseCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, ind := range currencyIndicators {
		if string(ind.currency) == code {
			return ind.currency, true
		}
	}
	return "", false
}

// DetectCurrency scans the whole text for the first currency indicator in
// priority order, falling back to DefaultCurrency.
func DetectCurrency(raw string) Currency {
	for _, ind := range currencyIndicators {
		for _, token := range ind.tokens {
			if strings.Contains(raw, token) {
				return ind.currency
			}
		}
	}
	return DefaultCurrency
}
