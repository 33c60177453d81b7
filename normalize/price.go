package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var priceNumberRE = regexp.MustCompile(`[0-9][0-9.,]*`)

// Currency symbols mapped to ISO codes.
var currencySymbols = map[string]string{
	"£": "GBP",
	"$": "USD",
	"€": "EUR",
	"¥": "JPY",
}

// ISO codes recognized inside raw price strings.
var currencyCodes = []string{"GBP", "USD", "EUR", "AUD", "CAD", "JPY", "CHF"}

// ParsePrice extracts a numeric price and an inferred currency code from
// a raw string like "£12,995" or "14995 GBP". Strings without digits
// (POA, "Call for price") yield a nil price.
func ParsePrice(raw string) (*float64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ""
	}

	currency := ""
	for symbol, code := range currencySymbols {
		if strings.Contains(raw, symbol) {
			currency = code
			break
		}
	}
	if currency == "" {
		upper := strings.ToUpper(raw)
		for _, code := range currencyCodes {
			if strings.Contains(upper, code) {
				currency = code
				break
			}
		}
	}

	m := priceNumberRE.FindString(raw)
	if m == "" {
		return nil, currency
	}
	// Thousands separators: a comma followed by exactly three digits is a
	// group separator; a trailing comma group of other widths is treated
	// as a decimal comma.
	if i := strings.LastIndexByte(m, ','); i >= 0 && len(m)-i-1 != 3 {
		m = m[:i] + "." + m[i+1:]
	}
	m = strings.ReplaceAll(m, ",", "")
	// More than one dot means the earlier ones were group separators.
	for strings.Count(m, ".") > 1 {
		m = strings.Replace(m, ".", "", 1)
	}

	value, err := strconv.ParseFloat(m, 64)
	if err != nil || value <= 0 {
		return nil, currency
	}
	return &value, currency
}
