package parser

import (
	"regexp"
	"strings"
	"unicode"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/money"
)

const foreignSpendMarker = "Foreign Spend Amount"

var (
	foreignAmountPattern = regexp.MustCompile(`(?s)Foreign Spend Amount:\s*([\d.,]+)\s+(.+?)\s*(?:Commission Amount|Currency Exchange Rate|\n|$)`)
	commissionPattern    = regexp.MustCompile(`Commission Amount:\s*([\d.,]+)`)
	exchangeRatePattern  = regexp.MustCompile(`Currency Exchange Rate:\s*([\d.,]+)`)
)

// currencyCodes maps the currency names printed on statements to ISO 4217 codes.
var currencyCodes = map[string]string{
	"UNITED STATES DOLLAR": "USD",
	"US DOLLAR":            "USD",
	"EURO":                 "EUR",
	"POUND STERLING":       "GBP",
	"JAPANESE YEN":         "JPY",
	"SWISS FRANC":          "CHF",
	"CANADIAN DOLLAR":      "CAD",
	"AUSTRALIAN DOLLAR":    "AUD",
	"NEW ZEALAND DOLLAR":   "NZD",
	"HONG KONG DOLLAR":     "HKD",
	"SINGAPORE DOLLAR":     "SGD",
	"SWEDISH KRONA":        "SEK",
	"NORWEGIAN KRONE":      "NOK",
	"DANISH KRONE":         "DKK",
	"POLISH ZLOTY":         "PLN",
	"CZECH KORUNA":         "CZK",
	"HUNGARIAN FORINT":     "HUF",
	"TURKISH LIRA":         "TRY",
	"UAE DIRHAM":           "AED",
	"ISRAELI NEW SHEKEL":   "ILS",
	"NEW ISRAELI SHEQEL":   "ILS",
	"THAI BAHT":            "THB",
	"INDIAN RUPEE":         "INR",
	"MEXICAN PESO":         "MXN",
	"SOUTH AFRICAN RAND":   "ZAR",
	"MOROCCAN DIRHAM":      "MAD",
	"ICELANDIC KRONA":      "ISK",
}

// ExtractForeignCurrency reads the foreign spend fields from an extended
// details blob. It returns nil when the blob does not describe foreign spend
// or its amount cannot be read.
func ExtractForeignCurrency(details string) *domain.ForeignCurrencyDetail {
	if !strings.Contains(details, foreignSpendMarker) {
		return nil
	}
	m := foreignAmountPattern.FindStringSubmatch(details)
	if m == nil {
		return nil
	}
	amount, err := money.ParseNumber(m[1])
	if err != nil {
		return nil
	}
	name := strings.Join(strings.Fields(m[2]), " ")
	if name == "" {
		return nil
	}

	return &domain.ForeignCurrencyDetail{
		ForeignAmount: amount,
		CurrencyName:  name,
		CurrencyCode:  CurrencyCode(name),
		Commission:    optionalNumber(commissionPattern, details),
		ExchangeRate:  optionalNumber(exchangeRatePattern, details),
	}
}

// CurrencyCode resolves a printed currency name, falling back to its first
// three letters.
func CurrencyCode(name string) string {
	upper := strings.ToUpper(strings.Join(strings.Fields(name), " "))
	if code, ok := currencyCodes[upper]; ok {
		return code
	}
	letters := make([]rune, 0, 3)
	for _, r := range upper {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	return string(letters)
}

func optionalNumber(p *regexp.Regexp, details string) float64 {
	m := p.FindStringSubmatch(details)
	if m == nil {
		return 0
	}
	return money.ParseAmount(m[1])
}
