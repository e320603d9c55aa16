package parser

import (
	"regexp"
	"strings"
)

var (
	// issuers pad the merchant name with spaces before appending the city
	locationGap     = regexp.MustCompile(`\s{2,}`)
	// or after a store number with a single space: "TESCO PETROL 3731 LONDON"
	storeLocation   = regexp.MustCompile(`\s+\d{3,}\s+\p{L}[\p{L}\s.'&-]*$`)
	referenceSuffix = regexp.MustCompile(`\s*\*\s*[A-Za-z0-9]+\s*$`)
	trailingDigits  = regexp.MustCompile(`\d+\s*$`)
)

// merchantRewrites normalize marketplace prefixes to a readable brand.
var merchantRewrites = []struct{ from, to string }{
	{"AMZNMKTPLACE", "Amazon Marketplace"},
	{"AMZN MKTP UK", "Amazon Marketplace"},
	{"AMZN MKTP", "Amazon Marketplace"},
	{"AMAZON.CO.UK", "Amazon"},
	{"PAYPAL *", "PayPal "},
	{"WWW.", ""},
}

// CleanMerchant reduces a statement description to a merchant name.
// Two heuristics are lossy: trailing digits are always removed, which also
// drops numerals that belong to the brand itself, and a single-spaced store
// number of three or more digits cuts everything after it, so
// "HOTEL 101 DALMATIANS" becomes "HOTEL". Remaining whitespace runs,
// including newlines from quoted multi-line cells, collapse to one space.
func CleanMerchant(description string) string {
	name := description
	if loc := locationGap.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	name = storeLocation.ReplaceAllString(name, "")
	// rewrites run first so "PAYPAL *PAYEE" keeps the payee
	for _, rw := range merchantRewrites {
		name = strings.ReplaceAll(name, rw.from, rw.to)
	}
	name = referenceSuffix.ReplaceAllString(name, "")
	name = trailingDigits.ReplaceAllString(name, "")
	name = collapseSpace(name)
	if name == "" {
		return collapseSpace(description)
	}
	return name
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
