package parser

import (
	"strings"
	"time"

	"card-wrapped/internal/domain"
	"card-wrapped/internal/money"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Header names are compared after normalizeHeader.
const (
	amexDate            = "date"
	amexDescription     = "description"
	amexAmount          = "amount"
	amexExtendedDetails = "extended details"
	amexStatementAs     = "appears on your statement as"
	amexAddress         = "address"
	amexTown            = "town/city"
	amexPostcode        = "postcode"
	amexCountry         = "country"
	amexReference       = "reference"
	amexCategory        = "category"

	isracardDate        = "תאריך"
	isracardAmount      = "סכום"
	isracardDescription = "תיאור"
	isracardMerchant    = "שם בית העסק"
	isracardReference   = "אסמכתא"
)

// row is one CSV record keyed by normalized header. It never leaves this package.
type row map[string]string

// dialect bundles everything that varies between statement exports.
type dialect struct {
	name     domain.Dialect
	currency currency.Unit
	locale   language.Tag

	matches   func(headers map[string]bool) bool
	project   func(r row) domain.RawRecord
	parseDate func(s string) (time.Time, error)
	category  func(rec domain.RawRecord) string
	foreign   bool
}

var amexUK = &dialect{
	name:     domain.DialectAmexUK,
	currency: currency.GBP,
	locale:   language.BritishEnglish,
	matches: func(headers map[string]bool) bool {
		return headers[amexDate] && headers[amexCategory]
	},
	project: func(r row) domain.RawRecord {
		return domain.RawRecord{
			Date:            strings.TrimSpace(r[amexDate]),
			Description:     strings.TrimSpace(r[amexDescription]),
			Amount:          money.ParseAmount(r[amexAmount]),
			ExtendedDetails: r[amexExtendedDetails],
			StatementAs:     strings.TrimSpace(r[amexStatementAs]),
			Address:         joinNonEmpty(", ", r[amexAddress], r[amexTown], r[amexPostcode], r[amexCountry]),
			Reference:       strings.TrimSpace(r[amexReference]),
			Category:        strings.TrimSpace(r[amexCategory]),
		}
	},
	parseDate: parseNumericDate,
	category:  func(rec domain.RawRecord) string { return rec.Category },
	foreign:   true,
}

// x/text predeclares only a handful of currency units.
var ils = currency.MustParseISO("ILS")

var isracardHE = &dialect{
	name:     domain.DialectIsracardHE,
	currency: ils,
	locale:   language.MustParse("he-IL"),
	matches: func(headers map[string]bool) bool {
		return headers[isracardDate] && headers[isracardAmount]
	},
	project: func(r row) domain.RawRecord {
		description := strings.TrimSpace(r[isracardDescription])
		if description == "" {
			description = strings.TrimSpace(r[isracardMerchant])
		}
		return domain.RawRecord{
			Date:        strings.TrimSpace(r[isracardDate]),
			Description: description,
			Amount:      money.ParseAmount(r[isracardAmount]),
			Reference:   strings.TrimSpace(r[isracardReference]),
		}
	},
	parseDate: parseMonthNameDate,
	category:  func(rec domain.RawRecord) string { return InferCategory(rec.Description) },
}

// dialects are tried in order; the first whose headers match wins.
var dialects = []*dialect{amexUK, isracardHE}

func detectDialect(header []string) *dialect {
	headers := make(map[string]bool, len(header))
	for _, h := range header {
		headers[normalizeHeader(h)] = true
	}
	for _, d := range dialects {
		if d.matches(headers) {
			return d
		}
	}
	return nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
