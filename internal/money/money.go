// Package money parses statement amounts and rounds aggregated figures.
//
// Amounts are parsed through shopspring/decimal so that the value handed to
// the rest of the pipeline is the closest float64 to what the statement
// printed. Rounding is half away from zero and is meant to be applied once,
// when a figure leaves the aggregation step.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by ParseNumber for blank input.
var ErrEmptyAmount = errors.New("empty amount")

// grouping commas, currency symbols and any whitespace inside the number
var amountReplacer = strings.NewReplacer(
	",", "",
	" ", "",
	"\u00a0", "",
	"£", "",
	"₪", "",
	"€", "",
	"$", "",
)

// ParseNumber parses a signed decimal, stripping grouping commas and
// currency symbols first.
func ParseNumber(s string) (float64, error) {
	s = amountReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount '%s': %w", s, err)
	}
	f, _ := d.Float64()
	return f, nil
}

// ParseAmount is ParseNumber with a zero default for missing or invalid input.
func ParseAmount(s string) float64 {
	f, err := ParseNumber(s)
	if err != nil {
		return 0
	}
	return f
}

// Round2 rounds a currency value to whole cents.
func Round2(v float64) float64 {
	return round(v, 2)
}

// Round1 rounds a percentage to one decimal place.
func Round1(v float64) float64 {
	return round(v, 1)
}

func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
