package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts in a statement's home currency and locale.
// It is built per parse result; there is no process-wide currency setting.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given currency and locale.
func NewFormatter(unit currency.Unit, locale language.Tag) Formatter {
	return Formatter{
		unit:    unit,
		printer: message.NewPrinter(locale),
	}
}

// ParseFormatter builds a Formatter from an ISO currency code and a BCP 47
// locale tag, as stored on a report.
func ParseFormatter(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("currency '%s': %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("locale '%s': %w", locale, err)
	}
	return NewFormatter(unit, tag), nil
}

// Currency returns the ISO code the formatter prints.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format prints v with the currency symbol and locale digit grouping, two decimals.
func (f Formatter) Format(v float64) string {
	return f.printer.Sprintf("%v %v", currency.Symbol(f.unit), number.Decimal(Round2(v), number.Scale(2)))
}

// Percent prints a percentage value with one decimal.
func (f Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%v%%", number.Decimal(Round1(v), number.Scale(1)))
}
