// Package money formats amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultMarker is written in front of amounts. It is plain ASCII so that it
// renders with any font, unlike the rupee sign.
const DefaultMarker = "Rs."

// Locale uses the Indian numbering system, e.g. 1,23,456.78.
var Locale = language.MustParse("en-IN")

// Formatter formats amounts with a currency marker.
type Formatter struct {
	Marker  string
	printer *message.Printer
}

// New returns a Formatter using marker. An empty marker means DefaultMarker.
func New(marker string) Formatter {
	if marker == "" {
		marker = DefaultMarker
	}

	return Formatter{
		Marker:  marker,
		printer: message.NewPrinter(Locale),
	}
}

// Number formats the amount with digit grouping and exactly two decimals.
func (f Formatter) Number(amount decimal.Decimal) string {
	if f.printer == nil {
		f.printer = message.NewPrinter(Locale)
	}

	rounded := amount.Round(2)
	abs := rounded.Abs()

	// Only the integer part goes through the printer so that no amount is
	// ever converted to float64.
	fixed := abs.StringFixed(2)
	fraction := fixed[strings.IndexByte(fixed, '.'):]
	formatted := f.printer.Sprint(number.Decimal(abs.IntPart())) + fraction

	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Format formats the amount with the currency marker, e.g. "Rs. 1,234.50".
func (f Formatter) Format(amount decimal.Decimal) string {
	n := f.Number(amount)
	if n[0] == '-' {
		return "-" + f.Marker + " " + n[1:]
	}

	return f.Marker + " " + n
}
