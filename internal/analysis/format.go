package analysis

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders a currency-like value rounded half away from zero,
// with thousands grouping, e.g. 480000 -> "480,000". Values that round to
// zero render as "0", never "-0". Non-finite values render as "".
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	v = math.Round(v)
	if v == 0 {
		v = 0 // normalises -0
	}
	return printer.Sprintf("%.0f", v)
}

// FormatRatio renders a ratio with two decimals, e.g. 1.846 -> "1.85".
// Absent or non-finite ratios render as "".
func FormatRatio(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return ""
	}
	return printer.Sprintf("%.2f", *v)
}

// Formatter prefixes money values with a currency symbol.
type Formatter struct {
	Currency string
}

// DefaultFormatter uses a dollar sign.
var DefaultFormatter = Formatter{Currency: "$"}

// Money renders v as "$480,000" or "-$40,000".
func (f Formatter) Money(v float64) string {
	s := FormatMoney(math.Abs(v))
	if s == "" {
		return ""
	}
	if v < 0 && s != "0" {
		return "-" + f.Currency + s
	}
	return f.Currency + s
}
