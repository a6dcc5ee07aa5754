package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// symbols maps ISO-4217 codes to the narrow symbol used in en-US
// formatting. Codes not listed here format as "CODE amount".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "CA$",
	"NZD": "NZ$",
	"HKD": "HK$",
	"MXN": "MX$",
	"BRL": "R$",
	"KRW": "₩",
}

// Formatter renders monetary values for one currency in the en-US locale.
// Construction never fails: unknown codes fall back to two fraction digits
// and code-prefixed output, so a bad currency on the document degrades the
// display instead of breaking the render.
type Formatter struct {
	code   string
	symbol string
	digits int32
}

// NewFormatter builds the formatter for an ISO-4217 code. The fraction
// digit count comes from the currency's standard rounding rules (two for
// USD, zero for JPY, and so on).
func NewFormatter(code string) *Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	f := &Formatter{code: code, digits: 2}
	if unit, err := currency.ParseISO(code); err == nil {
		scale, _ := currency.Standard.Rounding(unit)
		f.digits = int32(scale)
	}
	f.symbol = symbols[code]
	return f
}

// Code returns the ISO code this formatter renders.
func (f *Formatter) Code() string {
	return f.code
}

// Format renders a decimal amount, e.g. "$1,234.50" or "SEK 75.00".
// Output is deterministic for identical (amount, currency) pairs.
func (f *Formatter) Format(d decimal.Decimal) string {
	neg := d.IsNegative()
	body := group(d.Abs().StringFixed(f.digits))
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if f.symbol != "" {
		b.WriteString(f.symbol)
	} else {
		b.WriteString(f.code)
		b.WriteByte(' ')
	}
	b.WriteString(body)
	return b.String()
}

// FormatFloat renders a float amount through the same contract.
func (f *Formatter) FormatFloat(v float64) string {
	return f.Format(decimal.NewFromFloat(v))
}

// group inserts thousands separators into the integer part of a fixed
// decimal string.
func group(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
