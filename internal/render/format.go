// Package render turns analytics results into terminal tables, HTML charts
// and machine-readable reports.
package render

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"pledgeviz/internal/domain"
)

// DefaultCurrency is the symbol used by the platform exports.
const DefaultCurrency = "£"

const displayDate = "02/01/2006"

var hundred = decimal.NewFromInt(100)

// Formatter renders numbers for display. Undefined metrics render blank.
type Formatter struct {
	Currency string
}

// NewFormatter returns a formatter for the given currency symbol.
func NewFormatter(currency string) Formatter {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Formatter{Currency: currency}
}

// Money renders v rounded to pence with thousands separators, e.g. £1,234.56.
func (f Formatter) Money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	_, pence, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + f.Currency + humanize.Comma(d.IntPart()) + "." + pence
}

// MoneyMetric is Money for an optional value.
func (f Formatter) MoneyMetric(m domain.Metric) string {
	v, ok := m.Value()
	if !ok {
		return ""
	}
	return f.Money(v)
}

// Rate renders a raw fraction as a percentage with two decimals: 0.085 is 8.50%.
func (f Formatter) Rate(m domain.Metric) string {
	v, ok := m.Value()
	if !ok {
		return ""
	}
	return decimal.NewFromFloat(v).Mul(hundred).StringFixed(2) + "%"
}

// Percent renders a value already scaled to 0..100 as a whole percentage.
func (f Formatter) Percent(m domain.Metric) string {
	v, ok := m.Value()
	if !ok {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(0) + "%"
}

// Count renders an integer with thousands separators.
func (f Formatter) Count(n int) string {
	return humanize.Comma(int64(n))
}

// Date renders t the way the export writes dates.
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDate)
}

// Relative describes t against the wall clock, e.g. "3 months ago".
func (f Formatter) Relative(t, wall time.Time) string {
	return humanize.RelTime(t, wall, "ago", "from now")
}
