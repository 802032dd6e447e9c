package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Metric is a number that may be undefined, e.g. a ratio whose denominator
// is zero. The zero value is undefined.
type Metric struct {
	value   float64
	defined bool
}

// Defined wraps v. NaN and infinities are stored as undefined.
func Defined(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Metric{}
	}
	return Metric{value: v, defined: true}
}

// Undefined returns a Metric with no value.
func Undefined() Metric {
	return Metric{}
}

// Ratio divides num by den, undefined when den is zero.
func Ratio(num, den float64) Metric {
	if den == 0 {
		return Metric{}
	}
	return Defined(num / den)
}

// Value returns the wrapped number and whether it is defined.
func (m Metric) Value() (float64, bool) {
	return m.value, m.defined
}

func (m Metric) IsDefined() bool {
	return m.defined
}

// Or returns the value, or fallback when undefined.
func (m Metric) Or(fallback float64) float64 {
	if !m.defined {
		return fallback
	}
	return m.value
}

// Add shifts a defined metric by delta. Undefined stays undefined.
func (m Metric) Add(delta float64) Metric {
	if !m.defined {
		return m
	}
	return Defined(m.value + delta)
}

func (m Metric) String() string {
	if !m.defined {
		return ""
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

// MarshalJSON encodes undefined as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(m.value, 'g', -1, 64)), nil
}

// MarshalYAML encodes undefined as null.
func (m Metric) MarshalYAML() (any, error) {
	if !m.defined {
		return nil, nil
	}
	return m.value, nil
}

// UnmarshalJSON reads null as undefined.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric{}
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	*m = Defined(v)
	return nil
}
