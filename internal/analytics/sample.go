package analytics

import (
	"time"

	"pledgeviz/internal/domain"
)

// DefaultSamplePoints is the number of intervals a chart window is split into.
const DefaultSamplePoints = 100

// SeriesFunc evaluates a metric at one reference time.
type SeriesFunc func(t time.Time) domain.Metric

// Sample evaluates fn at points+1 evenly spaced instants from from to to
// inclusive. Undefined values are left out of the result. An empty or
// inverted window yields a single sample at to.
func Sample(from, to time.Time, points int, fn SeriesFunc) []domain.Point {
	if points <= 0 {
		points = DefaultSamplePoints
	}
	if !to.After(from) {
		return appendDefined(nil, to, fn(to))
	}

	step := to.Sub(from) / time.Duration(points)
	out := make([]domain.Point, 0, points+1)
	for i := 0; i <= points; i++ {
		t := from.Add(step * time.Duration(i))
		if i == points {
			t = to
		}
		out = appendDefined(out, t, fn(t))
	}
	return out
}

func appendDefined(out []domain.Point, t time.Time, m domain.Metric) []domain.Point {
	if v, ok := m.Value(); ok {
		out = append(out, domain.Point{At: t, Value: v})
	}
	return out
}

// Always wraps a plain float-valued function as a SeriesFunc.
func Always(fn func(t time.Time) float64) SeriesFunc {
	return func(t time.Time) domain.Metric {
		return domain.Defined(fn(t))
	}
}
