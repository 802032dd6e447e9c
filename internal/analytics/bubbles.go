package analytics

import (
	"math"
	"time"

	"pledgeviz/internal/domain"
)

// Orbital diagram geometry in abstract view units.
const (
	ViewWidth  = 1000.0
	ViewHeight = 1000.0
	ViewMargin = 100.0

	// AmountScale converts sqrt(amount) into a bubble radius.
	AmountScale = 0.5
	// OrbitScale converts a duration in milliseconds into an orbit radius.
	OrbitScale = 5e-9
	// StrokeScale converts accrued interest into an outline width.
	StrokeScale = 5e-2
)

func orbitRadius(d time.Duration) float64 {
	return math.Abs(float64(d.Milliseconds())) * OrbitScale
}

// progress is the fraction of the contractual term elapsed at t. It may
// exceed 1 once a loan overruns.
func progress(start, end, t time.Time) float64 {
	term := end.Sub(start)
	if term < 0 {
		term = -term
	}
	if term == 0 {
		if t.Before(start) {
			return 0
		}
		return 1
	}
	return float64(t.Sub(start)) / float64(term)
}

// OrbitPosition places a loan on its orbit. Each loan orbits a circle whose
// radius is proportional to its term, hanging below the top margin. A full
// revolution is the term; after that the loan slides right along the
// margin by how long it has overrun.
func OrbitPosition(start, end, t time.Time) (x, y float64) {
	cx := ViewWidth / 2
	r := orbitRadius(end.Sub(start))
	cy := ViewMargin + r
	f := progress(start, end, t)
	if f < 1 {
		theta := f * 2 * math.Pi
		return cx + r*math.Sin(theta), cy - r*math.Cos(theta)
	}
	return cx + float64(t.Sub(end).Milliseconds())*OrbitScale, ViewMargin
}

// BubbleLayout places every pledge started at t. Pledges past their term
// are dropped unless they are overdue at t or their end is still ahead in
// real time.
func BubbleLayout(pledges []domain.Pledge, t, wall time.Time) []domain.Bubble {
	out := make([]domain.Bubble, 0, len(pledges))
	for _, p := range pledges {
		if !IsStarted(p, t) {
			continue
		}
		f := progress(p.StartDate, p.EndDate, t)
		overdue := IsOverdue(p, t)
		unfinished := p.EndDate.After(wall)
		if f > 1 && !overdue && !unfinished {
			continue
		}

		x, y := OrbitPosition(p.StartDate, p.EndDate, t)
		out = append(out, domain.Bubble{
			Pledge:  p,
			X:       x,
			Y:       y,
			Radius:  math.Sqrt(math.Max(p.Amount, 0)) * AmountScale,
			Orbit:   orbitRadius(p.EndDate.Sub(p.StartDate)),
			Stroke:  p.Amount * p.InterestRate * math.Min(f, 1) * StrokeScale,
			Overdue: overdue,
		})
	}
	return out
}
