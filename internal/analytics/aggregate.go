package analytics

import (
	"time"

	"pledgeviz/internal/domain"
)

const (
	// PenaltyRate is added to the contracted rate once a loan overruns.
	PenaltyRate = 0.02
	// DaysPerYear converts annual rates into daily accrual.
	DaysPerYear = 365.25
	// OneDay is also the shortest elapsed duration used as a divisor.
	OneDay = 24 * time.Hour
)

// TotalAmount sums principal.
func TotalAmount(pledges []domain.Pledge) float64 {
	var total float64
	for _, p := range pledges {
		total += p.Amount
	}
	return total
}

// TotalExpectedInterest sums contracted interest.
func TotalExpectedInterest(pledges []domain.Pledge) float64 {
	var total float64
	for _, p := range pledges {
		total += p.ExpectedInterest
	}
	return total
}

// TotalPaidInterest sums interest paid to date in the real world.
func TotalPaidInterest(pledges []domain.Pledge) float64 {
	var total float64
	for _, p := range pledges {
		total += p.PaidInterest
	}
	return total
}

// WeightedInterestRate is the amount-weighted average rate. Undefined when
// the set holds no principal.
func WeightedInterestRate(pledges []domain.Pledge) domain.Metric {
	var amount, weighted float64
	for _, p := range pledges {
		amount += p.Amount
		weighted += p.Amount * p.InterestRate
	}
	return domain.Ratio(weighted, amount)
}

// elapsed is the span over which paid interest was earned: from start to
// the contractual end or wall time, whichever comes first.
func elapsed(p domain.Pledge, wall time.Time) time.Duration {
	end := p.EndDate
	if wall.Before(end) {
		end = wall
	}
	return end.Sub(p.StartDate)
}

// InterestPerDay is the historical earning rate: paid interest spread over
// the elapsed duration. Durations shorter than a day count as one day.
func InterestPerDay(pledges []domain.Pledge, wall time.Time) float64 {
	var total float64
	for _, p := range pledges {
		d := elapsed(p, wall)
		if d < OneDay {
			d = OneDay
		}
		total += p.PaidInterest / float64(d) * float64(OneDay)
	}
	return total
}

// InterestPerDayContracted is the forward earning rate at t for pledges
// still active (live status, or end after t). Pledges past their end earn
// the penalty rate on top.
func InterestPerDayContracted(pledges []domain.Pledge, t time.Time) float64 {
	var total float64
	for _, p := range pledges {
		active := p.Status == domain.StatusLive || p.EndDate.After(t)
		if !active {
			continue
		}
		rate := p.InterestRate
		if p.EndDate.Before(t) {
			rate += PenaltyRate
		}
		total += p.Amount * rate / DaysPerYear
	}
	return total
}

// AccrualProgress is the fraction of a pledge's paid interest considered
// accrued by t, clamped to [0, 1].
func AccrualProgress(p domain.Pledge, t, wall time.Time) float64 {
	span := elapsed(p, wall)
	if span <= 0 {
		if t.Before(p.StartDate) {
			return 0
		}
		return 1
	}
	f := float64(t.Sub(p.StartDate)) / float64(span)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// InterestPaid prorates each pledge's paid interest linearly over its
// elapsed span, so accrual animates smoothly even though real payments are
// lumpy.
func InterestPaid(pledges []domain.Pledge, t, wall time.Time) float64 {
	var total float64
	for _, p := range pledges {
		total += AccrualProgress(p, t, wall) * p.PaidInterest
	}
	return total
}

// AmountUnrepaid estimates outstanding principal using the repaid fraction.
// An undefined fraction reduces nothing.
func AmountUnrepaid(pledges []domain.Pledge) float64 {
	var total float64
	for _, p := range pledges {
		total += p.Amount - p.Amount*p.RepaidFraction.Or(0)
	}
	return total
}

// RepaidPercent is paid over expected as a percentage. Undefined when
// nothing is expected.
func RepaidPercent(paid, expected float64) domain.Metric {
	if expected <= 0 {
		return domain.Undefined()
	}
	return domain.Defined(paid / expected * 100)
}

// Stats computes one stats-table row in a single pass.
func Stats(label string, pledges []domain.Pledge) domain.StatsRow {
	row := domain.StatsRow{Label: label, Count: len(pledges)}
	var weighted float64
	for _, p := range pledges {
		row.Amount += p.Amount
		row.ExpectedInterest += p.ExpectedInterest
		row.PaidInterest += p.PaidInterest
		weighted += p.Amount * p.InterestRate
	}
	row.InterestRate = domain.Ratio(weighted, row.Amount)
	return row
}
