package analytics

import (
	"math"
	"time"

	"pledgeviz/internal/domain"
)

// DefaultLadderBucket is three months.
const DefaultLadderBucket = time.Duration(3 * DaysPerYear / 12 * float64(OneDay))

// MaxHistogramBuckets bounds the histogram length. Values past the last
// bucket are folded into it.
const MaxHistogramBuckets = 1000

// Histogram buckets values by floor(v/size). Buckets run contiguously from
// zero to the largest index. In proportional mode each value is scaled by
// its bucket's lower bound (at least one bucket wide), which shows how many
// times over a bucket is filled. Negative values land in bucket zero.
//
// At most MaxHistogramBuckets buckets are built. The last one then widens
// its Upper bound to cover the largest folded value.
func Histogram(values []float64, size float64, proportional bool) []domain.Bucket {
	if size <= 0 || len(values) == 0 {
		return nil
	}

	var buckets []domain.Bucket
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		raw := math.Floor(v / size)
		idx := 0
		switch {
		case raw >= MaxHistogramBuckets:
			idx = MaxHistogramBuckets - 1
		case raw > 0:
			idx = int(raw)
		}
		for len(buckets) <= idx {
			n := float64(len(buckets))
			buckets = append(buckets, domain.Bucket{Lower: n * size, Upper: (n + 1) * size})
		}
		if upper := (raw + 1) * size; idx == MaxHistogramBuckets-1 && upper > buckets[idx].Upper {
			buckets[idx].Upper = upper
		}
		if proportional {
			buckets[idx].Value += v / math.Max(size, float64(idx)*size)
		} else {
			buckets[idx].Value += v
		}
	}
	return buckets
}

// Amounts extracts pledge principal for histogramming.
func Amounts(pledges []domain.Pledge) []float64 {
	out := make([]float64, len(pledges))
	for i, p := range pledges {
		out[i] = p.Amount
	}
	return out
}

// MaturityLadder groups pledges still outstanding at t (live status, or end
// after t) by how far their contractual end lies from t. Overdue rungs come
// first, most overdue at the top, then upcoming rungs nearest first. Index
// counts whole buckets away from t, so both sides have a rung zero.
func MaturityLadder(pledges []domain.Pledge, t time.Time, bucket time.Duration) []domain.LadderRung {
	if bucket <= 0 {
		bucket = DefaultLadderBucket
	}

	overdue := map[int]*domain.LadderRung{}
	upcoming := map[int]*domain.LadderRung{}
	maxOverdue, maxUpcoming := -1, -1

	for _, p := range pledges {
		due := p.EndDate.Sub(t)
		if due <= 0 && p.Status != domain.StatusLive {
			continue
		}
		idx := int(due / bucket)
		side, top := upcoming, &maxUpcoming
		if due <= 0 {
			idx = -idx
			side, top = overdue, &maxOverdue
		}
		rung, ok := side[idx]
		if !ok {
			rung = &domain.LadderRung{Index: idx, Overdue: due <= 0}
			side[idx] = rung
		}
		rung.Amount += p.Amount
		rung.Count++
		if idx > *top {
			*top = idx
		}
	}

	var out []domain.LadderRung
	for i := maxOverdue; i >= 0; i-- {
		out = append(out, rungOrEmpty(overdue, i, true))
	}
	for i := 0; i <= maxUpcoming; i++ {
		out = append(out, rungOrEmpty(upcoming, i, false))
	}
	return out
}

func rungOrEmpty(side map[int]*domain.LadderRung, idx int, overdue bool) domain.LadderRung {
	if r, ok := side[idx]; ok {
		return *r
	}
	return domain.LadderRung{Index: idx, Overdue: overdue}
}
