// Package analytics classifies pledges against a reference time and derives
// portfolio metrics from them. Every function is pure: the simulated cursor
// and, where needed, the wall-clock instant are explicit arguments.
package analytics

import (
	"time"

	"pledgeviz/internal/domain"
)

// Phase is where a pledge sits in its lifecycle at a reference time.
type Phase int

const (
	// PhasePending: not yet started at t.
	PhasePending Phase = iota
	// PhaseLive: started and contractual end still ahead.
	PhaseLive
	// PhaseCompleted: ended and reported paid back.
	PhaseCompleted
	// PhaseOverdue: ended but still reported live.
	PhaseOverdue
	// PhaseUnresolved: started but none of the above, e.g. ended with an
	// unknown status, or ending exactly at t.
	PhaseUnresolved
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseLive:
		return "live"
	case PhaseCompleted:
		return "completed"
	case PhaseOverdue:
		return "overdue"
	default:
		return "unresolved"
	}
}

// IsStarted reports whether the pledge started strictly before t.
func IsStarted(p domain.Pledge, t time.Time) bool {
	return p.StartDate.Before(t)
}

// IsOverdue is the conjunction of a live status and a passed end date.
func IsOverdue(p domain.Pledge, t time.Time) bool {
	return p.Status == domain.StatusLive && p.EndDate.Before(t)
}

// Classify places one pledge into exactly one Phase. Status and dates are
// independent: a live status says nothing about the end date.
func Classify(p domain.Pledge, t time.Time) Phase {
	if !IsStarted(p, t) {
		return PhasePending
	}
	if p.EndDate.After(t) {
		return PhaseLive
	}
	if p.EndDate.Before(t) {
		switch p.Status {
		case domain.StatusCompleted:
			return PhaseCompleted
		case domain.StatusLive:
			return PhaseOverdue
		}
	}
	return PhaseUnresolved
}

func filter(pledges []domain.Pledge, keep func(domain.Pledge) bool) []domain.Pledge {
	out := make([]domain.Pledge, 0, len(pledges))
	for _, p := range pledges {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func inPhase(pledges []domain.Pledge, t time.Time, phase Phase) []domain.Pledge {
	return filter(pledges, func(p domain.Pledge) bool { return Classify(p, t) == phase })
}

// Started returns pledges with StartDate < t.
func Started(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return filter(pledges, func(p domain.Pledge) bool { return IsStarted(p, t) })
}

// Pending returns pledges that have not started by t.
func Pending(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return inPhase(pledges, t, PhasePending)
}

// Live returns started pledges whose EndDate is after t.
func Live(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return inPhase(pledges, t, PhaseLive)
}

// Completed returns started pledges that ended before t and were paid back.
func Completed(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return inPhase(pledges, t, PhaseCompleted)
}

// Overdue returns started pledges that ended before t but are still live.
func Overdue(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return inPhase(pledges, t, PhaseOverdue)
}

// Unresolved returns started pledges that are neither live, completed nor
// overdue at t.
func Unresolved(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return inPhase(pledges, t, PhaseUnresolved)
}

// FutureLate returns pledges started at the simulated time t that are
// already overdue in real time. While scrubbing the past this previews
// the problems still to come.
func FutureLate(pledges []domain.Pledge, t, wall time.Time) []domain.Pledge {
	return filter(pledges, func(p domain.Pledge) bool {
		return IsStarted(p, t) && IsOverdue(p, wall)
	})
}

// FilterLive is the looser "active at t" test: started on or before t and
// either not yet ended or still reported live, whatever the dates say.
func FilterLive(pledges []domain.Pledge, t time.Time) []domain.Pledge {
	return filter(pledges, func(p domain.Pledge) bool {
		return !p.StartDate.After(t) && (t.Before(p.EndDate) || p.Status == domain.StatusLive)
	})
}
