package domain

import "time"

// PledgeStatus is the lifecycle state reported by the lending platform.
type PledgeStatus int

const (
	StatusUnknown PledgeStatus = iota
	StatusPending
	StatusLive
	StatusCompleted
)

// Source status labels as they appear in the platform export.
const (
	LabelLive            = "Live"
	LabelPartiallyRepaid = "Partially Repaid"
	LabelNotYetStarted   = "Loan not yet started"
	LabelPaidBack        = "Paid Back"
)

// ParseStatus maps an export label onto a PledgeStatus. Matching is exact;
// any label it does not know becomes StatusUnknown.
func ParseStatus(label string) PledgeStatus {
	switch label {
	case LabelLive, LabelPartiallyRepaid:
		return StatusLive
	case LabelNotYetStarted:
		return StatusPending
	case LabelPaidBack:
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

func (s PledgeStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLive:
		return "live"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// MarshalText lets reports carry the status by name.
func (s PledgeStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pledge is one investment in a funded project. Values are never mutated
// after parsing.
type Pledge struct {
	ProjectName string  `json:"project_name" yaml:"project_name"`
	Amount      float64 `json:"amount" yaml:"amount"`
	// InterestRate is a raw fraction, not a percent.
	InterestRate     float64      `json:"interest_rate" yaml:"interest_rate"`
	ExpectedInterest float64      `json:"expected_interest" yaml:"expected_interest"`
	PaidInterest     float64      `json:"paid_interest" yaml:"paid_interest"`
	RepaidFraction   Metric       `json:"repaid_fraction" yaml:"repaid_fraction"`
	Status           PledgeStatus `json:"status" yaml:"status"`
	StartDate        time.Time    `json:"start_date" yaml:"start_date"`
	EndDate          time.Time    `json:"end_date" yaml:"end_date"`
}

// Portfolio is an immutable snapshot of one loaded export.
type Portfolio struct {
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	Pledges       []Pledge  `json:"pledges"`
	EarliestStart time.Time `json:"earliest_start"`
	LatestStart   time.Time `json:"latest_start"`
}

// NewPortfolio builds a snapshot and records the start-date bounds used by
// playback.
func NewPortfolio(source string, loadedAt time.Time, pledges []Pledge) *Portfolio {
	p := &Portfolio{
		Source:   source,
		LoadedAt: loadedAt,
		Pledges:  pledges,
	}

	for i, pledge := range pledges {
		if i == 0 || pledge.StartDate.Before(p.EarliestStart) {
			p.EarliestStart = pledge.StartDate
		}
		if i == 0 || pledge.StartDate.After(p.LatestStart) {
			p.LatestStart = pledge.StartDate
		}
	}

	return p
}

// Empty reports whether the snapshot holds no pledges.
func (p *Portfolio) Empty() bool {
	return p == nil || len(p.Pledges) == 0
}
