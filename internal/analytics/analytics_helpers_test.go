package analytics

import (
	"time"

	"pledgeviz/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pledge(project string, amount, rate float64, status domain.PledgeStatus, start, end time.Time) domain.Pledge {
	return domain.Pledge{
		ProjectName:  project,
		Amount:       amount,
		InterestRate: rate,
		Status:       status,
		StartDate:    start,
		EndDate:      end,
	}
}

// pledgeA and pledgeB are the two-record basic-load scenario.
func pledgeA() domain.Pledge {
	p := pledge("Alpha Homes", 1000, 0.08, domain.StatusLive, date(2023, 1, 1), date(2024, 1, 1))
	p.ExpectedInterest = 80
	p.PaidInterest = 40
	p.RepaidFraction = domain.Ratio(40, 80)
	return p
}

func pledgeB() domain.Pledge {
	p := pledge("Beta Solar", 500, 0.10, domain.StatusCompleted, date(2022, 6, 1), date(2023, 6, 1))
	p.ExpectedInterest = 50
	p.PaidInterest = 50
	p.RepaidFraction = domain.Ratio(50, 50)
	return p
}

// mixedPortfolio covers every phase at mixedAt.
func mixedPortfolio() []domain.Pledge {
	return []domain.Pledge{
		pledgeA(),
		pledgeB(),
		pledge("Gamma Farm", 250, 0.09, domain.StatusLive, date(2019, 1, 1), date(2020, 1, 1)),
		pledge("Delta Mill", 300, 0.07, domain.StatusUnknown, date(2021, 1, 1), date(2022, 1, 1)),
		pledge("Epsilon Bar", 400, 0.11, domain.StatusPending, date(2024, 1, 1), date(2025, 1, 1)),
		pledge("Alpha Homes", 200, 0.06, domain.StatusLive, date(2022, 7, 1), date(2023, 7, 1)),
		pledge("Zeta Dock", 150, 0.12, domain.StatusPending, date(2023, 2, 1), date(2023, 5, 1)),
	}
}

var mixedAt = date(2023, 7, 1)

func names(pledges []domain.Pledge) []string {
	out := make([]string, len(pledges))
	for i, p := range pledges {
		out[i] = p.ProjectName
	}
	return out
}
