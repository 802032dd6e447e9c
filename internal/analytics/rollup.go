package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"pledgeviz/internal/domain"
)

// Project is every pledge sharing one project name.
type Project struct {
	Name    string
	Pledges []domain.Pledge
}

// GroupByProject groups pledges by name in order of first appearance.
func GroupByProject(pledges []domain.Pledge) []Project {
	index := make(map[string]int)
	var projects []Project
	for _, p := range pledges {
		i, ok := index[p.ProjectName]
		if !ok {
			i = len(projects)
			index[p.ProjectName] = i
			projects = append(projects, Project{Name: p.ProjectName})
		}
		projects[i].Pledges = append(projects[i].Pledges, p)
	}
	return projects
}

// ProjectRows aggregates each project's started pledges at t. Projects
// with nothing started are left out.
func ProjectRows(pledges []domain.Pledge, t, wall time.Time) []domain.ProjectRow {
	groups := GroupByProject(pledges)
	rows := make([]domain.ProjectRow, 0, len(groups))
	for _, g := range groups {
		started := Started(g.Pledges, t)
		if len(started) == 0 {
			continue
		}
		rows = append(rows, projectRow(g.Name, started, t, wall))
	}
	return rows
}

func projectRow(name string, started []domain.Pledge, t, wall time.Time) domain.ProjectRow {
	row := domain.ProjectRow{
		Name:             name,
		PledgeCount:      len(started),
		TotalAmount:      TotalAmount(started),
		ExpectedInterest: TotalExpectedInterest(started),
		PaidInterest:     InterestPaid(started, t, wall),
		APR:              WeightedInterestRate(started),
		InterestPerDay:   InterestPerDayContracted(FilterLive(started, t), t),
		Pledges:          make([]domain.PledgeCell, len(started)),
	}
	row.RepaidPercent = RepaidPercent(row.PaidInterest, row.ExpectedInterest)

	for i, p := range started {
		overdue := IsOverdue(p, t)
		row.Overdue = row.Overdue || overdue
		row.Pledges[i] = domain.PledgeCell{
			Amount:       p.Amount,
			InterestRate: p.InterestRate,
			Overdue:      overdue,
		}
	}
	if row.Overdue {
		row.PenaltyAPR = row.APR.Add(PenaltyRate)
	}
	return row
}

// SortKey selects the project table column to order by.
type SortKey int

const (
	SortNone SortKey = iota
	SortName
	SortAmount
	SortExpectedInterest
	SortPaidInterest
	SortAPR
	SortInterestPerDay
	SortPledgeCount
)

var sortKeyNames = map[SortKey]string{
	SortNone:             "",
	SortName:             "name",
	SortAmount:           "amount",
	SortExpectedInterest: "expectedInterest",
	SortPaidInterest:     "paidInterest",
	SortAPR:              "apr",
	SortInterestPerDay:   "interestPerDay",
	SortPledgeCount:      "pledgeCount",
}

func (k SortKey) String() string {
	return sortKeyNames[k]
}

// ParseSortKey accepts the column names used by the CLI. Matching ignores
// case, hyphens and underscores.
func ParseSortKey(s string) (SortKey, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
	for k, name := range sortKeyNames {
		if strings.ToLower(name) == norm {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort column %q", s)
}

// SortState is the active column and direction.
type SortState struct {
	Key        SortKey
	Descending bool
}

// Select applies a header click: the same column flips direction, a new
// column keeps the current direction.
func (s SortState) Select(key SortKey) SortState {
	if s.Key == key {
		s.Descending = !s.Descending
		return s
	}
	s.Key = key
	return s
}

// compareMetric orders undefined before any defined value.
func compareMetric(a, b domain.Metric) int {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return cmp.Compare(av, bv)
	}
}

func compareRows(key SortKey, a, b domain.ProjectRow) int {
	switch key {
	case SortName:
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	case SortAmount:
		return cmp.Compare(a.TotalAmount, b.TotalAmount)
	case SortExpectedInterest:
		return cmp.Compare(a.ExpectedInterest, b.ExpectedInterest)
	case SortPaidInterest:
		return cmp.Compare(a.PaidInterest, b.PaidInterest)
	case SortAPR:
		return compareMetric(a.APR, b.APR)
	case SortInterestPerDay:
		return cmp.Compare(a.InterestPerDay, b.InterestPerDay)
	case SortPledgeCount:
		return cmp.Compare(a.PledgeCount, b.PledgeCount)
	default:
		return 0
	}
}

// SortRows orders rows in place. Rows already carry their aggregates, so
// nothing is recomputed per comparison. The sort is stable; SortNone keeps
// first-appearance order.
func SortRows(rows []domain.ProjectRow, state SortState) {
	if state.Key == SortNone {
		return
	}
	slices.SortStableFunc(rows, func(a, b domain.ProjectRow) int {
		c := compareRows(state.Key, a, b)
		if state.Descending {
			return -c
		}
		return c
	})
}
