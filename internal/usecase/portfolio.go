package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"pledgeviz/internal/analytics"
	"pledgeviz/internal/domain"
)

// Options tunes the derived views.
type Options struct {
	SamplePoints    int
	HistogramBucket float64
	HistogramScaled bool
	LadderBucket    time.Duration
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		SamplePoints:    analytics.DefaultSamplePoints,
		HistogramBucket: 100,
		LadderBucket:    analytics.DefaultLadderBucket,
	}
}

// PortfolioUseCase holds the current pledge snapshot and answers questions
// about it at any simulated time.
type PortfolioUseCase struct {
	repo     PledgeRepository
	clock    domain.Clock
	logger   *slog.Logger
	opts     Options
	snapshot atomic.Pointer[domain.Portfolio]
}

// NewPortfolioUseCase creates a new instance of the usecase.
func NewPortfolioUseCase(repo PledgeRepository, clock domain.Clock, logger *slog.Logger, opts Options) *PortfolioUseCase {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	uc := &PortfolioUseCase{repo: repo, clock: clock, logger: logger, opts: opts}
	uc.snapshot.Store(domain.NewPortfolio("", time.Time{}, nil))
	return uc
}

// Load reads a new export and swaps it in. On failure the previous
// snapshot stays in place.
func (uc *PortfolioUseCase) Load(ctx context.Context, path string) error {
	pledges, err := uc.repo.LoadPledges(ctx, path)
	if err != nil {
		uc.logger.Error("load failed, keeping previous pledges", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("could not load pledges: %w", err)
	}

	next := domain.NewPortfolio(path, uc.clock.Now(), pledges)
	uc.snapshot.Store(next)

	uc.logger.Debug("snapshot replaced",
		slog.Int("pledges", len(pledges)),
		slog.Time("earliest_start", next.EarliestStart),
		slog.Time("latest_start", next.LatestStart),
	)
	return nil
}

// Snapshot returns the current immutable portfolio. Never nil.
func (uc *PortfolioUseCase) Snapshot() *domain.Portfolio {
	return uc.snapshot.Load()
}

// WallClock returns the real-world instant used for this evaluation.
func (uc *PortfolioUseCase) WallClock() time.Time {
	return uc.clock.Now()
}

// Overview computes the sidebar figures at simulated time t.
func (uc *PortfolioUseCase) Overview(t time.Time) *domain.Overview {
	pledges := uc.Snapshot().Pledges
	wall := uc.clock.Now()

	started := analytics.Started(pledges, t)
	live := analytics.Live(pledges, t)
	completed := analytics.Completed(pledges, t)
	overdue := analytics.Overdue(pledges, t)
	futureLate := analytics.FutureLate(pledges, t, wall)

	projects := analytics.GroupByProject(pledges)
	overdueProjects := analytics.GroupByProject(overdue)
	overdueNames := make([]string, len(overdueProjects))
	for i, p := range overdueProjects {
		overdueNames[i] = p.Name
	}

	return &domain.Overview{
		At:        t,
		WallClock: wall,
		AllTime: []domain.StatsRow{
			analytics.Stats("Pledges", pledges),
		},
		Current: []domain.StatsRow{
			analytics.Stats("Pledges", started),
			analytics.Stats("Completed Pledges", completed),
			analytics.Stats("Live Pledges", live),
			analytics.Stats("Overdue Pledges", overdue),
			analytics.Stats("Late In Reality", futureLate),
		},
		UniqueProjects:           len(projects),
		LiveProjects:             len(analytics.GroupByProject(live)),
		ReceivedInterest:         analytics.TotalExpectedInterest(completed),
		PendingAmount:            analytics.TotalAmount(analytics.Pending(pledges, t)),
		AmountUnrepaid:           analytics.AmountUnrepaid(started),
		InterestPerDay:           analytics.InterestPerDay(started, wall),
		InterestPerDayContracted: analytics.InterestPerDayContracted(analytics.FilterLive(started, t), t),
		ProjectsOverdue:          domain.Ratio(float64(len(overdueProjects)), float64(len(projects))),
		OverdueProjects:          overdueNames,
	}
}

// Projects returns the project table at t in the requested order.
func (uc *PortfolioUseCase) Projects(t time.Time, sort analytics.SortState) []domain.ProjectRow {
	rows := analytics.ProjectRows(uc.Snapshot().Pledges, t, uc.clock.Now())
	analytics.SortRows(rows, sort)
	return rows
}

// Timeline samples the headline metrics across [from, to]. Zero bounds
// default to the earliest start and the wall clock.
func (uc *PortfolioUseCase) Timeline(from, to time.Time) *domain.Timeline {
	snap := uc.Snapshot()
	pledges := snap.Pledges
	wall := uc.clock.Now()

	if from.IsZero() {
		from = snap.EarliestStart
	}
	if to.IsZero() {
		to = wall
	}

	points := uc.opts.SamplePoints
	series := func(name string, kind domain.Axis, fn analytics.SeriesFunc) domain.Series {
		return domain.Series{Name: name, Kind: kind, Points: analytics.Sample(from, to, points, fn)}
	}

	return &domain.Timeline{
		From: from,
		To:   to,
		Series: []domain.Series{
			series("Invested", domain.AxisCurrency, analytics.Always(func(t time.Time) float64 {
				return analytics.TotalAmount(analytics.Started(pledges, t))
			})),
			series("Live", domain.AxisCurrency, analytics.Always(func(t time.Time) float64 {
				return analytics.TotalAmount(analytics.Live(pledges, t))
			})),
			series("Overdue", domain.AxisCurrency, analytics.Always(func(t time.Time) float64 {
				return analytics.TotalAmount(analytics.Overdue(pledges, t))
			})),
			series("Interest Paid", domain.AxisCurrency, analytics.Always(func(t time.Time) float64 {
				return analytics.InterestPaid(analytics.Started(pledges, t), t, wall)
			})),
			series("Live APR", domain.AxisPercent, func(t time.Time) domain.Metric {
				return analytics.WeightedInterestRate(analytics.Live(pledges, t))
			}),
			series("Interest per Day (Contracted)", domain.AxisCurrency, analytics.Always(func(t time.Time) float64 {
				return analytics.InterestPerDayContracted(analytics.FilterLive(pledges, t), t)
			})),
		},
	}
}

// Distributions computes the histogram, maturity ladder and bubble layout at t.
func (uc *PortfolioUseCase) Distributions(t time.Time) *domain.Distributions {
	pledges := uc.Snapshot().Pledges
	wall := uc.clock.Now()

	return &domain.Distributions{
		At:             t,
		AmountBuckets:  analytics.Histogram(analytics.Amounts(analytics.Live(pledges, t)), uc.opts.HistogramBucket, uc.opts.HistogramScaled),
		MaturityLadder: analytics.MaturityLadder(pledges, t, uc.opts.LadderBucket),
		Bubbles:        analytics.BubbleLayout(pledges, t, wall),
	}
}
