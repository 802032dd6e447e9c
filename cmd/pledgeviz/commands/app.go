package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"pledgeviz/internal/config"
	"pledgeviz/internal/domain"
	"pledgeviz/internal/gateway"
	"pledgeviz/internal/observability"
	"pledgeviz/internal/usecase"
)

// ErrNoFile is returned when the --file flag is not set.
var ErrNoFile = errors.New("pledge file is required (use --file)")

// ErrBadDate is returned for a date flag that is neither DD/MM/YYYY nor YYYY-MM-DD.
var ErrBadDate = errors.New("date must be DD/MM/YYYY or YYYY-MM-DD")

const isoDate = "2006-01-02"

// app is the wired application for one command invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     *usecase.PortfolioUseCase
}

// open loads config, builds the logger and loads the pledge file.
func (f *GlobalFlags) open(ctx context.Context, logOut io.Writer) (*app, error) {
	if f.File == "" {
		return nil, ErrNoFile
	}

	cfg, err := config.LoadConfig(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if f.Verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := observability.NewLogger(logOut, cfg.Logging)
	if err != nil {
		return nil, err
	}

	repo := gateway.NewCSVPledgeRepository(cfg.CSV.Comma(), logger)
	uc := usecase.NewPortfolioUseCase(repo, f.clock, logger, usecase.Options{
		SamplePoints:    cfg.Chart.Points,
		HistogramBucket: cfg.Chart.BucketSize,
		HistogramScaled: cfg.Chart.Proportional,
		LadderBucket:    cfg.Chart.LadderBucket,
	})

	if err := uc.Load(ctx, f.File); err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, uc: uc}, nil
}

// parseAt reads a --at style flag. Empty means the wall clock.
func parseAt(s string, wall time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return wall, nil
	}

	if t, err := time.ParseInLocation(isoDate, s, time.UTC); err == nil {
		return t, nil
	}

	t, err := gateway.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}

func findStats(rows []domain.StatsRow, label string) domain.StatsRow {
	for _, row := range rows {
		if row.Label == label {
			return row
		}
	}
	return domain.StatsRow{Label: label}
}
