package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pledgeviz/internal/playback"
	"pledgeviz/internal/render"
	"pledgeviz/internal/usecase"
)

// playFlags override the playback section of the config for one run.
type playFlags struct {
	from  string
	speed float64
	loop  bool
	ticks int
}

func newPlayCommand(flags *GlobalFlags) *cobra.Command {
	var pf playFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay the portfolio from its first pledge",
		Long: `Replay the portfolio, printing one status line per tick.

Without --loop playback stops once the simulated date passes today.
Interrupt with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg := playback.Config{
				Interval: a.cfg.Playback.Interval,
				Step:     a.cfg.Playback.Step,
				Speed:    a.cfg.Playback.Speed,
				Loop:     a.cfg.Playback.Loop,
			}
			if cmd.Flags().Changed("speed") {
				cfg.Speed = pf.speed
			}
			if cmd.Flags().Changed("loop") {
				cfg.Loop = pf.loop
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPlay(ctx, a, cfg, pf, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&pf.from, "from", "", "start date (default earliest pledge)")
	cmd.Flags().Float64Var(&pf.speed, "speed", playback.DefaultSpeed, "speed multiplier")
	cmd.Flags().BoolVar(&pf.loop, "loop", false, "wrap to the first pledge after the last one starts")
	cmd.Flags().IntVar(&pf.ticks, "ticks", 0, "stop after this many ticks (0 runs until done)")

	return cmd
}

func runPlay(ctx context.Context, a *app, cfg playback.Config, pf playFlags, out io.Writer) error {
	snap := a.uc.Snapshot()
	if snap.Empty() {
		fmt.Fprintln(out, "no pledges to play")
		return nil
	}

	wall := a.uc.WallClock()
	player := playback.New(cfg, a.logger)
	player.SetBounds(snap.EarliestStart, snap.LatestStart)

	if pf.from == "" {
		player.Reset()
	} else {
		from, err := parseAt(pf.from, wall)
		if err != nil {
			return err
		}
		player.Seek(from)
	}

	status := newStatusLine(out, render.NewFormatter(a.cfg.Display.Currency), a.cfg.Display.NoColor)
	status.print(a.uc, player.Cursor(), wall)

	// ticks and ended are only touched on the playback goroutine.
	finished := make(chan struct{}, 1)
	ticks, ended := 0, false

	player.Play(ctx, func(cursor time.Time) {
		if ended {
			return
		}
		ticks++
		status.print(a.uc, cursor, wall)

		if (pf.ticks > 0 && ticks >= pf.ticks) || (!cfg.Loop && cursor.After(wall)) {
			ended = true
			finished <- struct{}{}
		}
	})

	select {
	case <-ctx.Done():
	case <-finished:
	case <-player.Done():
	}

	if player.Playing() {
		player.Stop()
	}
	a.logger.Debug("playback finished", slog.Int("ticks", ticks), slog.Time("cursor", player.Cursor()))

	return nil
}

// statusLine prints one playback frame per call.
type statusLine struct {
	out     io.Writer
	fmt     render.Formatter
	date    *color.Color
	overdue *color.Color
}

func newStatusLine(out io.Writer, f render.Formatter, noColor bool) *statusLine {
	s := &statusLine{
		out:     out,
		fmt:     f,
		date:    color.New(color.FgCyan),
		overdue: color.New(color.FgRed, color.Bold),
	}
	if noColor {
		s.date.DisableColor()
		s.overdue.DisableColor()
	}
	return s
}

func (s *statusLine) print(uc *usecase.PortfolioUseCase, at, wall time.Time) {
	ov := uc.Overview(at)
	live := findStats(ov.Current, "Live Pledges")
	overdue := findStats(ov.Current, "Overdue Pledges")

	overdueText := s.fmt.Count(overdue.Count) + " overdue"
	if overdue.Count > 0 {
		overdueText = s.overdue.Sprint(overdueText)
	}

	fmt.Fprintf(s.out, "%s (%s)  live %s in %s pledges  paid %s  %s\n",
		s.date.Sprint(s.fmt.Date(at)),
		s.fmt.Relative(at, wall),
		s.fmt.Money(live.Amount),
		s.fmt.Count(live.Count),
		s.fmt.Money(findStats(ov.Current, "Pledges").PaidInterest),
		overdueText,
	)
}
