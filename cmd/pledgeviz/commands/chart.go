package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pledgeviz/internal/render"
)

const chartDirPerm = 0o750

func newChartCommand(flags *GlobalFlags) *cobra.Command {
	var (
		at     string
		from   string
		output string
		colour string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write HTML charts of the portfolio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if output == "" {
				output = a.cfg.Chart.Output
			}
			if colour == "" {
				colour = a.cfg.Chart.ColourMode
			}

			mode, err := render.ParseColourMode(colour)
			if err != nil {
				return err
			}

			wall := a.uc.WallClock()
			distAt, err := parseAt(at, wall)
			if err != nil {
				return err
			}

			var start time.Time
			if from != "" {
				if start, err = parseAt(from, wall); err != nil {
					return err
				}
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, chartDirPerm); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create chart file: %w", err)
			}
			defer file.Close()

			page := render.NewChartPage(render.NewFormatter(a.cfg.Display.Currency), mode, title)
			if err := page.Render(file, a.uc.Timeline(start, time.Time{}), a.uc.Distributions(distAt), wall); err != nil {
				return err
			}

			a.logger.Info("chart written", slog.String("path", output), slog.String("colour_mode", mode.String()))
			fmt.Fprintln(cmd.OutOrStdout(), output)

			return file.Close()
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "date for the distribution charts (default today)")
	cmd.Flags().StringVar(&from, "from", "", "first date of the timeline (default earliest pledge)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "HTML output path (default chart.output)")
	cmd.Flags().StringVar(&colour, "colour", "", "bubble colour mode: solid, overdue, interest, name, age or repaid")
	cmd.Flags().StringVar(&title, "title", "", "page title")

	return cmd
}
