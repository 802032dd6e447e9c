package commands

import (
	"github.com/spf13/cobra"

	"pledgeviz/internal/analytics"
	"pledgeviz/internal/render"
)

func newProjectsCommand(flags *GlobalFlags) *cobra.Command {
	var (
		report     reportFlags
		sortColumn string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Show the per-project table at a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(report.format)
			if err != nil {
				return err
			}

			order := analytics.SortState{Descending: descending}
			if sortColumn != "" {
				key, err := analytics.ParseSortKey(sortColumn)
				if err != nil {
					return err
				}
				order = order.Select(key)
			}

			a, err := flags.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			at, err := parseAt(report.at, a.uc.WallClock())
			if err != nil {
				return err
			}

			rows := a.uc.Projects(at, order)
			if format != render.FormatTable {
				return render.Encode(cmd.OutOrStdout(), format, rows)
			}

			f := render.NewFormatter(a.cfg.Display.Currency)
			return render.NewTableRenderer(cmd.OutOrStdout(), f, a.cfg.Display.NoColor).Projects(rows)
		},
	}

	report.register(cmd)
	cmd.Flags().StringVarP(&sortColumn, "sort", "s", "",
		"sort by name, amount, expectedInterest, paidInterest, apr, interestPerDay or pledgeCount")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")

	return cmd
}
