package commands

import (
	"github.com/spf13/cobra"

	"pledgeviz/internal/render"
)

// reportFlags are shared by the summary and projects commands.
type reportFlags struct {
	at     string
	format string
}

func (r *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.at, "at", "", "evaluate at this date, DD/MM/YYYY or YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&r.format, "format", "o", "table", "output format: table, json or yaml")
}

func newSummaryCommand(flags *GlobalFlags) *cobra.Command {
	var report reportFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio figures at a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(report.format)
			if err != nil {
				return err
			}

			a, err := flags.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			at, err := parseAt(report.at, a.uc.WallClock())
			if err != nil {
				return err
			}

			ov := a.uc.Overview(at)
			if format != render.FormatTable {
				return render.Encode(cmd.OutOrStdout(), format, ov)
			}

			f := render.NewFormatter(a.cfg.Display.Currency)
			return render.NewTableRenderer(cmd.OutOrStdout(), f, a.cfg.Display.NoColor).Overview(ov)
		},
	}

	report.register(cmd)

	return cmd
}
