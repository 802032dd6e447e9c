// Package commands implements the pledgeviz subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pledgeviz/internal/domain"
)

// GlobalFlags are the persistent flags shared by every subcommand.
type GlobalFlags struct {
	ConfigPath string
	File       string
	Verbose    bool

	clock domain.Clock
}

// NewRootCommand builds the pledgeviz command tree.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, domain.SystemClock{})
}

func newRootCommand(version string, clock domain.Clock) *cobra.Command {
	flags := &GlobalFlags{clock: clock}

	rootCmd := &cobra.Command{
		Use:   "pledgeviz",
		Short: "Pledgeviz - P2P loan pledge analytics",
		Long: `Pledgeviz reads a loan pledge export and reports on it at any point in time.

Commands:
  summary   Portfolio figures at a date
  projects  Per-project table
  chart     HTML charts of the portfolio over time
  play      Replay the portfolio day by day`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.File, "file", "f", "", "pledge export CSV file")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "config file (default .pledgeviz.yaml in . or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSummaryCommand(flags))
	rootCmd.AddCommand(newProjectsCommand(flags))
	rootCmd.AddCommand(newChartCommand(flags))
	rootCmd.AddCommand(newPlayCommand(flags))
	rootCmd.AddCommand(versionCmd(version))

	return rootCmd
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pledgeviz %s\n", version)
		},
	}
}
