package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/nego/internal/domain"
	m "github.com/mouse-blink/nego/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()
var viewStatsFlag bool

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously generated report",
		Long:  "View the summary of a previous run from its report directory without calling the API again.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{
				Reports: m.Path(reportsOutputDirFlag),
				Stats:   viewStatsFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&viewStatsFlag, "print-execution-statistics", false, "print response time statistics per endpoint")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
