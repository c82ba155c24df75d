package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/nego/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listIncludeFlags []string
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available fuzzers",
		Long:  "List the registered fuzzers with their strategy, payload count and expected response code families.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ListFuzzers(domain.ListArgs{
				Include: listIncludeFlags,
				Exclude: listExcludeFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listIncludeFlags, "include", "i", nil, "list only fuzzers whose name contains this text (can be repeated)")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "hide fuzzers whose name contains this text (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
