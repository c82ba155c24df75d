package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/nego/internal/domain"
)

// classifyCmd represents the classify command.
var classifyCmd = newClassifyCmd()
var classifyValueFlag string

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Show how fuzz markers are classified and merged",
		Long: `Classify each value into the strategy a fuzzer would apply with it
(REPLACE, PREFIX, TRAIL or INSERT) and show the result of merging it into
the sample given with --value. Special characters are printed escaped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Classify(domain.ClassifyArgs{
				Values:   args,
				Supplied: classifyValueFlag,
			})
		},
	}
	cmd.Flags().StringVar(&classifyValueFlag, "value", "", "schema-valid sample the markers are merged into")

	return cmd
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
