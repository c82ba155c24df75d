package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/nego/internal/domain"
	m "github.com/mouse-blink/nego/internal/model"
)

var runConfigFlag string
var runEnvFileFlag string
var runParallelFlag int
var runTimestampFlag bool
var runStatsFlag bool
var runIncludeFlags []string
var runExcludeFlags []string
var runTimeoutFlag time.Duration

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Run every selected fuzzer against every operation of the target file.

The target file is YAML: a baseUrl, default headers and a list of operations,
each with sample header and field values. ${VAR} placeholders are expanded
from the environment and from a .env file next to the target.

Settings are read from nego.toml when present; flags take precedence.
The command exits non-zero when any test case ends in an error verdict.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <target.yaml>",
		Short: "Run negative tests against an API",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			runArgs := domain.RunArgs{
				Target:   m.Path(args[0]),
				Config:   m.Path(runConfigFlag),
				EnvFile:  m.Path(runEnvFileFlag),
				Reports:  m.Path(reportsOutputDirFlag),
				Parallel: runParallelFlag,
				Include:  runIncludeFlags,
				Exclude:  runExcludeFlags,
				Timeout:  runTimeoutFlag,
			}

			if c.Flags().Changed("timestamp-reports") {
				runArgs.Timestamp = &runTimestampFlag
			}

			if c.Flags().Changed("print-execution-statistics") {
				runArgs.Stats = &runStatsFlag
			}

			return workflow.Run(c.Context(), runArgs)
		},
	}
	cmd.Flags().StringVarP(&runConfigFlag, "config", "c", "", "run configuration file (default nego.toml)")
	cmd.Flags().StringVar(&runEnvFileFlag, "env-file", "", "dotenv file used to expand ${VAR} in the target")
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 0, "number of parallel workers")
	cmd.Flags().BoolVar(&runTimestampFlag, "timestamp-reports", false, "write each run into a timestamped sub folder")
	cmd.Flags().BoolVar(&runStatsFlag, "print-execution-statistics", false, "print response time statistics per endpoint")
	cmd.Flags().StringArrayVarP(&runIncludeFlags, "include", "i", nil, "run only fuzzers whose name contains this text (can be repeated)")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "skip fuzzers whose name contains this text (can be repeated)")
	cmd.Flags().DurationVarP(&runTimeoutFlag, "timeout", "t", 0, "timeout of a single request")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
