// Package cmd provides the root command and CLI setup for nego.
package cmd

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/nego/internal/adapter"
	"github.com/mouse-blink/nego/internal/controller"
	"github.com/mouse-blink/nego/internal/domain"
	"github.com/mouse-blink/nego/internal/domain/fuzzers"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var configLoader adapter.ConfigLoader
var serviceCaller adapter.ServiceCaller
var journalStore adapter.JournalStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ui = controller.NewUI(rootCmd, controller.ResolveRenderer(os.Stdout, os.Getenv))
	configLoader = adapter.NewLocalConfigLoader()
	serviceCaller = adapter.NewHTTPCaller(&http.Client{})
	journalStore = adapter.NewLocalJournalStore()
	workflow = domain.NewWorkflow(
		configLoader,
		serviceCaller,
		journalStore,
		ui,
		fuzzers.Default(),
		logger,
		domain.DefaultReportStoreFactory,
	)
}

var reportsOutputDirFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nego",
		Short: "Negative testing for REST APIs",
		Long: `Nego sends malformed variants of valid requests to a REST API and checks
that the service rejects or normalizes them the way it should.

Every fuzzer takes a schema-valid sample value of a body field or header,
mixes in whitespace, control characters, emojis or decomposed Unicode, and
compares the response code family with what a well-behaved API returns.

Results are written as an HTML report with one script file per test case.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", "", "report output directory (default "+adapter.DefaultReportDir+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
