package controller

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/nego/internal/model"
)

// SimpleUI implements UI using plain text on the cobra command's output.
// Writes are serialized so workers may report cases concurrently.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayFuzzers prints the registered fuzzers with their expectation policies.
func (s *SimpleUI) DisplayFuzzers(fuzzers []m.FuzzerInfo) error {
	if len(fuzzers) == 0 {
		s.printf("No fuzzers selected\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Fuzzer", "Target", "Strategy", "Payloads",
		"Req. field", "Opt. field", "Pattern", "Req. header", "Opt. header"})

	for _, f := range fuzzers {
		table.Append([]string{
			f.Name,
			string(f.Target),
			string(f.Kind),
			strconv.Itoa(f.Payloads),
			f.Policy.RequiredField().String(),
			f.Policy.OptionalField().String(),
			f.Policy.PatternMismatchField().String(),
			f.Policy.RequiredHeader().String(),
			f.Policy.OptionalHeader().String(),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(fuzzers)), "", "", "", "", "", "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayClassifications prints how each marker value resolves and merges.
func (s *SimpleUI) DisplayClassifications(items []Classification) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Input", "Strategy", "Payload", "Supplied", "Merged"})
	for _, item := range items {
		table.Append([]string{item.Input, string(item.Kind), item.Payload, item.Supplied, item.Merged})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRunInfo prints what is about to run.
func (s *SimpleUI) DisplayRunInfo(info RunInfo) {
	s.printf("Running %d test cases from %d jobs with %d worker(s)\n", info.Cases, info.Jobs, info.Parallel)
	s.printf("Writing report to %s\n", info.Dir)
}

// DisplayCompletedCase prints one line per finished case.
func (s *SimpleUI) DisplayCompletedCase(tc m.TestCase) {
	s.printf("%-10s %-7s %-30s %-55s %s\n", tc.ID, tc.Method, tc.Path, tc.Fuzzer, verdictColor(tc.Result))
}

// DisplayTimingStats prints per-endpoint response time statistics.
func (s *SimpleUI) DisplayTimingStats(stats []m.TimingStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeTimingStats(s.cmd.OutOrStdout(), stats)
}

// DisplayStatsDisabled tells the user how to enable timing statistics.
func (s *SimpleUI) DisplayStatsDisabled() {
	s.printf("Skip printing time execution statistics. You can use --print-execution-statistics to enable this feature!\n")
}

// DisplaySummary prints the totals of a run.
func (s *SimpleUI) DisplaySummary(report m.Report, dir m.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeSummary(s.cmd.OutOrStdout(), report, dir)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func writeSummary(w io.Writer, report m.Report, dir m.Path) {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Total", "Success", "Warnings", "Errors"})
	table.Append([]string{
		strconv.Itoa(report.TotalTests),
		strconv.Itoa(report.Success),
		strconv.Itoa(report.Warnings),
		strconv.Itoa(report.Errors),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "\n%s", tableBuffer.String())
	if dir != "" {
		_, _ = fmt.Fprintf(w, "Report written to %s\n", dir)
	}
}
