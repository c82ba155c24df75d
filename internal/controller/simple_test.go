package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/nego/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayFuzzers_PrintsTable(t *testing.T) {
	ui, buf := newBufferedUI()

	fuzzers := []m.FuzzerInfo{
		{
			Name:     "LeadingWhitespacesInFields",
			Target:   m.TargetField,
			Kind:     m.StrategyPrefix,
			Policy:   m.NewPolicy(m.Family4XX, m.Family2XX, m.Family4XX, m.Family4XX, m.Family2XX),
			Payloads: 19,
		},
		{
			Name:     "OnlyWhitespacesInHeaders",
			Target:   m.TargetHeader,
			Kind:     m.StrategyReplace,
			Policy:   m.NewPolicy(m.Family4XX, m.Family2XX, m.Family4XX, m.Family4XX, m.Family2XX),
			Payloads: 4,
		},
	}

	if err := ui.DisplayFuzzers(fuzzers); err != nil {
		t.Fatalf("DisplayFuzzers() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"LeadingWhitespacesInFields",
		"OnlyWhitespacesInHeaders",
		"PREFIX",
		"REPLACE",
		"19",
		"4XX",
		"2XX",
		"TOTAL 2",
	)
}

func TestSimpleUI_DisplayFuzzers_Empty(t *testing.T) {
	ui, buf := newBufferedUI()

	if err := ui.DisplayFuzzers(nil); err != nil {
		t.Fatalf("DisplayFuzzers() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "No fuzzers selected")
}

func TestSimpleUI_DisplayClassifications(t *testing.T) {
	ui, buf := newBufferedUI()

	items := []Classification{
		{Input: ` abc`, Kind: m.StrategyPrefix, Payload: ` `, Supplied: "john", Merged: ` john`},
	}

	if err := ui.DisplayClassifications(items); err != nil {
		t.Fatalf("DisplayClassifications() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "PREFIX", ` abc`, ` john`)
}

func TestSimpleUI_DisplayCompletedCase(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayCompletedCase(m.TestCase{ID: "Test 7", Method: "POST", Path: "/users", Fuzzer: "OnlyControlCharsInFields", Result: m.VerdictWarning})

	assertContainsAll(t, buf.String(), "Test 7", "POST", "/users", "OnlyControlCharsInFields", "warn")
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayRunInfo(RunInfo{Jobs: 3, Cases: 42, Parallel: 2, Dir: "nego-report"})

	assertContainsAll(t, buf.String(), "42 test cases", "3 jobs", "2 worker(s)", "nego-report")
}

func TestSimpleUI_DisplayTimingStats(t *testing.T) {
	ui, buf := newBufferedUI()

	fast := m.TestCase{ID: "Test 1", Response: m.Response{ResponseTimeMs: 1200}}
	slow := m.TestCase{ID: "Test 2", Response: m.Response{ResponseTimeMs: 3400}}

	ui.DisplayTimingStats([]m.TimingStats{{
		Endpoint:   "POST /users",
		Average:    2300,
		Best:       fast,
		Worst:      slow,
		Executions: []m.TestCase{fast, slow},
	}})

	assertContainsAll(t, buf.String(),
		"Execution time details",
		"POST /users",
		"2,300.00ms",
		"Test 2 - 3400ms",
		"Test 1 - 1200ms",
		"2 executed tests",
	)
}

func TestSimpleUI_DisplayTimingStats_Empty(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayTimingStats(nil)

	assertContainsAll(t, buf.String(), "No endpoint was exercised by more than one test case")
}

func TestSimpleUI_DisplayStatsDisabled(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayStatsDisabled()

	assertContainsAll(t, buf.String(), "--print-execution-statistics")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newBufferedUI()

	report := m.Report{Success: 5, Warnings: 2, Errors: 1, TotalTests: 8}

	if err := ui.DisplaySummary(report, "nego-report/1700000000000"); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "TOTAL", "SUCCESS", "WARNINGS", "ERRORS", "8", "5", "2", "1",
		"Report written to nego-report/1700000000000")
}

func TestSimpleUI_StartAndClose(t *testing.T) {
	ui, buf := newBufferedUI()

	if err := ui.Start(WithRunMode(10)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("Start/Close should not print, got %q", buf.String())
	}
}
