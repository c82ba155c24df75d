package model

import (
	"slices"
	"strconv"
	"strings"
)

// TestCaseSummary is the projection of a TestCase shown in the dashboard index.
type TestCaseSummary struct {
	ID           string  `json:"id"`
	Key          string  `json:"key"`
	Scenario     string  `json:"scenario"`
	Result       Verdict `json:"result"`
	ResultReason string  `json:"resultReason"`
	Fuzzer       string  `json:"fuzzer"`
	Path         string  `json:"path"`
	Method       string  `json:"method"`
}

// SummaryOf projects a test case recorded under key.
func SummaryOf(key string, tc TestCase) TestCaseSummary {
	return TestCaseSummary{
		ID:           tc.ID,
		Key:          key,
		Scenario:     tc.Scenario,
		Result:       tc.Result,
		ResultReason: tc.ResultReason,
		Fuzzer:       tc.Fuzzer,
		Path:         tc.Path,
		Method:       tc.Method,
	}
}

// CompareSummaries orders summaries by path, then method, then id.
// Ids of the form "<prefix> <n>" with the same prefix compare numerically.
func CompareSummaries(a, b TestCaseSummary) int {
	if c := strings.Compare(a.Path, b.Path); c != 0 {
		return c
	}

	if c := strings.Compare(a.Method, b.Method); c != 0 {
		return c
	}

	return compareIDs(a.ID, b.ID)
}

func compareIDs(a, b string) int {
	aPrefix, aNum, aOK := splitID(a)
	bPrefix, bNum, bOK := splitID(b)

	if aOK && bOK && aPrefix == bPrefix {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}

func splitID(id string) (string, int, bool) {
	idx := strings.LastIndexByte(id, ' ')
	if idx < 0 {
		return "", 0, false
	}

	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return "", 0, false
	}

	return id[:idx], n, true
}

// Report is the aggregate written to the summary artifact.
type Report struct {
	SummaryList []TestCaseSummary `json:"summaryList"`
	Success     int               `json:"success"`
	Warnings    int               `json:"warnings"`
	Errors      int               `json:"errors"`
	TotalTests  int               `json:"totalTests"`
	Timestamp   string            `json:"timestamp"`
	RunID       string            `json:"runId"`
}

// NewReport projects every executed case to a summary sorted by path, method and id,
// and wraps them with the caller-supplied totals.
func NewReport(cases []TestCase, totals Totals) Report {
	summaries := make([]TestCaseSummary, 0, len(cases))
	for _, tc := range cases {
		if tc.NotSkipped() {
			summaries = append(summaries, SummaryOf(tc.FileName(), tc))
		}
	}

	slices.SortStableFunc(summaries, CompareSummaries)

	return Report{
		SummaryList: summaries,
		Success:     totals.Success,
		Warnings:    totals.Warnings,
		Errors:      totals.Errors,
		TotalTests:  totals.All,
	}
}

// Totals are the caller-supplied run counters.
type Totals struct {
	All      int `msgpack:"all"`
	Success  int `msgpack:"success"`
	Warnings int `msgpack:"warnings"`
	Errors   int `msgpack:"errors"`
	Skipped  int `msgpack:"skipped"`
}

// Add counts one case by its verdict. Skipped cases are not part of All.
func (t *Totals) Add(tc TestCase) {
	if tc.Skipped {
		t.Skipped++
		return
	}

	t.All++

	switch tc.Result {
	case VerdictSuccess:
		t.Success++
	case VerdictWarning:
		t.Warnings++
	case VerdictError:
		t.Errors++
	}
}

// TimingStats holds response time statistics for one (method, path) endpoint.
type TimingStats struct {
	Endpoint   string
	Average    float64
	Best       TestCase
	Worst      TestCase
	Executions []TestCase
}

// BestCase renders the fastest execution.
func (s TimingStats) BestCase() string {
	return s.Best.ExecutionTime()
}

// WorstCase renders the slowest execution.
func (s TimingStats) WorstCase() string {
	return s.Worst.ExecutionTime()
}

// ExecutionTimes renders every execution, fastest first.
func (s TimingStats) ExecutionTimes() []string {
	out := make([]string, 0, len(s.Executions))
	for _, tc := range s.Executions {
		out = append(out, tc.ExecutionTime())
	}

	return out
}
