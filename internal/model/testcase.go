package model

import (
	"fmt"
	"strings"
)

// Verdict is the judged outcome of a single test case.
type Verdict string

const (
	// VerdictSuccess means the response matched the expectation.
	VerdictSuccess Verdict = "success"
	// VerdictWarning means the response was unexpected but not clearly wrong.
	VerdictWarning Verdict = "warn"
	// VerdictError means the service mishandled the fuzzed input.
	VerdictError Verdict = "error"
	// VerdictSkipped means the case was not executed.
	VerdictSkipped Verdict = "skipped"
)

// Request is the payload sent for a test case.
type Request struct {
	URL     string            `json:"url" msgpack:"url"`
	Method  string            `json:"httpMethod" msgpack:"method"`
	Headers map[string]string `json:"headers" msgpack:"headers"`
	Payload string            `json:"payload" msgpack:"payload"`
}

// Response is what the service returned for a test case.
type Response struct {
	Status         int               `json:"responseCode" msgpack:"status"`
	Headers        map[string]string `json:"headers" msgpack:"headers"`
	Body           string            `json:"body" msgpack:"body"`
	ResponseTimeMs int64             `json:"responseTimeInMs" msgpack:"response_time_ms"`
	ContentLength  int64             `json:"contentLengthInBytes" msgpack:"content_length"`
}

// TestCase is the full record of one executed fuzz attempt.
// Fields tagged json:"-" are internal and never appear in exported reports.
type TestCase struct {
	ID               string    `json:"testId" msgpack:"id"`
	Path             string    `json:"path" msgpack:"path"`
	Method           string    `json:"method" msgpack:"method"`
	Fuzzer           string    `json:"fuzzer" msgpack:"fuzzer"`
	Scenario         string    `json:"scenario" msgpack:"scenario"`
	ExpectedResult   string    `json:"expectedResult" msgpack:"expected_result"`
	Result           Verdict   `json:"result" msgpack:"result"`
	ResultReason     string    `json:"resultReason" msgpack:"result_reason"`
	ResultDetails    string    `json:"resultDetails" msgpack:"result_details"`
	Request          Request   `json:"request" msgpack:"request"`
	Response         Response  `json:"response" msgpack:"response"`
	Skipped          bool      `json:"-" msgpack:"skipped"`
	ExcludeFromStats bool      `json:"-" msgpack:"exclude_from_stats"`
	Dimension        Dimension `json:"-" msgpack:"dimension"`
}

// NotSkipped reports whether the case was executed.
func (tc TestCase) NotSkipped() bool {
	return !tc.Skipped
}

// CountsForStats reports whether the case participates in timing statistics.
func (tc TestCase) CountsForStats() bool {
	return !tc.Skipped && !tc.ExcludeFromStats
}

// FileName returns the identifier used for the per-case report file.
func (tc TestCase) FileName() string {
	return strings.ReplaceAll(tc.ID, " ", "")
}

// ExecutionTime renders the case id with its response time, e.g. "Test 3 - 12ms".
func (tc TestCase) ExecutionTime() string {
	return fmt.Sprintf("%s - %dms", tc.ID, tc.Response.ResponseTimeMs)
}

// EndpointKey identifies the (method, path) statistics bucket.
func (tc TestCase) EndpointKey() string {
	return tc.Method + " " + tc.Path
}
