package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mouse-blink/nego/internal/adapter"
	"github.com/mouse-blink/nego/internal/domain/fuzzers"
	m "github.com/mouse-blink/nego/internal/model"
)

// markerSeed stands in for the generator's sample when building a fuzz marker.
const markerSeed = "nego"

// Job is one fuzzer applied to one item of one operation.
type Job struct {
	Fuzzer    fuzzers.Fuzzer
	Operation m.Operation
	Item      fuzzers.Item
}

// CaseCount is the number of test cases the job will produce.
func (j Job) CaseCount() int {
	if j.Fuzzer.SkipReason(j.Item) != "" || j.Fuzzer.Payloads == nil {
		return 1
	}

	return len(j.Fuzzer.Payloads())
}

// CaseRecorder receives every test case the orchestrator produces.
type CaseRecorder interface {
	RecordCase(tc m.TestCase)
}

// Orchestrator sends the fuzzed requests of a job and judges each response.
type Orchestrator interface {
	Execute(ctx context.Context, job Job) []m.TestCase
}

type orchestrator struct {
	caller   adapter.ServiceCaller
	recorder CaseRecorder
	target   m.Target
	timeout  time.Duration
	logger   *slog.Logger
	counter  atomic.Int64
}

// NewOrchestrator constructs an Orchestrator for one run against target.
func NewOrchestrator(caller adapter.ServiceCaller, recorder CaseRecorder, target m.Target, timeout time.Duration, logger *slog.Logger) Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		caller:   caller,
		recorder: recorder,
		target:   target,
		timeout:  timeout,
		logger:   logger,
	}
}

func (o *orchestrator) Execute(ctx context.Context, job Job) []m.TestCase {
	if reason := job.Fuzzer.SkipReason(job.Item); reason != "" {
		tc := o.newCase(job, fmt.Sprintf("Skip %s [%s]", job.Item.Target(), job.Item.Name))
		tc.Skipped = true
		tc.Result = m.VerdictSkipped
		tc.ResultReason = "Skipped: " + reason
		o.recorder.RecordCase(tc)

		return []m.TestCase{tc}
	}

	var payloads []string
	if job.Fuzzer.Payloads != nil {
		payloads = job.Fuzzer.Payloads()
	}

	cases := make([]m.TestCase, 0, len(payloads))

	for _, payload := range payloads {
		if ctx.Err() != nil {
			break
		}

		tc := o.run(ctx, job, payload)
		o.recorder.RecordCase(tc)
		cases = append(cases, tc)
	}

	return cases
}

func (o *orchestrator) run(ctx context.Context, job Job, payload string) m.TestCase {
	strategy := job.Fuzzer.Strategy(payload)
	fuzzed := FuzzedValue(strategy, job.Item.Value)
	dimension := DimensionFor(job.Item, fuzzed)
	expected := job.Fuzzer.Policy.Expected(dimension)

	tc := o.newCase(job, fmt.Sprintf("Send [%s] in %s [%s]", TruncatedValue(strategy), job.Item.Target(), job.Item.Name))
	tc.Dimension = dimension
	tc.ExpectedResult = fmt.Sprintf("Should return [%s]", expected)
	tc.Request = o.buildRequest(job, fuzzed)

	callCtx := ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := o.caller.Call(callCtx, tc.Request)
	if err != nil {
		o.logger.Warn("request failed", "id", tc.ID, "fuzzer", job.Fuzzer.Name, "error", err)

		tc.Result = m.VerdictError
		tc.ResultReason = "Request failed"
		tc.ResultDetails = err.Error()
		tc.Response = m.Response{Body: err.Error()}
		tc.ExcludeFromStats = true

		return tc
	}

	judgement := Judge(job.Fuzzer.Policy, dimension, resp.Status)
	tc.Response = resp
	tc.Result = judgement.Verdict
	tc.ResultReason = judgement.Reason
	tc.ResultDetails = judgement.Details

	return tc
}

func (o *orchestrator) newCase(job Job, scenario string) m.TestCase {
	return m.TestCase{
		ID:       fmt.Sprintf("Test %d", o.counter.Add(1)),
		Path:     job.Operation.Path,
		Method:   job.Operation.Method,
		Fuzzer:   job.Fuzzer.Name,
		Scenario: scenario,
	}
}

func (o *orchestrator) buildRequest(job Job, fuzzed string) m.Request {
	op := job.Operation

	fieldName, headerName := job.Item.Name, ""
	if job.Item.Header {
		fieldName, headerName = "", job.Item.Name
	}

	req := m.Request{
		URL:     strings.TrimRight(o.target.BaseURL, "/") + op.Path,
		Method:  op.Method,
		Headers: op.HeaderValues(o.target.Headers, headerName, fuzzed),
	}

	body := op.Body(fieldName, fuzzed)
	if len(body) == 0 {
		return req
	}

	if !hasBody(op.Method) {
		query := url.Values{}
		for k, v := range body {
			query.Set(k, v)
		}

		req.URL += "?" + query.Encode()

		return req
	}

	payload, err := json.Marshal(body)
	if err != nil {
		o.logger.Warn("failed to encode payload", "path", op.Path, "error", err)
		return req
	}

	req.Payload = string(payload)

	return req
}

// FuzzedValue builds the marker a generator would produce for s and merges it
// into the supplied sample value.
func FuzzedValue(s m.FuzzStrategy, supplied string) string {
	if !s.Kind().NeedsPayload() {
		return Process(s, supplied)
	}

	return Merge(Process(s, markerSeed), supplied)
}

// DimensionFor picks the dimension a fuzzed item is judged on.
func DimensionFor(item fuzzers.Item, fuzzed string) m.Dimension {
	if item.Header {
		if item.Required {
			return m.DimensionRequiredHeader
		}

		return m.DimensionOptionalHeader
	}

	if item.Pattern != nil && !item.Pattern.MatchString(fuzzed) {
		return m.DimensionPatternMismatch
	}

	if item.Required {
		return m.DimensionRequiredField
	}

	return m.DimensionOptionalField
}

func hasBody(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return false
	default:
		return true
	}
}
