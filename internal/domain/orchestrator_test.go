package domain_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/nego/internal/adapter/mocks"
	"github.com/mouse-blink/nego/internal/domain"
	"github.com/mouse-blink/nego/internal/domain/fuzzers"
	domainmocks "github.com/mouse-blink/nego/internal/domain/mocks"
	m "github.com/mouse-blink/nego/internal/model"
)

var testTarget = m.Target{
	BaseURL: "http://api.test/",
	Headers: map[string]string{"Accept": "application/json"},
}

var usersOperation = m.Operation{
	Path:   "/users",
	Method: "POST",
	Fields: []m.FieldSpec{
		{Name: "name", Value: "john", Required: true},
		{Name: "city", Value: "Paris"},
	},
	Headers: []m.HeaderSpec{{Name: "X-Tenant", Value: "acme", Required: true}},
}

func leadingSpaces() fuzzers.Fuzzer {
	return fuzzers.Fuzzer{
		Name:     "LeadingSpacesInFields",
		Target:   m.TargetField,
		Kind:     m.StrategyPrefix,
		Policy:   fuzzers.Expect4XXOnRequired,
		Payloads: func() []string { return []string{" ", "\t"} },
	}
}

func TestOrchestrator_Execute(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	var requests []m.Request

	caller.EXPECT().Call(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req m.Request) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			requests = append(requests, req)
		}).
		Return(m.Response{Status: 400, ResponseTimeMs: 7}, nil).Times(2)
	recorder.EXPECT().RecordCase(mock.Anything).Return().Times(2)

	orch := domain.NewOrchestrator(caller, recorder, testTarget, time.Second, nil)
	job := domain.Job{
		Fuzzer:    leadingSpaces(),
		Operation: usersOperation,
		Item:      fuzzers.Item{Name: "name", Value: "john", Required: true},
	}

	cases := orch.Execute(context.Background(), job)

	require.Len(t, cases, 2)
	assert.Equal(t, 2, job.CaseCount())

	assert.Equal(t, "Test 1", cases[0].ID)
	assert.Equal(t, "Test 2", cases[1].ID)
	assert.Equal(t, `Send [PREFIX with \u0020] in field [name]`, cases[0].Scenario)
	assert.Equal(t, "Should return [4XX]", cases[0].ExpectedResult)
	assert.Equal(t, m.VerdictSuccess, cases[0].Result)
	assert.Equal(t, m.DimensionRequiredField, cases[0].Dimension)
	assert.Equal(t, "LeadingSpacesInFields", cases[0].Fuzzer)
	assert.Equal(t, int64(7), cases[0].Response.ResponseTimeMs)

	require.Len(t, requests, 2)
	assert.Equal(t, "http://api.test/users", requests[0].URL)
	assert.Equal(t, "POST", requests[0].Method)
	assert.JSONEq(t, `{"name":" john","city":"Paris"}`, requests[0].Payload)
	assert.JSONEq(t, `{"name":"\tjohn","city":"Paris"}`, requests[1].Payload)
	assert.Equal(t, "acme", requests[0].Headers["X-Tenant"])
	assert.Equal(t, "application/json", requests[0].Headers["Accept"])
}

func TestOrchestrator_Execute_QueryForBodylessMethods(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	caller.EXPECT().Call(mock.Anything, mock.MatchedBy(func(req m.Request) bool {
		return req.Payload == "" && req.URL == "http://api.test/users?q=+john"
	})).Return(m.Response{Status: 200}, nil).Once()
	recorder.EXPECT().RecordCase(mock.Anything).Return().Once()

	f := leadingSpaces()
	f.Payloads = func() []string { return []string{" "} }

	op := m.Operation{Path: "/users", Method: "GET", Fields: []m.FieldSpec{{Name: "q", Value: "john"}}}

	cases := domain.NewOrchestrator(caller, recorder, testTarget, 0, nil).
		Execute(context.Background(), domain.Job{Fuzzer: f, Operation: op, Item: fuzzers.Item{Name: "q", Value: "john"}})

	require.Len(t, cases, 1)
	assert.Equal(t, m.DimensionOptionalField, cases[0].Dimension)
	assert.Equal(t, m.VerdictSuccess, cases[0].Result)
}

func TestOrchestrator_Execute_Header(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	caller.EXPECT().Call(mock.Anything, mock.MatchedBy(func(req m.Request) bool {
		return req.Headers["X-Tenant"] == "acme\u200b"
	})).Return(m.Response{Status: 200}, nil).Once()
	recorder.EXPECT().RecordCase(mock.Anything).Return().Once()

	f := fuzzers.Fuzzer{
		Name:     "TrailingZeroWidthInHeaders",
		Target:   m.TargetHeader,
		Kind:     m.StrategyTrail,
		Policy:   fuzzers.ExpectOnly4XXHeaders,
		Payloads: func() []string { return []string{"\u200b"} },
	}

	cases := domain.NewOrchestrator(caller, recorder, testTarget, 0, nil).Execute(context.Background(), domain.Job{
		Fuzzer:    f,
		Operation: usersOperation,
		Item:      fuzzers.Item{Name: "X-Tenant", Value: "acme", Required: true, Header: true},
	})

	require.Len(t, cases, 1)
	assert.Equal(t, m.DimensionRequiredHeader, cases[0].Dimension)
	assert.Equal(t, m.VerdictError, cases[0].Result)
	assert.Contains(t, cases[0].Scenario, "in header [X-Tenant]")
}

func TestOrchestrator_Execute_Skipped(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	recorder.EXPECT().RecordCase(mock.MatchedBy(func(tc m.TestCase) bool {
		return tc.Skipped && tc.Result == m.VerdictSkipped
	})).Return().Once()

	f := leadingSpaces()
	f.Applies = func(item fuzzers.Item) string {
		if item.Value == "" {
			return "no sample value"
		}

		return ""
	}

	job := domain.Job{Fuzzer: f, Operation: usersOperation, Item: fuzzers.Item{Name: "nick"}}
	cases := domain.NewOrchestrator(caller, recorder, testTarget, 0, nil).Execute(context.Background(), job)

	require.Len(t, cases, 1)
	assert.Equal(t, 1, job.CaseCount())
	assert.Equal(t, "Skipped: no sample value", cases[0].ResultReason)
	caller.AssertNotCalled(t, "Call", mock.Anything, mock.Anything)
}

func TestOrchestrator_Execute_TransportError(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	caller.EXPECT().Call(mock.Anything, mock.Anything).Return(m.Response{}, errors.New("connection refused")).Times(2)
	recorder.EXPECT().RecordCase(mock.Anything).Return().Times(2)

	cases := domain.NewOrchestrator(caller, recorder, testTarget, 0, nil).Execute(context.Background(), domain.Job{
		Fuzzer:    leadingSpaces(),
		Operation: usersOperation,
		Item:      fuzzers.Item{Name: "name", Value: "john", Required: true},
	})

	require.Len(t, cases, 2)
	for _, tc := range cases {
		assert.Equal(t, m.VerdictError, tc.Result)
		assert.Equal(t, 0, tc.Response.Status)
		assert.Equal(t, "connection refused", tc.Response.Body)
		assert.False(t, tc.CountsForStats())
	}
}

func TestOrchestrator_Execute_StopsWhenCancelled(t *testing.T) {
	caller := adaptermocks.NewMockServiceCaller(t)
	recorder := domainmocks.NewMockCaseRecorder(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := domain.NewOrchestrator(caller, recorder, testTarget, 0, nil).Execute(ctx, domain.Job{
		Fuzzer:    leadingSpaces(),
		Operation: usersOperation,
		Item:      fuzzers.Item{Name: "name", Value: "john", Required: true},
	})

	assert.Empty(t, cases)
}

func TestDimensionFor(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+$`)

	assert.Equal(t, m.DimensionPatternMismatch,
		domain.DimensionFor(fuzzers.Item{Name: "n", Required: true, Pattern: pattern}, " john"))
	assert.Equal(t, m.DimensionRequiredField,
		domain.DimensionFor(fuzzers.Item{Name: "n", Required: true, Pattern: pattern}, "john"))
	assert.Equal(t, m.DimensionOptionalField, domain.DimensionFor(fuzzers.Item{Name: "n"}, " john"))
	assert.Equal(t, m.DimensionOptionalHeader, domain.DimensionFor(fuzzers.Item{Name: "h", Header: true}, " v"))
}

func TestFuzzedValue(t *testing.T) {
	assert.Equal(t, " john", domain.FuzzedValue(m.Prefix(" "), "john"))
	assert.Equal(t, "john\u200b", domain.FuzzedValue(m.Trail("\u200b"), "john"))
	assert.Equal(t, "jo\u0000hn", domain.FuzzedValue(m.Insert("\u0000"), "john"))
	assert.Equal(t, "   ", domain.FuzzedValue(m.Replace("   "), "john"))
	assert.Equal(t, "john", domain.FuzzedValue(m.Skip(), "john"))
}
