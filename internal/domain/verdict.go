package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/nego/internal/model"
)

// Judgement is the verdict for one response with a human readable reason.
type Judgement struct {
	Verdict m.Verdict
	Reason  string
	Details string
}

// Judge compares an observed status against the family a policy expects for dimension.
//
// A match is a success. A server error, or an accepted request where a rejection was
// expected, is an error. Anything else is a warning.
func Judge(policy m.ExpectationPolicy, dimension m.Dimension, status int) Judgement {
	expected := policy.Expected(dimension)
	allowed := strings.Join(expected.AllowedCodes(), ", ")

	if expected.Matches(status) {
		return Judgement{
			Verdict: m.VerdictSuccess,
			Reason:  "Call returned as expected",
			Details: fmt.Sprintf("Response matches expected result. Response code [%d] is documented and matches %s", status, expected),
		}
	}

	actual, ok := m.FamilyOf(status)
	switch {
	case !ok:
		return Judgement{
			Verdict: m.VerdictError,
			Reason:  "Invalid response code",
			Details: fmt.Sprintf("Call returned response code [%d] which is not a valid HTTP status, expected [%s]", status, allowed),
		}
	case actual == m.Family5XX:
		return Judgement{
			Verdict: m.VerdictError,
			Reason:  "Unexpected server error",
			Details: fmt.Sprintf("Call failed with response code [%d], expected [%s]", status, allowed),
		}
	case expected == m.Family4XX && actual == m.Family2XX:
		return Judgement{
			Verdict: m.VerdictError,
			Reason:  "Unexpected response code: accepted invalid input",
			Details: fmt.Sprintf("Call returned [%d] but the fuzzed value should have been rejected with [%s]", status, allowed),
		}
	default:
		return Judgement{
			Verdict: m.VerdictWarning,
			Reason:  "Unexpected response code",
			Details: fmt.Sprintf("Call returned [%d] (%s), expected [%s]", status, actual, allowed),
		}
	}
}
