// Package model defines the data structures for negative API testing.
package model

import "fmt"

// ResponseCodeFamily groups HTTP status codes by their leading digit.
type ResponseCodeFamily int

const (
	// Family1XX covers informational responses [100, 200).
	Family1XX ResponseCodeFamily = iota + 1
	// Family2XX covers successful responses [200, 300).
	Family2XX
	// Family3XX covers redirects [300, 400).
	Family3XX
	// Family4XX covers client errors [400, 500).
	Family4XX
	// Family5XX covers server errors [500, 600).
	Family5XX
)

// Families lists every family in ascending order.
var Families = []ResponseCodeFamily{Family1XX, Family2XX, Family3XX, Family4XX, Family5XX}

func (f ResponseCodeFamily) lower() int {
	return int(f) * 100
}

// Matches reports whether code falls within the family's bound.
func (f ResponseCodeFamily) Matches(code int) bool {
	return code >= f.lower() && code < f.lower()+100
}

// String returns the conventional label, e.g. "4XX".
func (f ResponseCodeFamily) String() string {
	if f < Family1XX || f > Family5XX {
		return "unknown"
	}

	return fmt.Sprintf("%dXX", int(f))
}

// AllowedCodes returns the representative codes displayed when a response does not match.
func (f ResponseCodeFamily) AllowedCodes() []string {
	switch f {
	case Family2XX:
		return []string{"200", "201", "202", "204"}
	case Family4XX:
		return []string{"400", "404", "405", "413", "414", "422"}
	case Family5XX:
		return []string{"500", "501"}
	default:
		return []string{f.String()}
	}
}

// FamilyOf returns the family that contains code. Codes outside 100-599 return false.
func FamilyOf(code int) (ResponseCodeFamily, bool) {
	for _, f := range Families {
		if f.Matches(code) {
			return f, true
		}
	}

	return 0, false
}

// MarshalText encodes the family as its label.
func (f ResponseCodeFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a label such as "2XX".
func (f *ResponseCodeFamily) UnmarshalText(text []byte) error {
	for _, candidate := range Families {
		if candidate.String() == string(text) {
			*f = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown response code family %q", text)
}
