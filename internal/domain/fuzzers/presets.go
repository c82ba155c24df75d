package fuzzers

import m "github.com/mouse-blink/nego/internal/model"

// Base policy presets. Fuzzers derive their policies from these by overriding
// only the dimensions that differ.
var (
	// Expect4XXOnRequired: breaking a required field or header must be rejected,
	// optional ones may be accepted, pattern violations must be rejected.
	Expect4XXOnRequired = m.NewPolicy(m.Family4XX, m.Family2XX, m.Family4XX, m.Family4XX, m.Family2XX)

	// ExpectOnly2XXFields models a server that trims before validating.
	ExpectOnly2XXFields = Expect4XXOnRequired.AllFields(m.Family2XX)

	// ExpectOnly4XXFields models a server that validates before trimming.
	ExpectOnly4XXFields = Expect4XXOnRequired.AllFields(m.Family4XX)

	// Expect4XXHeaders rejects broken required headers and tolerates optional ones.
	Expect4XXHeaders = Expect4XXOnRequired

	// ExpectOnly4XXHeaders rejects any broken header.
	ExpectOnly4XXHeaders = Expect4XXHeaders.WithOptionalHeader(m.Family4XX)

	// ExpectOnly2XXHeaders accepts headers whose padding is stripped by the HTTP stack.
	ExpectOnly2XXHeaders = Expect4XXHeaders.WithRequiredHeader(m.Family2XX)
)

// Presets maps preset names to values, for display and configuration.
var Presets = map[string]m.ExpectationPolicy{
	"Expect4XXOnRequired":  Expect4XXOnRequired,
	"ExpectOnly2XXFields":  ExpectOnly2XXFields,
	"ExpectOnly4XXFields":  ExpectOnly4XXFields,
	"Expect4XXHeaders":     Expect4XXHeaders,
	"ExpectOnly4XXHeaders": ExpectOnly4XXHeaders,
	"ExpectOnly2XXHeaders": ExpectOnly2XXHeaders,
}
