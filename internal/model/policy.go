package model

// Dimension is the axis along which a fuzzer's outcome is judged.
type Dimension string

const (
	// DimensionRequiredField is a required body field being fuzzed.
	DimensionRequiredField Dimension = "requiredField"
	// DimensionOptionalField is an optional body field being fuzzed.
	DimensionOptionalField Dimension = "optionalField"
	// DimensionPatternMismatch is a field whose fuzzed value no longer matches its pattern.
	DimensionPatternMismatch Dimension = "patternMismatchField"
	// DimensionRequiredHeader is a required header being fuzzed.
	DimensionRequiredHeader Dimension = "requiredHeader"
	// DimensionOptionalHeader is an optional header being fuzzed.
	DimensionOptionalHeader Dimension = "optionalHeader"
)

// Dimensions lists every dimension in a stable order.
var Dimensions = []Dimension{
	DimensionRequiredField,
	DimensionOptionalField,
	DimensionPatternMismatch,
	DimensionRequiredHeader,
	DimensionOptionalHeader,
}

// ExpectationPolicy states, per dimension, which response family is correct.
// Values are immutable: the With* methods return modified copies.
type ExpectationPolicy struct {
	requiredField        ResponseCodeFamily
	optionalField        ResponseCodeFamily
	patternMismatchField ResponseCodeFamily
	requiredHeader       ResponseCodeFamily
	optionalHeader       ResponseCodeFamily
}

// NewPolicy builds a policy binding every dimension explicitly.
func NewPolicy(requiredField, optionalField, patternMismatch, requiredHeader, optionalHeader ResponseCodeFamily) ExpectationPolicy {
	return ExpectationPolicy{
		requiredField:        requiredField,
		optionalField:        optionalField,
		patternMismatchField: patternMismatch,
		requiredHeader:       requiredHeader,
		optionalHeader:       optionalHeader,
	}
}

// RequiredField returns the expectation when a required field is fuzzed.
func (p ExpectationPolicy) RequiredField() ResponseCodeFamily { return p.requiredField }

// OptionalField returns the expectation when an optional field is fuzzed.
func (p ExpectationPolicy) OptionalField() ResponseCodeFamily { return p.optionalField }

// PatternMismatchField returns the expectation when the fuzzed value breaks the field pattern.
func (p ExpectationPolicy) PatternMismatchField() ResponseCodeFamily { return p.patternMismatchField }

// RequiredHeader returns the expectation when a required header is fuzzed.
func (p ExpectationPolicy) RequiredHeader() ResponseCodeFamily { return p.requiredHeader }

// OptionalHeader returns the expectation when an optional header is fuzzed.
func (p ExpectationPolicy) OptionalHeader() ResponseCodeFamily { return p.optionalHeader }

// Expected returns the family bound to dimension d.
func (p ExpectationPolicy) Expected(d Dimension) ResponseCodeFamily {
	switch d {
	case DimensionRequiredField:
		return p.requiredField
	case DimensionOptionalField:
		return p.optionalField
	case DimensionPatternMismatch:
		return p.patternMismatchField
	case DimensionRequiredHeader:
		return p.requiredHeader
	case DimensionOptionalHeader:
		return p.optionalHeader
	default:
		return 0
	}
}

// WithRequiredField overrides the required field expectation.
func (p ExpectationPolicy) WithRequiredField(f ResponseCodeFamily) ExpectationPolicy {
	p.requiredField = f
	return p
}

// WithOptionalField overrides the optional field expectation.
func (p ExpectationPolicy) WithOptionalField(f ResponseCodeFamily) ExpectationPolicy {
	p.optionalField = f
	return p
}

// WithPatternMismatchField overrides the pattern mismatch expectation.
func (p ExpectationPolicy) WithPatternMismatchField(f ResponseCodeFamily) ExpectationPolicy {
	p.patternMismatchField = f
	return p
}

// WithRequiredHeader overrides the required header expectation.
func (p ExpectationPolicy) WithRequiredHeader(f ResponseCodeFamily) ExpectationPolicy {
	p.requiredHeader = f
	return p
}

// WithOptionalHeader overrides the optional header expectation.
func (p ExpectationPolicy) WithOptionalHeader(f ResponseCodeFamily) ExpectationPolicy {
	p.optionalHeader = f
	return p
}

// AllFields binds all three field dimensions to f.
func (p ExpectationPolicy) AllFields(f ResponseCodeFamily) ExpectationPolicy {
	return p.WithRequiredField(f).WithOptionalField(f).WithPatternMismatchField(f)
}
