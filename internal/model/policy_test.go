package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectationPolicy_Expected(t *testing.T) {
	p := NewPolicy(Family4XX, Family2XX, Family4XX, Family4XX, Family2XX)

	assert.Equal(t, Family4XX, p.Expected(DimensionRequiredField))
	assert.Equal(t, Family2XX, p.Expected(DimensionOptionalField))
	assert.Equal(t, Family4XX, p.Expected(DimensionPatternMismatch))
	assert.Equal(t, Family4XX, p.Expected(DimensionRequiredHeader))
	assert.Equal(t, Family2XX, p.Expected(DimensionOptionalHeader))
	assert.Equal(t, ResponseCodeFamily(0), p.Expected(Dimension("body")))
}

func TestExpectationPolicy_OverridesInheritTheRest(t *testing.T) {
	base := NewPolicy(Family4XX, Family2XX, Family4XX, Family4XX, Family2XX)

	derived := base.WithOptionalField(Family4XX)

	assert.Equal(t, Family4XX, derived.OptionalField())
	assert.Equal(t, base.RequiredField(), derived.RequiredField())
	assert.Equal(t, base.PatternMismatchField(), derived.PatternMismatchField())
	assert.Equal(t, base.RequiredHeader(), derived.RequiredHeader())
	assert.Equal(t, base.OptionalHeader(), derived.OptionalHeader())

	assert.Equal(t, Family2XX, base.OptionalField(), "base policy must be unchanged")
}

func TestExpectationPolicy_AllFields(t *testing.T) {
	p := NewPolicy(Family4XX, Family2XX, Family4XX, Family4XX, Family2XX).AllFields(Family2XX)

	assert.Equal(t, Family2XX, p.RequiredField())
	assert.Equal(t, Family2XX, p.OptionalField())
	assert.Equal(t, Family2XX, p.PatternMismatchField())
	assert.Equal(t, Family4XX, p.RequiredHeader())
	assert.Equal(t, Family2XX, p.OptionalHeader())
}
