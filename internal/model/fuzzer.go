package model

// FuzzTarget is the kind of request element a fuzzer mutates.
type FuzzTarget string

const (
	// TargetField mutates body or query fields.
	TargetField FuzzTarget = "field"
	// TargetHeader mutates request headers.
	TargetHeader FuzzTarget = "header"
)

// FuzzerInfo is the display view of a registered fuzzer.
type FuzzerInfo struct {
	Name        string
	Description string
	Target      FuzzTarget
	Kind        StrategyKind
	Policy      ExpectationPolicy
	Payloads    int
}
