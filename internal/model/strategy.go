package model

// StrategyKind describes how a fuzzed marker combines with a valid sample value.
type StrategyKind string

const (
	// StrategyReplace replaces the supplied value with the payload.
	StrategyReplace StrategyKind = "REPLACE"
	// StrategyPrefix prepends the payload to the supplied value.
	StrategyPrefix StrategyKind = "PREFIX"
	// StrategyTrail appends the payload to the supplied value.
	StrategyTrail StrategyKind = "TRAIL"
	// StrategyInsert splices the payload into the middle of the supplied value.
	StrategyInsert StrategyKind = "INSERT"
	// StrategySkip leaves the supplied value untouched.
	StrategySkip StrategyKind = "SKIP"
	// StrategyNoop returns the payload and ignores the supplied value.
	StrategyNoop StrategyKind = "NOOP"
)

// NeedsPayload reports whether strategies of this kind must carry a payload.
func (k StrategyKind) NeedsPayload() bool {
	switch k {
	case StrategyReplace, StrategyPrefix, StrategyTrail, StrategyInsert:
		return true
	default:
		return false
	}
}

// FuzzStrategy is an immutable tagged value: a kind plus an optional payload.
type FuzzStrategy struct {
	kind    StrategyKind
	data    string
	hasData bool
}

// Replace builds a REPLACE strategy.
func Replace(data string) FuzzStrategy {
	return FuzzStrategy{kind: StrategyReplace, data: data, hasData: true}
}

// Prefix builds a PREFIX strategy.
func Prefix(data string) FuzzStrategy {
	return FuzzStrategy{kind: StrategyPrefix, data: data, hasData: true}
}

// Trail builds a TRAIL strategy.
func Trail(data string) FuzzStrategy {
	return FuzzStrategy{kind: StrategyTrail, data: data, hasData: true}
}

// Insert builds an INSERT strategy.
func Insert(data string) FuzzStrategy {
	return FuzzStrategy{kind: StrategyInsert, data: data, hasData: true}
}

// Skip builds a SKIP strategy.
func Skip() FuzzStrategy {
	return FuzzStrategy{kind: StrategySkip}
}

// Noop builds a NOOP strategy. NOOP may optionally carry a value to return verbatim.
func Noop(data ...string) FuzzStrategy {
	if len(data) == 0 {
		return FuzzStrategy{kind: StrategyNoop}
	}

	return FuzzStrategy{kind: StrategyNoop, data: data[0], hasData: true}
}

// NewStrategy builds a strategy of the given kind carrying data.
func NewStrategy(kind StrategyKind, data string) FuzzStrategy {
	switch kind {
	case StrategySkip:
		return Skip()
	case StrategyNoop:
		return Noop(data)
	default:
		return FuzzStrategy{kind: kind, data: data, hasData: true}
	}
}

// Kind returns the strategy kind.
func (s FuzzStrategy) Kind() StrategyKind {
	return s.kind
}

// Data returns the payload and whether one is present.
func (s FuzzStrategy) Data() (string, bool) {
	return s.data, s.hasData
}

// Payload returns the payload, or the empty string when absent.
func (s FuzzStrategy) Payload() string {
	return s.data
}

// IsSkip reports whether this is a SKIP strategy.
func (s FuzzStrategy) IsSkip() bool {
	return s.kind == StrategySkip
}

// Name returns the kind name.
func (s FuzzStrategy) Name() string {
	return string(s.kind)
}

// String renders "<KIND> with <payload>" or just "<KIND>".
func (s FuzzStrategy) String() string {
	if s.hasData {
		return s.Name() + " with " + s.data
	}

	return s.Name()
}
