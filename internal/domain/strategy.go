// Package domain contains the negative testing engine: value mutation,
// verdicts, fuzzer orchestration and the run workflow.
package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	m "github.com/mouse-blink/nego/internal/model"
)

const maxDisplayUnits = 30

// special lists the categories that make a character interesting to fuzz:
// control, format, private use, surrogate, the three separators and other symbols.
var special = []*unicode.RangeTable{
	unicode.Cc, unicode.Cf, unicode.Co, unicode.Cs,
	unicode.Zl, unicode.Zp, unicode.Zs,
	unicode.So,
}

// IsSpecial reports whether r is a control, separator or other-symbol character.
func IsSpecial(r rune) bool {
	return unicode.IsOneOf(special, r)
}

// Classify resolves the strategy encoded by a fuzzed marker value.
// Payloads are byte slices of value; invalid UTF-8 bytes count as ordinary characters.
func Classify(value string) m.FuzzStrategy {
	lead := 0
	for lead < len(value) {
		sp, size := specialAt(value[lead:])
		if !sp {
			break
		}

		lead += size
	}

	if lead == len(value) {
		return m.Replace(value)
	}

	if lead > 0 {
		return m.Prefix(value[:lead])
	}

	trail := len(value)
	for trail > 0 {
		sp, size := specialBefore(value[:trail])
		if !sp {
			break
		}

		trail -= size
	}

	if trail < len(value) {
		return m.Trail(value[trail:])
	}

	if run, ok := firstSpecialRun(value); ok {
		return m.Insert(run)
	}

	return m.Replace(value)
}

// Merge combines a fuzzed marker with a schema-valid supplied value.
func Merge(fuzzedValue, suppliedValue string) string {
	return Process(Classify(fuzzedValue), suppliedValue)
}

// Process applies a single strategy to value.
func Process(s m.FuzzStrategy, value string) string {
	payload := s.Payload()

	switch s.Kind() {
	case m.StrategyReplace, m.StrategyNoop:
		return payload
	case m.StrategyPrefix:
		return payload + value
	case m.StrategyTrail:
		return value + payload
	case m.StrategyInsert:
		mid := runeOffset(value, utf8.RuneCountInString(value)/2)

		return value[:mid] + payload + value[mid:]
	default:
		return value
	}
}

// ProcessAny stringifies value before applying s.
func ProcessAny(s m.FuzzStrategy, value any) string {
	return Process(s, fmt.Sprint(value))
}

// FormatValue escapes every special character as \uXXXX so it can be shown safely.
// Characters outside the BMP are escaped as their UTF-16 surrogate pair.
func FormatValue(data string) string {
	var b strings.Builder

	b.Grow(len(data))

	for _, r := range data {
		if !IsSpecial(r) {
			b.WriteRune(r)
			continue
		}

		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
			continue
		}

		fmt.Fprintf(&b, "\\u%04x", r)
	}

	return b.String()
}

// Truncate cuts data to 30 UTF-16 code units, marking the cut with "...".
func Truncate(data string) string {
	units := 0

	for i, r := range data {
		units += utf16.RuneLen(r)
		if units > maxDisplayUnits {
			return data[:i] + "..."
		}
	}

	return data
}

// TruncatedValue renders a strategy for humans: truncated, then escaped.
func TruncatedValue(s m.FuzzStrategy) string {
	data, ok := s.Data()
	if !ok {
		return s.Name()
	}

	return s.Name() + " with " + FormatValue(Truncate(data))
}

func specialAt(s string) (bool, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return false, 1
	}

	return IsSpecial(r), size
}

func specialBefore(s string) (bool, int) {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return false, 1
	}

	return IsSpecial(r), size
}

func firstSpecialRun(value string) (string, bool) {
	start := -1

	for i := 0; i < len(value); {
		sp, size := specialAt(value[i:])

		switch {
		case sp && start < 0:
			start = i
		case !sp && start >= 0:
			return value[start:i], true
		}

		i += size
	}

	if start >= 0 {
		return value[start:], true
	}

	return "", false
}

// runeOffset returns the byte index of the n-th character of s.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}

		n--
	}

	return len(s)
}
