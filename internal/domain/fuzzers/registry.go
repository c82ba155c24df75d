// Package fuzzers holds the static registry of fuzzer variants: which strategy
// each one applies, which payloads it sends and which responses it expects.
package fuzzers

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	m "github.com/mouse-blink/nego/internal/model"
)

// Item is one request element (body field or header) a fuzzer may target.
type Item struct {
	Name     string
	Value    string
	Required bool
	Header   bool
	Pattern  *regexp.Regexp
}

// Target reports which kind of request element the item is.
func (it Item) Target() m.FuzzTarget {
	if it.Header {
		return m.TargetHeader
	}

	return m.TargetField
}

// Applicability decides whether a fuzzer can run against an item.
// A non-empty reason records the case as skipped.
type Applicability func(item Item) (reason string)

// Fuzzer is a registered fuzzer variant. Variants are values, not types.
type Fuzzer struct {
	Name        string
	Description string
	Target      m.FuzzTarget
	Kind        m.StrategyKind
	Policy      m.ExpectationPolicy
	Payloads    func() []string
	Applies     Applicability
}

// SkipReason returns why the fuzzer cannot run against item, or "".
func (f Fuzzer) SkipReason(item Item) string {
	if f.Applies == nil {
		return ""
	}

	return f.Applies(item)
}

// Strategy returns the strategy this fuzzer applies with payload.
func (f Fuzzer) Strategy(payload string) m.FuzzStrategy {
	return m.NewStrategy(f.Kind, payload)
}

// Info returns the display view of the fuzzer.
func (f Fuzzer) Info() m.FuzzerInfo {
	count := 0
	if f.Payloads != nil {
		count = len(f.Payloads())
	}

	return m.FuzzerInfo{
		Name:        f.Name,
		Description: f.Description,
		Target:      f.Target,
		Kind:        f.Kind,
		Policy:      f.Policy,
		Payloads:    count,
	}
}

// Registry maps fuzzer names to their definitions.
type Registry struct {
	byName map[string]Fuzzer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Fuzzer)}
}

// Register adds a fuzzer. Names must be unique and fuzzers that carry payloads
// must use a strategy kind that accepts one.
func (r *Registry) Register(f Fuzzer) error {
	if f.Name == "" {
		return fmt.Errorf("fuzzer name is empty")
	}

	if _, exists := r.byName[f.Name]; exists {
		return fmt.Errorf("fuzzer %s already registered", f.Name)
	}

	if f.Payloads == nil && f.Kind.NeedsPayload() {
		return fmt.Errorf("fuzzer %s: %s strategy requires payloads", f.Name, f.Kind)
	}

	r.byName[f.Name] = f

	return nil
}

// MustRegister is Register that panics, for static registration tables.
func (r *Registry) MustRegister(fuzzers ...Fuzzer) *Registry {
	for _, f := range fuzzers {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}

	return r
}

// Lookup returns the fuzzer registered under name.
func (r *Registry) Lookup(name string) (Fuzzer, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// All returns every fuzzer sorted by name.
func (r *Registry) All() []Fuzzer {
	out := make([]Fuzzer, 0, len(r.byName))
	for _, f := range r.byName {
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Filter returns fuzzers whose names contain any include term (all when empty)
// and none of the exclude terms. Matching is case-insensitive.
func (r *Registry) Filter(include, exclude []string) []Fuzzer {
	var out []Fuzzer

	for _, f := range r.All() {
		if len(include) > 0 && !containsAny(f.Name, include) {
			continue
		}

		if containsAny(f.Name, exclude) {
			continue
		}

		out = append(out, f)
	}

	return out
}

func containsAny(name string, terms []string) bool {
	lower := strings.ToLower(name)

	return slices.ContainsFunc(terms, func(term string) bool {
		return term != "" && strings.Contains(lower, strings.ToLower(term))
	})
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of built-in fuzzers.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry().MustRegister(builtins()...)
	})

	return defaultRegistry
}
