package domain

import (
	"testing"

	"github.com/mouse-blink/nego/internal/domain/fuzzers"
	m "github.com/mouse-blink/nego/internal/model"
)

func TestParseIgnoreList_All(t *testing.T) {
	for _, entries := range [][]string{{"all"}, {"ALL"}, {"*"}, {"LeadingControlCharsInFields", "all"}} {
		r := parseIgnoreList(entries)
		if !r.all || r.names != nil {
			t.Fatalf("%v: expected all=true and names=nil", entries)
		}
	}
}

func TestParseIgnoreList_Names(t *testing.T) {
	r := parseIgnoreList([]string{"LeadingControlCharsInFields, TrailingWhitespacesInFields ", "", " , "})
	if r.all {
		t.Fatalf("expected all=false")
	}
	if len(r.names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(r.names))
	}
	if _, ok := r.names["leadingcontrolcharsinfields"]; !ok {
		t.Fatalf("expected leadingcontrolcharsinfields")
	}
	if _, ok := r.names["trailingwhitespacesinfields"]; !ok {
		t.Fatalf("expected trailingwhitespacesinfields")
	}
}

func TestParseIgnoreList_Empty(t *testing.T) {
	r := parseIgnoreList(nil)
	if r.all || len(r.names) != 0 {
		t.Fatalf("expected empty rule")
	}
	if r.ignores(fuzzers.Fuzzer{Name: "Anything"}) {
		t.Fatalf("empty rule must not ignore")
	}
}

func TestMergeIgnoreRule(t *testing.T) {
	var dst ignoreRule
	mergeIgnoreRule(&dst, parseIgnoreList([]string{"a"}))
	mergeIgnoreRule(&dst, parseIgnoreList([]string{"b"}))
	if len(dst.names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(dst.names))
	}

	mergeIgnoreRule(&dst, ignoreRule{all: true})
	if !dst.all || dst.names != nil {
		t.Fatalf("expected all rule to absorb names")
	}

	mergeIgnoreRule(&dst, parseIgnoreList([]string{"c"}))
	if !dst.all || dst.names != nil {
		t.Fatalf("expected all rule to stay absolute")
	}
}

func TestBuildIgnoreIndex_Scopes(t *testing.T) {
	target := m.Target{
		Ignore: []string{"EmojiInFields"},
		Operations: []m.Operation{{
			Path:   "/users",
			Method: "POST",
			Ignore: []string{"TrailingWhitespacesInFields"},
			Fields: []m.FieldSpec{
				{Name: "name", Value: "john", Ignore: []string{"LeadingControlCharsInFields"}},
				{Name: "email", Value: "a@b.c"},
			},
			Headers: []m.HeaderSpec{{Name: "X-Tenant", Value: "acme", Ignore: []string{"all"}}},
		}},
	}

	idx := buildIgnoreIndex(target, target.Operations[0])
	name := fuzzers.Item{Name: "name", Value: "john"}
	email := fuzzers.Item{Name: "email", Value: "a@b.c"}
	tenant := fuzzers.Item{Name: "x-tenant", Value: "acme", Header: true}

	cases := []struct {
		fuzzer string
		item   fuzzers.Item
		want   bool
	}{
		{"EmojiInFields", email, true},
		{"TrailingWhitespacesInFields", email, true},
		{"LeadingControlCharsInFields", name, true},
		{"LeadingControlCharsInFields", email, false},
		{"LeadingWhitespacesInHeaders", tenant, true},
		{"LeadingWhitespacesInFields", name, false},
	}

	for _, tc := range cases {
		if got := idx.ignores(fuzzers.Fuzzer{Name: tc.fuzzer}, tc.item); got != tc.want {
			t.Fatalf("%s on %s: expected %v, got %v", tc.fuzzer, tc.item.Name, tc.want, got)
		}
	}
}

func TestPlanJobs_HonorsIgnoreLists(t *testing.T) {
	registry := fuzzers.Default()
	field, ok := registry.Lookup("LeadingControlCharsInFields")
	if !ok {
		t.Fatalf("expected LeadingControlCharsInFields to be registered")
	}

	target := m.Target{Operations: []m.Operation{
		{
			Path:   "/users",
			Method: "POST",
			Fields: []m.FieldSpec{
				{Name: "name", Value: "john", Ignore: []string{"leadingcontrolcharsinfields"}},
				{Name: "email", Value: "a@b.c"},
			},
		},
		{
			Path:   "/legacy",
			Method: "POST",
			Ignore: []string{"all"},
			Fields: []m.FieldSpec{{Name: "id", Value: "1"}},
		},
	}}

	jobs, err := PlanJobs(target, []fuzzers.Fuzzer{field})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Item.Name != "email" || jobs[0].Operation.Path != "/users" {
		t.Fatalf("unexpected job %s %s", jobs[0].Operation.Path, jobs[0].Item.Name)
	}
}
