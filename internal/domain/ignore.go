package domain

import (
	"strings"

	"github.com/mouse-blink/nego/internal/domain/fuzzers"
	m "github.com/mouse-blink/nego/internal/model"
)

const ignoreAll = "all"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(f fuzzers.Fuzzer) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(f.Name)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreList turns an `ignore:` entry list into a rule. Entries may hold
// several comma-separated fuzzer names and match case-insensitively.
func parseIgnoreList(entries []string) ignoreRule {
	var rule ignoreRule

	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				continue
			}

			if name == ignoreAll || name == "*" {
				return ignoreRule{all: true}
			}

			if rule.names == nil {
				rule.names = make(map[string]struct{})
			}

			rule.names[name] = struct{}{}
		}
	}

	return rule
}

// ignoreIndex resolves the effective rule of every item in an operation.
// Item rules extend the operation rule, which extends the target rule.
type ignoreIndex struct {
	operation ignoreRule
	fields    map[string]ignoreRule
	headers   map[string]ignoreRule
}

func buildIgnoreIndex(target m.Target, op m.Operation) ignoreIndex {
	var opRule ignoreRule

	mergeIgnoreRule(&opRule, parseIgnoreList(target.Ignore))
	mergeIgnoreRule(&opRule, parseIgnoreList(op.Ignore))

	idx := ignoreIndex{
		operation: opRule,
		fields:    make(map[string]ignoreRule, len(op.Fields)),
		headers:   make(map[string]ignoreRule, len(op.Headers)),
	}

	for _, field := range op.Fields {
		if len(field.Ignore) > 0 {
			idx.fields[field.Name] = parseIgnoreList(field.Ignore)
		}
	}

	for _, header := range op.Headers {
		if len(header.Ignore) > 0 {
			idx.headers[strings.ToLower(header.Name)] = parseIgnoreList(header.Ignore)
		}
	}

	return idx
}

func (idx ignoreIndex) ignores(f fuzzers.Fuzzer, item fuzzers.Item) bool {
	if idx.operation.ignores(f) {
		return true
	}

	var rule ignoreRule
	if item.Header {
		rule = idx.headers[strings.ToLower(item.Name)]
	} else {
		rule = idx.fields[item.Name]
	}

	return rule.ignores(f)
}
