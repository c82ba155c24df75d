package model

// FieldSpec describes one body field of an operation and a schema-valid sample value.
type FieldSpec struct {
	Name     string   `yaml:"name"`
	Value    string   `yaml:"value"`
	Required bool     `yaml:"required"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Ignore   []string `yaml:"ignore,omitempty"`
}

// HeaderSpec describes one request header and a valid sample value.
type HeaderSpec struct {
	Name     string   `yaml:"name"`
	Value    string   `yaml:"value"`
	Required bool     `yaml:"required"`
	Ignore   []string `yaml:"ignore,omitempty"`
}

// Operation is a single (method, path) pair of the API under test.
type Operation struct {
	Path    string       `yaml:"path"`
	Method  string       `yaml:"method"`
	Headers []HeaderSpec `yaml:"headers,omitempty"`
	Fields  []FieldSpec  `yaml:"fields,omitempty"`
	Ignore  []string     `yaml:"ignore,omitempty"`
}

// Target is the API under test: where it lives and which operations to fuzz.
// Ignore lists, at target, operation or item level, name fuzzers that must not
// run there; "all" ignores every fuzzer.
type Target struct {
	BaseURL    string            `yaml:"baseUrl"`
	Headers    map[string]string `yaml:"headers,omitempty"`
	Ignore     []string          `yaml:"ignore,omitempty"`
	Operations []Operation       `yaml:"operations"`
}

// Body renders the operation's sample payload with one field replaced by value.
// An empty name renders the unmodified sample.
func (op Operation) Body(name, value string) map[string]string {
	body := make(map[string]string, len(op.Fields))
	for _, f := range op.Fields {
		body[f.Name] = f.Value
	}

	if name != "" {
		body[name] = value
	}

	return body
}

// HeaderValues renders the operation's sample headers with one header replaced by value.
func (op Operation) HeaderValues(defaults map[string]string, name, value string) map[string]string {
	headers := make(map[string]string, len(defaults)+len(op.Headers))
	for k, v := range defaults {
		headers[k] = v
	}

	for _, h := range op.Headers {
		headers[h.Name] = h.Value
	}

	if name != "" {
		headers[name] = value
	}

	return headers
}
