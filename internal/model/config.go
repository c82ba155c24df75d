package model

import "time"

// ReportConfig controls where and how the report bundle is written.
type ReportConfig struct {
	Dir                 string `toml:"dir"`
	Timestamp           bool   `toml:"timestamp"`
	ExecutionStatistics bool   `toml:"execution_statistics"`
}

// RunSettings controls how fuzzers are executed.
type RunSettings struct {
	Parallel int      `toml:"parallel"`
	Include  []string `toml:"include"`
	Exclude  []string `toml:"exclude"`
	Timeout  Duration `toml:"timeout"`
}

// RunConfig is the optional nego.toml file.
type RunConfig struct {
	Report ReportConfig `toml:"report"`
	Run    RunSettings  `toml:"run"`
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed

	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
