// Package controller renders run progress, tables and statistics to the terminal.
package controller

import (
	m "github.com/mouse-blink/nego/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlain StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithRunMode prepares the UI to follow a run of total test cases.
func WithRunMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.total = total
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModePlain}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// Classification is the display form of one classified fuzz marker.
type Classification struct {
	Input    string
	Kind     m.StrategyKind
	Payload  string
	Supplied string
	Merged   string
}

// RunInfo describes a run about to start.
type RunInfo struct {
	Jobs     int
	Cases    int
	Parallel int
	Dir      m.Path
}

// UI defines everything the workflow shows to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayFuzzers(fuzzers []m.FuzzerInfo) error
	DisplayClassifications(items []Classification) error
	DisplayRunInfo(info RunInfo)
	DisplayCompletedCase(tc m.TestCase)
	DisplayTimingStats(stats []m.TimingStats)
	DisplayStatsDisabled()
	DisplaySummary(report m.Report, dir m.Path) error
}
