package controller

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/nego/internal/model"
)

// TUI shows an interactive progress view during runs and falls back to the
// plain renderer for tables and statistics.
type TUI struct {
	*SimpleUI
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// Start launches the progress program when in run mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	if cfg.mode != ModeRun {
		return nil
	}

	model := newRunModel(cfg.total)

	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model = model.withWidth(width)
		}
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the progress program and waits for it to restore the terminal.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Send(runDoneMsg{})
	<-t.done
	t.program = nil
}

// DisplayRunInfo is shown in the progress header instead of being printed.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	if t.program == nil {
		t.SimpleUI.DisplayRunInfo(info)
		return
	}

	t.program.Send(runInfoMsg(info))
}

// DisplayCompletedCase advances the progress view.
func (t *TUI) DisplayCompletedCase(tc m.TestCase) {
	if t.program == nil {
		t.SimpleUI.DisplayCompletedCase(tc)
		return
	}

	t.program.Send(caseDoneMsg{tc: tc})
}
