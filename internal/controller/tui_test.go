package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/nego/internal/model"
)

func TestRunModel_CountsVerdicts(t *testing.T) {
	model := newRunModel(4)

	updated, _ := model.Update(runInfoMsg(RunInfo{Jobs: 2, Cases: 3, Parallel: 2, Dir: "nego-report"}))
	model = updated.(runModel)

	for _, v := range []m.Verdict{m.VerdictSuccess, m.VerdictError, m.VerdictSuccess} {
		updated, _ = model.Update(caseDoneMsg{tc: m.TestCase{ID: "Test 1", Method: "POST", Path: "/users", Fuzzer: "F", Result: v}})
		model = updated.(runModel)
	}

	if model.total != 3 {
		t.Fatalf("total = %d, want 3 from run info", model.total)
	}

	if model.done != 3 || model.counts[m.VerdictSuccess] != 2 || model.counts[m.VerdictError] != 1 {
		t.Fatalf("unexpected counts: done=%d counts=%v", model.done, model.counts)
	}

	if got := model.percent(); got != 1 {
		t.Fatalf("percent() = %v, want 1", got)
	}

	view := model.View()
	for _, want := range []string{"3/3", "2 worker(s)", "success 2", "error 1", "POST /users", "report: nego-report"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q\nview:\n%s", want, view)
		}
	}
}

func TestRunModel_KeepsRecentCases(t *testing.T) {
	model := newRunModel(20)

	for i := 0; i < 20; i++ {
		model = model.applyCase(m.TestCase{ID: "Test", Result: m.VerdictSuccess})
	}

	if len(model.recent) != recentCases {
		t.Fatalf("recent = %d, want %d", len(model.recent), recentCases)
	}
}

func TestRunModel_DoneQuits(t *testing.T) {
	model := newRunModel(1)

	updated, cmd := model.Update(runDoneMsg{})
	if !updated.(runModel).finished {
		t.Fatalf("model not finished after runDoneMsg")
	}

	if cmd == nil {
		t.Fatalf("expected quit command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRunModel_PercentWithoutTotal(t *testing.T) {
	if got := newRunModel(0).percent(); got != 0 {
		t.Fatalf("percent() = %v, want 0", got)
	}
}

func TestRunModel_WindowResize(t *testing.T) {
	updated, _ := newRunModel(1).Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	model := updated.(runModel)
	if model.width != 120 || model.prog.Width != 116 {
		t.Fatalf("width = %d, progress width = %d", model.width, model.prog.Width)
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abc", 5); got != "abc  " {
		t.Fatalf("fitWidth pad = %q", got)
	}

	if got := fitWidth("abcdefghij", 6); got != "abc..." {
		t.Fatalf("fitWidth truncate = %q", got)
	}
}

func TestTUI_FallsBackOutsideRunMode(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)
	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayCompletedCase(m.TestCase{ID: "Test 1", Result: m.VerdictSuccess})
	ui.Close()

	if !strings.Contains(buf.String(), "Test 1") {
		t.Fatalf("expected plain output, got %q", buf.String())
	}
}

func TestTUI_RunMode(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)
	if err := ui.Start(WithRunMode(2)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.DisplayRunInfo(RunInfo{Jobs: 1, Cases: 2, Parallel: 1})
	ui.DisplayCompletedCase(m.TestCase{ID: "Test 1", Result: m.VerdictSuccess})
	ui.DisplayCompletedCase(m.TestCase{ID: "Test 2", Result: m.VerdictWarning})
	ui.Close()

	if ui.program != nil {
		t.Fatalf("program not released after Close")
	}
}
