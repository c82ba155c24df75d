package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	m "github.com/mouse-blink/nego/internal/model"
)

const recentCases = 8

type runInfoMsg RunInfo

type caseDoneMsg struct {
	tc m.TestCase
}

type runDoneMsg struct{}

type caseRow struct {
	id       string
	endpoint string
	fuzzer   string
	result   m.Verdict
}

// runModel renders the progress of a fuzzing run.
type runModel struct {
	info     RunInfo
	total    int
	done     int
	counts   map[m.Verdict]int
	recent   []caseRow
	spinner  spinner.Model
	prog     progress.Model
	width    int
	finished bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	verdictStyle = map[m.Verdict]lipgloss.Style{
		m.VerdictSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		m.VerdictWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		m.VerdictError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		m.VerdictSkipped: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

func newRunModel(total int) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithWidth(76))

	return runModel{
		total:   total,
		counts:  make(map[m.Verdict]int),
		spinner: sp,
		prog:    prog,
		width:   80,
	}
}

func (r runModel) withWidth(width int) runModel {
	if width > 0 {
		r.width = width
		r.prog.Width = max(width-4, 10)
	}

	return r
}

func (r runModel) Init() tea.Cmd {
	return r.spinner.Tick
}

func (r runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runInfoMsg:
		r.info = RunInfo(msg)
		if msg.Cases > 0 {
			r.total = msg.Cases
		}

		return r, nil
	case caseDoneMsg:
		return r.applyCase(msg.tc), nil
	case runDoneMsg:
		r.finished = true
		return r, tea.Quit
	case spinner.TickMsg:
		if r.finished {
			return r, nil
		}

		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)

		return r, cmd
	case tea.WindowSizeMsg:
		return r.withWidth(msg.Width), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
	}

	return r, nil
}

func (r runModel) applyCase(tc m.TestCase) runModel {
	r.done++
	r.counts[tc.Result]++

	r.recent = append(r.recent, caseRow{
		id:       tc.ID,
		endpoint: tc.EndpointKey(),
		fuzzer:   tc.Fuzzer,
		result:   tc.Result,
	})
	if len(r.recent) > recentCases {
		r.recent = r.recent[len(r.recent)-recentCases:]
	}

	return r
}

func (r runModel) percent() float64 {
	if r.total <= 0 {
		return 0
	}

	return min(float64(r.done)/float64(r.total), 1)
}

func (r runModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Fuzzing %d/%d test cases", r.done, r.total)
	if r.info.Parallel > 0 {
		header += fmt.Sprintf(" with %d worker(s)", r.info.Parallel)
	}

	if r.finished {
		header = "done: " + header
	} else {
		header = r.spinner.View() + " " + header
	}

	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(r.prog.ViewAs(r.percent()))
	b.WriteString("\n\n")

	for _, v := range []m.Verdict{m.VerdictSuccess, m.VerdictWarning, m.VerdictError, m.VerdictSkipped} {
		b.WriteString(verdictStyle[v].Render(fmt.Sprintf("%s %d", v, r.counts[v])))
		b.WriteString("  ")
	}

	b.WriteString("\n\n")

	nameWidth := max(r.width-32, 20)
	for _, row := range r.recent {
		line := fmt.Sprintf("%s %s", row.endpoint, row.fuzzer)
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-10s ", row.id)))
		b.WriteString(fitWidth(line, nameWidth))
		b.WriteString(" ")
		b.WriteString(verdictStyle[row.result].Render(string(row.result)))
		b.WriteString("\n")
	}

	if r.info.Dir != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("report: " + string(r.info.Dir)))
		b.WriteString("\n")
	}

	return b.String()
}

func fitWidth(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return runewidth.FillRight(value, width)
	}

	return runewidth.Truncate(value, width, "...")
}
