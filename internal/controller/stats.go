package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	m "github.com/mouse-blink/nego/internal/model"
)

var (
	endpointColor = color.New(color.FgGreen)
	averageColor  = color.New(color.FgYellow)
	worstColor    = color.New(color.FgRed)
	bestColor     = color.New(color.FgGreen)
	boldColor     = color.New(color.Bold)
)

func writeTimingStats(w io.Writer, stats []m.TimingStats) {
	numbers := message.NewPrinter(language.English)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, " ---------------------------- Execution time details ---------------------------- ")
	_, _ = fmt.Fprintln(w)

	if len(stats) == 0 {
		_, _ = fmt.Fprintln(w, "No endpoint was exercised by more than one test case")
	}

	for _, s := range stats {
		_, _ = fmt.Fprintf(w, "Details for path %s\n", endpointColor.Sprint(s.Endpoint))
		_, _ = fmt.Fprintf(w, "  %s %s\n", averageColor.Sprint("Average response time:"),
			boldColor.Sprint(numbers.Sprintf("%.2fms", s.Average)))
		_, _ = fmt.Fprintf(w, "  %s %s\n", worstColor.Sprint("Worst case response time:"), boldColor.Sprint(s.WorstCase()))
		_, _ = fmt.Fprintf(w, "  %s %s\n", bestColor.Sprint("Best case response time:"), boldColor.Sprint(s.BestCase()))
		_, _ = fmt.Fprintf(w, "  %d executed tests (sorted by response time): [%s]\n",
			len(s.Executions), strings.Join(s.ExecutionTimes(), ", "))
		_, _ = fmt.Fprintln(w)
	}
}

func verdictColor(v m.Verdict) string {
	switch v {
	case m.VerdictSuccess:
		return color.GreenString(string(v))
	case m.VerdictWarning:
		return color.YellowString(string(v))
	case m.VerdictError:
		return color.RedString(string(v))
	default:
		return color.HiBlackString(string(v))
	}
}
