package provision

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

const (
	markOK   = "[ OK ]"
	markSkip = "[SKIP]"
	markFail = "[FAIL]"
)

// RenderReport formats the final aggregated report. Styled output is
// used on interactive terminals, plain rows everywhere else.
func RenderReport(r *Report, styled bool) string {
	if r == nil {
		return ""
	}

	var b strings.Builder

	title := "Provisioning report"
	if styled {
		title = headStyle.Render(title)
	}
	b.WriteString("\n" + title + "\n")
	b.WriteString(strings.Repeat("─", 40) + "\n")

	for _, res := range r.Results {
		b.WriteString(renderRow(res, styled) + "\n")
	}

	b.WriteString(strings.Repeat("─", 40) + "\n")
	b.WriteString(fmt.Sprintf("%d succeeded, %d skipped, %d failed in %v\n",
		r.Count(StatusSucceeded), r.Count(StatusSkipped), r.Count(StatusFailed),
		r.Elapsed().Round(time.Millisecond)))
	return b.String()
}

func renderRow(res Result, styled bool) string {
	mark := markOK
	style := okStyle
	switch res.Status {
	case StatusSkipped:
		mark, style = markSkip, skipStyle
	case StatusFailed:
		mark, style = markFail, failStyle
	}
	if styled {
		mark = style.Render(mark)
	}

	row := fmt.Sprintf("%s %-22s %s", mark, res.Step, res.Action)
	if res.Detail != "" {
		row += ": " + res.Detail
	}
	return row
}
