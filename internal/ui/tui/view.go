package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hostup/hostup/internal/provision"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

func currentSpinner(frame int) string {
	return spinnerFrames[frame%len(spinnerFrames)]
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderSteps(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render("hostup: " + m.Domain))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done && m.failed():
		status += failedStyle.Render("Completed with failures")
	case m.Done:
		status += okStyle.Render("Completed")
	default:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + dimStyle.Render("Provisioning...")
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderSteps(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Steps"))
	b.WriteString("\n")

	for _, step := range m.Steps {
		mark := pending
		style := dimStyle
		switch {
		case step.Active:
			mark = "[" + currentSpinner(m.SpinnerFrame) + " ]"
			style = activeStyle
		case stepFailed(step):
			mark = crossMark
			style = failedStyle
		case step.Done && allSkipped(step):
			mark = skipMark
			style = skippedStyle
		case step.Done:
			mark = checkMark
			style = okStyle
		}

		line := fmt.Sprintf("  %s %s", mark, step.Name)
		if summary := stepSummary(step); summary != "" {
			line += dimStyle.Render("  " + summary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime).Round(time.Second))
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s elapsed | q to quit", elapsed)))
	b.WriteString("\n")
}

// calculateProgress returns the settled fraction of the plan.
func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}
	if len(m.Steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range m.Steps {
		if s.Done {
			done++
		}
	}
	return float64(done) / float64(len(m.Steps))
}

func stepFailed(s StepView) bool {
	for _, r := range s.Results {
		if r.Status == provision.StatusFailed {
			return true
		}
	}
	return false
}

func allSkipped(s StepView) bool {
	if len(s.Results) == 0 {
		return false
	}
	for _, r := range s.Results {
		if r.Status != provision.StatusSkipped {
			return false
		}
	}
	return true
}

// stepSummary compacts a step's results into "n ok, n skipped, n failed",
// omitting zero counts.
func stepSummary(s StepView) string {
	if len(s.Results) == 0 {
		return ""
	}
	var ok, skipped, failed int
	for _, r := range s.Results {
		switch r.Status {
		case provision.StatusSucceeded:
			ok++
		case provision.StatusSkipped:
			skipped++
		case provision.StatusFailed:
			failed++
		}
	}

	var parts []string
	if ok > 0 {
		parts = append(parts, fmt.Sprintf("%d ok", ok))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return strings.Join(parts, ", ")
}

func formatDuration(d time.Duration) string {
	if d >= time.Hour {
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		s := int(d.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", int(d.Minutes()))
		}
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), s)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
