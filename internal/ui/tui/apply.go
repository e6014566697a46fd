package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostup/hostup/internal/provision"
)

// ErrInterrupted is returned when the operator quits the live view
// before the plan has run to completion.
var ErrInterrupted = errors.New("apply interrupted before the plan completed")

// forwarder adapts provisioning events into Bubble Tea messages.
type forwarder struct {
	p *tea.Program
}

// Event implements provision.Observer.
func (f forwarder) Event(e provision.Event) {
	if e.Type == provision.EventStepStarted {
		f.p.Send(StepStartedMsg{Step: e.Step})
	}
}

// RunApplyTUI wraps a provisioning run with a Bubble Tea TUI. runFn
// executes the plan with the given observer and result callback; it runs
// in a background goroutine while the TUI owns the terminal.
func RunApplyTUI(
	domain string,
	stepNames []string,
	runFn func(obs provision.Observer, notify func(provision.Result)) *provision.Report,
) (*provision.Report, error) {
	m := NewApplyModel(domain, stepNames)

	p := tea.NewProgram(m, tea.WithAltScreen())

	go func() {
		report := runFn(forwarder{p: p}, func(r provision.Result) {
			p.Send(ResultMsg{Result: r})
		})
		p.Send(DoneMsg{Report: report})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	return finish(finalModel.(Model))
}

// finish translates the final model state into the run outcome. A quit
// before DoneMsg arrived yields the results received so far plus
// ErrInterrupted, never a nil report with a nil error.
func finish(m Model) (*provision.Report, error) {
	if m.Err != nil {
		return m.Report, m.Err
	}
	if !m.Done {
		return m.partialReport(), ErrInterrupted
	}
	return m.Report, nil
}
