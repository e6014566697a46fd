// Package tui provides a Bubble Tea-based terminal UI for host
// provisioning runs.
package tui

import "github.com/hostup/hostup/internal/provision"

// StepStartedMsg reports that a plan step has begun executing.
type StepStartedMsg struct {
	Step string
}

// ResultMsg carries one action result as it is produced.
type ResultMsg struct {
	Result provision.Result
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// ErrMsg carries a fatal error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the run is complete.
type DoneMsg struct {
	Report *provision.Report
}
