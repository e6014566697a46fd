// Package provision contains the step model and the fail-open
// orchestrator that applies a provisioning plan to the host.
//
// The domain steps live in focused subpackages:
//   - packages/ handles idempotent package installation
//   - services/ holds the per-service configurators (proxy, web, VPN, firewall, ...)
//   - certs/ covers certificate provisioning, backup and renewal scheduling
//
// This root package holds the shared result types, the plan runner and
// its observability.
package provision

import "time"

// Status classifies the outcome of a provisioning action.
type Status string

const (
	// StatusSucceeded means the action completed.
	StatusSucceeded Status = "succeeded"
	// StatusSkipped means the desired state was already present or a
	// policy decided against acting.
	StatusSkipped Status = "skipped"
	// StatusFailed means the action did not complete. Failures are
	// isolated: the run continues.
	StatusFailed Status = "failed"
)

// Result is the immutable outcome of one provisioning action. A step
// emits one or more of these; the orchestrator aggregates them in
// execution order for the final report.
type Result struct {
	Step     string
	Action   string
	Status   Status
	Detail   string
	Duration time.Duration
}

// Succeeded builds a success result.
func Succeeded(step, action, detail string) Result {
	return Result{Step: step, Action: action, Status: StatusSucceeded, Detail: detail}
}

// Skipped builds a skip result.
func Skipped(step, action, detail string) Result {
	return Result{Step: step, Action: action, Status: StatusSkipped, Detail: detail}
}

// Failed builds a failure result.
func Failed(step, action, detail string) Result {
	return Result{Step: step, Action: action, Status: StatusFailed, Detail: detail}
}

// Step is one unit of the provisioning plan.
type Step interface {
	// Name returns the step's name as it appears in the report.
	Name() string

	// Run applies the step against the host and reports every action
	// it took. Run never panics the plan: failures come back as
	// Failed results.
	Run(ctx *Context) []Result
}
