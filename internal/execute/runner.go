// Package execute runs external collaborator commands (dnf, systemctl,
// firewall-cmd, certbot, ...) and reports their outcome without ever
// aborting the calling process. Callers inspect the returned Result and
// decide what a non-zero exit means for their step.
package execute

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result captures the outcome of a single external command invocation.
type Result struct {
	// Cmd is the full command line that was executed.
	Cmd string

	// ExitCode is the process exit status. -1 when the process never ran
	// or was killed before exiting normally.
	ExitCode int

	// Output is the combined stdout and stderr, trimmed.
	Output string

	// Err is non-nil when the command could not run or exited non-zero.
	Err error
}

// Ok reports whether the command ran and exited zero.
func (r Result) Ok() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Detail returns a short human-readable description of the outcome,
// suitable for step result reporting.
func (r Result) Detail() string {
	if r.Ok() {
		return r.Cmd
	}
	if r.Output != "" {
		return fmt.Sprintf("%s: %v: %s", r.Cmd, r.Err, r.Output)
	}
	return fmt.Sprintf("%s: %v", r.Cmd, r.Err)
}

// Runner executes external commands. The production implementation is
// ExecRunner; tests use Fake.
type Runner interface {
	// Run executes name with args and captures combined output.
	Run(ctx context.Context, name string, args ...string) Result

	// RunInput is Run with the given string supplied on stdin.
	RunInput(ctx context.Context, stdin string, name string, args ...string) Result

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands via os/exec with a per-command timeout so a
// hung collaborator surfaces as a failed result instead of blocking the
// whole run.
type ExecRunner struct {
	// Timeout bounds each individual command. Zero means no bound.
	Timeout time.Duration
}

// NewExecRunner returns a Runner with the given per-command timeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	return r.run(ctx, "", name, args...)
}

// RunInput implements Runner.
func (r *ExecRunner) RunInput(ctx context.Context, stdin string, name string, args ...string) Result {
	return r.run(ctx, stdin, name, args...)
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) run(ctx context.Context, stdin string, name string, args ...string) Result {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	out, err := cmd.CombinedOutput()
	res := Result{
		Cmd:      CommandLine(name, args...),
		ExitCode: exitCode(err),
		Output:   strings.TrimSpace(string(out)),
		Err:      err,
	}

	if err != nil && ctx.Err() == context.DeadlineExceeded {
		res.Err = fmt.Errorf("timed out after %v", r.Timeout)
	}
	return res
}

// CommandLine joins a command and its arguments for display and for
// keying fake responses.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
