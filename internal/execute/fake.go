package execute

import (
	"context"
	"fmt"
)

// Fake is a scripted Runner for tests. Responses are keyed by the full
// command line; unscripted commands get the Default result. Every
// invocation is recorded in Calls in execution order.
type Fake struct {
	Responses map[string]Result
	Default   Result
	Calls     []string
	Stdin     map[string]string // command line -> stdin it was given
}

// NewFake returns a Fake whose unscripted commands succeed with empty
// output.
func NewFake() *Fake {
	return &Fake{
		Responses: make(map[string]Result),
		Stdin:     make(map[string]string),
	}
}

// Succeed scripts a successful invocation with the given output.
func (f *Fake) Succeed(cmdline, output string) {
	f.Responses[cmdline] = Result{Cmd: cmdline, ExitCode: 0, Output: output}
}

// Fail scripts a failing invocation with the given exit code and output.
func (f *Fake) Fail(cmdline string, code int, output string) {
	f.Responses[cmdline] = Result{
		Cmd:      cmdline,
		ExitCode: code,
		Output:   output,
		Err:      fmt.Errorf("exit status %d", code),
	}
}

// Run implements Runner.
func (f *Fake) Run(_ context.Context, name string, args ...string) Result {
	return f.dispatch("", name, args...)
}

// RunInput implements Runner.
func (f *Fake) RunInput(_ context.Context, stdin string, name string, args ...string) Result {
	return f.dispatch(stdin, name, args...)
}

// LookPath implements Runner. Every binary resolves.
func (f *Fake) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

// Ran reports whether the exact command line was invoked.
func (f *Fake) Ran(cmdline string) bool {
	for _, c := range f.Calls {
		if c == cmdline {
			return true
		}
	}
	return false
}

func (f *Fake) dispatch(stdin string, name string, args ...string) Result {
	cmdline := CommandLine(name, args...)
	f.Calls = append(f.Calls, cmdline)
	if stdin != "" {
		f.Stdin[cmdline] = stdin
	}
	if res, ok := f.Responses[cmdline]; ok {
		return res
	}
	res := f.Default
	res.Cmd = cmdline
	return res
}
