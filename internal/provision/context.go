package provision

import (
	"context"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/execute"
)

// Context wraps everything a step needs: the descriptor, the command
// runner and the observer. The descriptor is read-only input to every
// step.
type Context struct {
	context.Context
	Config   *config.Config
	Runner   execute.Runner
	Observer Observer
}

// NewContext creates a provisioning context with the default
// log-backed observer.
func NewContext(ctx context.Context, cfg *config.Config, runner execute.Runner) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Runner:   runner,
		Observer: NewLogObserver(),
	}
}
