// Package services holds the per-service configurators: each renders its
// config file(s) atomically and brings the corresponding external
// service up via the service manager.
package services

import (
	"os"

	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

// enableNow enables and starts a unit. An already-running unit exits
// zero and counts as success.
func enableNow(ctx *provision.Context, step, unit string) provision.Result {
	res := ctx.Runner.Run(ctx, "systemctl", "enable", "--now", unit)
	if !res.Ok() {
		return provision.Failed(step, "enable "+unit, res.Detail())
	}
	return provision.Succeeded(step, "enable "+unit, "")
}

// restart restarts a unit so a freshly written config takes effect.
func restart(ctx *provision.Context, step, unit string) provision.Result {
	res := ctx.Runner.Run(ctx, "systemctl", "restart", unit)
	if !res.Ok() {
		return provision.Failed(step, "restart "+unit, res.Detail())
	}
	return provision.Succeeded(step, "restart "+unit, "")
}

// reload asks a unit to re-read its config without a restart.
func reload(ctx *provision.Context, step, unit string) provision.Result {
	res := ctx.Runner.Run(ctx, "systemctl", "reload", unit)
	if !res.Ok() {
		return provision.Failed(step, "reload "+unit, res.Detail())
	}
	return provision.Succeeded(step, "reload "+unit, "")
}

// writeConfig renders a template and writes it atomically, reporting
// both failure modes (render and write) as a Failed result.
func writeConfig(step, templateID string, params any, path string, mode os.FileMode) provision.Result {
	content, err := render.Render(templateID, params)
	if err != nil {
		return provision.Failed(step, "render "+path, err.Error())
	}
	if err := render.WriteAtomic(path, []byte(content), mode); err != nil {
		return provision.Failed(step, "write "+path, err.Error())
	}
	return provision.Succeeded(step, "write "+path, "")
}
