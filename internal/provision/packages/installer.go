// Package packages ensures the declared package set is installed.
// Installation is monotonic: packages are added, never removed.
package packages

import (
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/provision"
)

const stepName = "packages"

// Query and install commands for the rpm/dnf platform. The single swap
// point for other distributions.
var (
	queryCmd   = []string{"rpm", "-q"}
	installCmd = []string{"dnf", "install", "-y"}
)

type installer struct{}

// Step returns the idempotent installer step. It runs first in every
// plan.
func Step() provision.Step { return installer{} }

func (installer) Name() string { return stepName }

// Run queries each declared package and installs only what is missing.
// A single package's install failure is recorded and the rest of the
// set is still processed.
func (installer) Run(ctx *provision.Context) []provision.Result {
	var results []provision.Result

	for _, pkg := range dedupe(ctx.Config.Packages) {
		q := ctx.Runner.Run(ctx, queryCmd[0], append(queryCmd[1:], pkg)...)
		if q.Ok() {
			results = append(results, provision.Skipped(stepName, pkg, "already installed"))
			continue
		}

		in := execute.RunRetry(ctx, ctx.Runner, 2, installCmd[0], append(installCmd[1:], pkg)...)
		if !in.Ok() {
			results = append(results, provision.Failed(stepName, pkg, in.Detail()))
			continue
		}
		results = append(results, provision.Succeeded(stepName, pkg, "installed"))
	}

	return results
}

// dedupe collapses duplicate names, preserving first-seen order, so a
// descriptor listing a package twice yields exactly one result for it.
func dedupe(pkgs []string) []string {
	seen := make(map[string]bool, len(pkgs))
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
