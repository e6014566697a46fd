// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/provision/planner"
	"github.com/hostup/hostup/internal/ui/tui"
	"github.com/hostup/hostup/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// geteuid reports the effective user id.
	geteuid = os.Geteuid

	// loadConfigFile loads the descriptor from a file.
	loadConfigFile = config.LoadFile

	// findConfigFile locates the default descriptor file.
	findConfigFile = config.FindConfigFile

	// newRunner creates the external command runner.
	newRunner = func(timeout time.Duration) execute.Runner {
		return execute.NewExecRunner(timeout)
	}

	// isTTY reports whether stdout is an interactive terminal.
	isTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd())
	}

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// runApplyTUI runs the plan under the live progress view.
	runApplyTUI = tui.RunApplyTUI

	// writeTextfile exports run metrics for the textfile collector.
	writeTextfile = provision.WriteTextfile
)

// Apply executes the full provisioning plan against the local host.
//
// The run is fail-open: a failing step is recorded and the remaining
// steps are still attempted, so the exit status is zero whenever the
// plan ran to completion. An error is returned only for precondition
// failures (not root, missing or invalid descriptor, missing host
// tools) and when the operator quits the live view mid-run.
func Apply(ctx context.Context, configPath string, plain bool) error {
	if err := requireRoot(); err != nil {
		return err
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if results := checkDefaultPrereqs(); results.HasErrors() {
		return results.Error()
	}

	runner := newRunner(cfg.Timeout())
	plan := planner.Build()
	styled := !plain && isTTY()

	var report *provision.Report
	if styled {
		// A mid-run quit cancels the context so in-flight commands are
		// killed instead of outliving the view.
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		report, err = runApplyTUI(cfg.Host.Domain, stepNames(plan),
			func(obs provision.Observer, notify func(provision.Result)) *provision.Report {
				pctx := provision.NewContext(runCtx, cfg, runner)
				pctx.Observer = obs
				return provision.Run(pctx, plan, notify)
			})
		if err != nil {
			cancel()
			fmt.Print(provision.RenderReport(report, styled))
			return err
		}
	} else {
		pctx := provision.NewContext(ctx, cfg, runner)
		report = provision.Run(pctx, plan, nil)
	}

	fmt.Print(provision.RenderReport(report, styled))

	if cfg.Metrics.Textfile != "" {
		if err := writeTextfile(cfg.Metrics.Textfile, report); err != nil {
			log.Printf("failed to write metrics textfile: %v", err)
		}
	}

	return nil
}

// requireRoot enforces the elevated-privilege precondition before any
// step touches the host.
func requireRoot() error {
	if geteuid() != 0 {
		return errors.New("hostup must be run as root (try sudo)")
	}
	return nil
}

// loadConfig loads and validates the descriptor. If configPath is
// empty, it looks for hostup.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'hostup init' to create one", err)
		}
		configPath = path
	}
	return loadConfigFile(configPath)
}

func stepNames(plan []provision.Step) []string {
	names := make([]string, len(plan))
	for i, step := range plan {
		names[i] = step.Name()
	}
	return names
}
