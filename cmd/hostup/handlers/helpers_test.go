package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/util/prerequisites"
)

// captureOutput captures everything written to stdout while f runs.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// saveAndRestoreApplyFactories saves and restores apply factory functions.
func saveAndRestoreApplyFactories(t *testing.T) {
	origGeteuid := geteuid
	origLoad := loadConfigFile
	origFind := findConfigFile
	origNewRunner := newRunner
	origIsTTY := isTTY
	origPrereqs := checkDefaultPrereqs
	origTUI := runApplyTUI
	origTextfile := writeTextfile

	t.Cleanup(func() {
		geteuid = origGeteuid
		loadConfigFile = origLoad
		findConfigFile = origFind
		newRunner = origNewRunner
		isTTY = origIsTTY
		checkDefaultPrereqs = origPrereqs
		runApplyTUI = origTUI
		writeTextfile = origTextfile
	})
}

// testConfig returns a descriptor rooted in a scratch directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New("203.0.113.5", "example.org")
	require.NoError(t, err)
	cfg.Root = t.TempDir()
	cfg.Backup.Dir = t.TempDir()
	return cfg
}

// injectApplyEnvironment wires the factories for a non-interactive run
// against a fake host.
func injectApplyEnvironment(t *testing.T, cfg *config.Config, fake *execute.Fake) {
	t.Helper()
	saveAndRestoreApplyFactories(t)

	geteuid = func() int { return 0 }
	loadConfigFile = func(string) (*config.Config, error) { return cfg, nil }
	findConfigFile = func() (string, error) { return "hostup.yaml", nil }
	newRunner = func(time.Duration) execute.Runner { return fake }
	isTTY = func() bool { return false }
	checkDefaultPrereqs = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
}
