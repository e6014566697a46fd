package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/provision"
)

func newContext(t *testing.T, fake *execute.Fake, pkgs ...string) *provision.Context {
	t.Helper()
	cfg, err := config.New("203.0.113.5", "example.org")
	require.NoError(t, err)
	if len(pkgs) > 0 {
		cfg.Packages = pkgs
	}
	return provision.NewContext(context.Background(), cfg, fake)
}

func TestInstaller_InstallsMissingPackages(t *testing.T) {
	fake := execute.NewFake()
	fake.Fail("rpm -q nginx", 1, "package nginx is not installed")
	fake.Fail("rpm -q openvpn", 1, "package openvpn is not installed")

	results := Step().Run(newContext(t, fake, "nginx", "openvpn"))

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, provision.StatusSucceeded, r.Status)
		assert.Equal(t, "installed", r.Detail)
	}
	assert.True(t, fake.Ran("dnf install -y nginx"))
	assert.True(t, fake.Ran("dnf install -y openvpn"))
}

func TestInstaller_SkipsPresentPackages(t *testing.T) {
	fake := execute.NewFake()
	fake.Succeed("rpm -q nginx", "nginx-1.24.0-1.el9.x86_64")
	fake.Fail("rpm -q fail2ban", 1, "package fail2ban is not installed")

	results := Step().Run(newContext(t, fake, "nginx", "fail2ban"))

	require.Len(t, results, 2)
	assert.Equal(t, provision.StatusSkipped, results[0].Status)
	assert.Equal(t, "already installed", results[0].Detail)
	assert.Equal(t, provision.StatusSucceeded, results[1].Status)
	assert.False(t, fake.Ran("dnf install -y nginx"))
}

func TestInstaller_SecondRunIsAllSkipped(t *testing.T) {
	// Everything present: re-running must have zero net effect.
	fake := execute.NewFake()
	ctx := newContext(t, fake)

	results := Step().Run(ctx)

	require.Len(t, results, len(config.DefaultPackages))
	for _, r := range results {
		assert.Equal(t, provision.StatusSkipped, r.Status)
	}
	for _, call := range fake.Calls {
		assert.NotContains(t, call, "dnf install")
	}
}

func TestInstaller_IsolatesInstallFailures(t *testing.T) {
	fake := execute.NewFake()
	fake.Fail("rpm -q geoipupdate", 1, "not installed")
	fake.Fail("rpm -q fail2ban", 1, "not installed")
	fake.Fail("dnf install -y geoipupdate", 1, "no match for argument")

	results := Step().Run(newContext(t, fake, "geoipupdate", "fail2ban"))

	require.Len(t, results, 2)
	assert.Equal(t, provision.StatusFailed, results[0].Status)
	assert.Contains(t, results[0].Detail, "no match for argument")
	assert.Equal(t, provision.StatusSucceeded, results[1].Status,
		"one package's failure must not halt the rest of the set")
}

func TestInstaller_CollapsesDuplicates(t *testing.T) {
	fake := execute.NewFake()
	fake.Succeed("rpm -q nginx", "nginx-1.24.0")

	results := Step().Run(newContext(t, fake, "nginx", "nginx"))

	require.Len(t, results, 1)
	assert.Equal(t, provision.StatusSkipped, results[0].Status)
}
