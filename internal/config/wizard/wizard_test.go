package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostup/hostup/internal/config"
)

func TestValidatePublicIP(t *testing.T) {
	assert.ErrorIs(t, validatePublicIP(""), errPublicIPRequired)
	assert.ErrorIs(t, validatePublicIP("203.0.113"), errPublicIPInvalid)
	assert.NoError(t, validatePublicIP("203.0.113.5"))
	assert.NoError(t, validatePublicIP("2001:db8::1"))
}

func TestValidateDomain(t *testing.T) {
	assert.ErrorIs(t, validateDomain(""), errDomainRequired)
	assert.ErrorIs(t, validateDomain("not a domain"), errDomainInvalid)
	assert.ErrorIs(t, validateDomain("localhost"), errDomainInvalid)
	assert.NoError(t, validateDomain("example.org"))
	assert.NoError(t, validateDomain("vpn.edge.example.net"))
}

func TestBuildConfig(t *testing.T) {
	result := &Result{
		PublicIP:  "203.0.113.5",
		Domain:    "example.org",
		Policy:    config.PolicyForce,
		BackupDir: "/var/backups/certs",
	}

	cfg, err := BuildConfig(result)
	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Host.Domain)
	assert.Equal(t, config.PolicyForce, cfg.Webserver.Policy)
	assert.Equal(t, "/var/backups/certs", cfg.Backup.Dir)
	assert.Equal(t, 8080, cfg.Webserver.BackendPort)
}

func TestBuildConfig_InvalidAnswers(t *testing.T) {
	_, err := BuildConfig(&Result{PublicIP: "bad", Domain: "example.org", Policy: config.PolicyAuto})
	require.Error(t, err)
}

func TestWriteConfig_RoundTrips(t *testing.T) {
	cfg, err := config.New("203.0.113.5", "example.org")
	require.NoError(t, err)
	cfg.Backup.Dir = "/var/backups/certs"

	path := filepath.Join(t.TempDir(), "hostup.yaml")
	require.NoError(t, WriteConfig(cfg, path))

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Host, loaded.Host)
	assert.Equal(t, cfg.Webserver.Policy, loaded.Webserver.Policy)
	assert.Equal(t, "/var/backups/certs", loaded.Backup.Dir)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hostup.yaml")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("host: {}\n"), 0o600))
	assert.True(t, FileExists(path))
}
