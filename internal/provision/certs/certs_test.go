package certs

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/provision"
)

func newContext(t *testing.T, fake *execute.Fake) *provision.Context {
	t.Helper()
	t.Setenv("SUDO_USER", "")

	cfg, err := config.New("203.0.113.5", "example.org")
	require.NoError(t, err)
	cfg.Root = t.TempDir()
	cfg.Backup.Dir = t.TempDir()

	// Seed a store the way the CA client lays it out: archive/ holds the
	// material, live/ symlinks into it.
	store := cfg.CertStorePath()
	require.NoError(t, os.MkdirAll(filepath.Join(store, "archive", "example.org"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(store, "archive", "example.org", "fullchain1.pem"), []byte("PEM DATA"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(store, "live", "example.org"), 0o755))
	require.NoError(t, os.Symlink(
		"../../archive/example.org/fullchain1.pem",
		filepath.Join(store, "live", "example.org", "fullchain.pem")))

	restoreSettings := offsiteSettings
	offsiteSettings = func() (config.S3Settings, error) { return config.S3Settings{}, nil }
	t.Cleanup(func() { offsiteSettings = restoreSettings })

	return provision.NewContext(context.Background(), cfg, fake)
}

func TestProvisioner_RequestsEachIntegration(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)

	results := Step().Run(ctx)

	assert.True(t, fake.Ran("certbot --nginx -n --agree-tos -m admin@example.org -d example.org"))
	assert.True(t, fake.Ran("certbot --apache -n --agree-tos -m admin@example.org -d example.org"))

	// nginx + apache + backup + off-site
	require.Len(t, results, 4)
	assert.Equal(t, provision.StatusSucceeded, results[0].Status)
	assert.Equal(t, provision.StatusSucceeded, results[1].Status)
}

func TestProvisioner_UsesConfiguredEmail(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)
	ctx.Config.Certificates.Email = "ops@corp.example"

	Step().Run(ctx)

	assert.True(t, fake.Ran("certbot --nginx -n --agree-tos -m ops@corp.example -d example.org"))
}

func TestProvisioner_IsolatesIntegrationFailures(t *testing.T) {
	fake := execute.NewFake()
	fake.Fail("certbot --nginx -n --agree-tos -m admin@example.org -d example.org", 1,
		"Could not automatically find a matching server block")
	ctx := newContext(t, fake)

	results := Step().Run(ctx)

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, provision.StatusFailed, results[0].Status)
	assert.Equal(t, "nginx", results[0].Action)
	assert.Equal(t, provision.StatusSucceeded, results[1].Status,
		"apache must still be attempted after the nginx request fails")
	assert.True(t, fake.Ran("certbot --apache -n --agree-tos -m admin@example.org -d example.org"))
}

func TestProvisioner_BackupArchivesTheStore(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)

	results := Step().Run(ctx)

	var backup *provision.Result
	for i := range results {
		if results[i].Action == "backup store" {
			backup = &results[i]
		}
	}
	require.NotNil(t, backup)
	assert.Equal(t, provision.StatusSucceeded, backup.Status)

	dest := filepath.Join(ctx.Config.Backup.Dir, "letsencrypt.tar.gz")
	assert.Equal(t, dest, backup.Detail)

	names := archiveEntries(t, dest)
	assert.Contains(t, names, "archive/example.org/fullchain1.pem")
	assert.Contains(t, names, "live/example.org/fullchain.pem")
}

func TestProvisioner_BackupFailsWhenStoreMissing(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)
	require.NoError(t, os.RemoveAll(ctx.Config.CertStorePath()))

	results := Step().Run(ctx)

	last := results[len(results)-1]
	assert.Equal(t, provision.StatusFailed, last.Status)
	assert.Equal(t, "backup store", last.Action)
}

func TestProvisioner_OffsiteSkippedWhenUnconfigured(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)

	results := Step().Run(ctx)

	last := results[len(results)-1]
	assert.Equal(t, "off-site backup", last.Action)
	assert.Equal(t, provision.StatusSkipped, last.Status)
}

type fakeUploader struct {
	buckets []string
	keys    map[string][]byte
}

func (f *fakeUploader) EnsureBucket(_ context.Context, bucket string) error {
	f.buckets = append(f.buckets, bucket)
	return nil
}

func (f *fakeUploader) PutObject(_ context.Context, bucket, key string, data []byte) error {
	if f.keys == nil {
		f.keys = make(map[string][]byte)
	}
	f.keys[bucket+"/"+key] = data
	return nil
}

func TestProvisioner_OffsiteUploadsArchive(t *testing.T) {
	fake := execute.NewFake()
	ctx := newContext(t, fake)

	offsiteSettings = func() (config.S3Settings, error) {
		return config.S3Settings{Endpoint: "https://s3.example.net", Region: "us-east-1", Bucket: "backups"}, nil
	}
	up := &fakeUploader{}
	restore := offsiteUploader
	offsiteUploader = func(config.S3Settings) (Uploader, error) { return up, nil }
	t.Cleanup(func() { offsiteUploader = restore })

	results := Step().Run(ctx)

	last := results[len(results)-1]
	assert.Equal(t, provision.StatusSucceeded, last.Status)
	assert.Equal(t, []string{"backups"}, up.buckets)
	require.Contains(t, up.keys, "backups/example.org/letsencrypt.tar.gz")
	assert.NotEmpty(t, up.keys["backups/example.org/letsencrypt.tar.gz"])
}

func TestRenewal_RegistersCronJobOnce(t *testing.T) {
	fake := execute.NewFake()
	fake.Fail("crontab -l", 1, "no crontab for root")
	ctx := newContext(t, fake)

	results := RenewalStep().Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, provision.StatusSucceeded, results[0].Status)
	assert.Equal(t, renewalLine+"\n", fake.Stdin["crontab -"])
}

func TestRenewal_SkipsWhenLineAlreadyPresent(t *testing.T) {
	fake := execute.NewFake()
	fake.Succeed("crontab -l", "# ops jobs\n"+renewalLine+"\n")
	ctx := newContext(t, fake)

	results := RenewalStep().Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, provision.StatusSkipped, results[0].Status)
	assert.False(t, fake.Ran("crontab -"), "an already-present line must not be re-appended")
}

func TestRenewal_PreservesExistingEntries(t *testing.T) {
	fake := execute.NewFake()
	fake.Succeed("crontab -l", "0 1 * * * /usr/local/bin/nightly-report\n")
	ctx := newContext(t, fake)

	results := RenewalStep().Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, provision.StatusSucceeded, results[0].Status)
	assert.Equal(t,
		"0 1 * * * /usr/local/bin/nightly-report\n"+renewalLine+"\n",
		fake.Stdin["crontab -"])
}

func archiveEntries(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	tr := tar.NewReader(gz)

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	return names
}
