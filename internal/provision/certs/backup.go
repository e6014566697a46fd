package certs

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/platform/s3"
	"github.com/hostup/hostup/internal/provision"
)

const archiveName = "letsencrypt.tar.gz"

// Uploader is the off-site backup target.
type Uploader interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte) error
}

func newS3Uploader(s config.S3Settings) (Uploader, error) {
	return s3.NewClient(s.Endpoint, s.Region, s.AccessKey, s.SecretKey)
}

// backupStore archives the certificate store into the operator backup
// directory, hands ownership to the login user, and uploads the archive
// off-site when configured.
func backupStore(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config

	data, err := archiveTree(cfg.CertStorePath())
	if err != nil {
		return []provision.Result{provision.Failed(stepName, "backup store", err.Error())}
	}

	owner, err := loginUser()
	if err != nil {
		return []provision.Result{provision.Failed(stepName, "backup store", err.Error())}
	}

	dir := cfg.Backup.Dir
	if dir == "" {
		dir = filepath.Join(owner.HomeDir, "letsencrypt-backup")
	}
	dest := filepath.Join(dir, archiveName)

	if err := writeArchive(dest, data, owner); err != nil {
		return []provision.Result{provision.Failed(stepName, "backup store", err.Error())}
	}
	results := []provision.Result{provision.Succeeded(stepName, "backup store", dest)}

	return append(results, uploadOffsite(ctx, cfg, data))
}

// uploadOffsite pushes the archive to the configured S3 bucket, or skips
// when no target is set in the environment.
func uploadOffsite(ctx *provision.Context, cfg *config.Config, data []byte) provision.Result {
	settings, err := offsiteSettings()
	if err != nil {
		return provision.Failed(stepName, "off-site backup", err.Error())
	}
	if !settings.Enabled() {
		return provision.Skipped(stepName, "off-site backup", "not configured")
	}

	up, err := offsiteUploader(settings)
	if err != nil {
		return provision.Failed(stepName, "off-site backup", err.Error())
	}
	if err := up.EnsureBucket(ctx, settings.Bucket); err != nil {
		return provision.Failed(stepName, "off-site backup", err.Error())
	}

	key := cfg.Host.Domain + "/" + archiveName
	if err := up.PutObject(ctx, settings.Bucket, key, data); err != nil {
		return provision.Failed(stepName, "off-site backup", err.Error())
	}
	return provision.Succeeded(stepName, "off-site backup", settings.Bucket+"/"+key)
}

// loginUser resolves the session's logged-in user: the user behind sudo
// when present, the process owner otherwise.
func loginUser() (*user.User, error) {
	if name := os.Getenv("SUDO_USER"); name != "" {
		u, err := user.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve login user %s: %w", name, err)
		}
		return u, nil
	}
	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	return u, nil
}

// writeArchive lands the archive and hands it to the login user so the
// backup is readable without elevation.
func writeArchive(dest string, data []byte, owner *user.User) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	uid, err := strconv.Atoi(owner.Uid)
	if err != nil {
		return fmt.Errorf("failed to parse uid for %s: %w", owner.Username, err)
	}
	gid, err := strconv.Atoi(owner.Gid)
	if err != nil {
		return fmt.Errorf("failed to parse gid for %s: %w", owner.Username, err)
	}
	if err := os.Chown(dest, uid, gid); err != nil {
		return fmt.Errorf("failed to chown archive: %w", err)
	}
	return nil
}

// archiveTree packs a directory tree into a tar.gz, preserving the
// store's symlinks (live/ entries are links into archive/).
func archiveTree(root string) ([]byte, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("certificate store %s is not a directory", root)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if fi.Mode()&fs.ModeSymlink != 0 {
			if link, err = os.Readlink(path); err != nil {
				return err
			}
		}

		hdr, err := tar.FileInfoHeader(fi, link)
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		if !fi.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive certificate store: %w", err)
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
