// Package render turns typed parameters into service configuration files.
// Rendering is pure and byte-deterministic; writing is atomic so a crash
// leaves the target with either the old or the new complete content.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Template identifiers, one per generated file.
const (
	TemplateNginxSite  = "nginx_site.conf.tmpl"
	TemplateHTTPDVhost = "httpd_vhost.conf.tmpl"
	TemplateOpenVPN    = "openvpn_server.conf.tmpl"
	TemplateSSHBanner  = "ssh_banner.tmpl"
	TemplateJail       = "fail2ban_jail.tmpl"
)

// NginxSiteParams fills the reverse-proxy site config.
type NginxSiteParams struct {
	Domain      string
	BackendPort int
}

// HTTPDVhostParams fills the web-server virtual host config.
type HTTPDVhostParams struct {
	Domain string
}

// OpenVPNParams fills the VPN server config.
type OpenVPNParams struct {
	Subnet     string
	Netmask    string
	DNSServers []string
}

// SSHBannerParams fills the remote-login banner.
type SSHBannerParams struct {
	Domain string
}

// JailParams fills the intrusion-prevention jail config.
type JailParams struct {
	BanTime    string
	FindWindow int
	MaxRetries int
}

// Render executes the named template with params. It has no side effects
// and produces byte-identical output for identical inputs.
func Render(id string, params any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, id, params); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", id, err)
	}
	return buf.String(), nil
}

// WriteAtomic replaces the file at path with content. The content is
// written to a temp file in the target directory and renamed into place,
// so readers never observe a partial write. Parent directories are
// created as needed.
func WriteAtomic(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
