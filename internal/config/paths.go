package config

import "path/filepath"

// Generated-file locations, all derived from Root so tests can point the
// whole tree at a scratch directory.

// NginxSitePath is the reverse-proxy site config, scoped to the domain.
func (c *Config) NginxSitePath() string {
	return c.path("etc", "nginx", "conf.d", c.Host.Domain+".conf")
}

// HTTPDVhostPath is the web-server virtual-host config.
func (c *Config) HTTPDVhostPath() string {
	return c.path("etc", "httpd", "conf.d", c.Host.Domain+".conf")
}

// OpenVPNServerPath is the VPN server config.
func (c *Config) OpenVPNServerPath() string {
	return c.path("etc", "openvpn", "server", "server.conf")
}

// BannerPath is the remote-login banner.
func (c *Config) BannerPath() string {
	return c.path("etc", "issue.net")
}

// JailPath is the intrusion-prevention jail config.
func (c *Config) JailPath() string {
	return c.path("etc", "fail2ban", "jail.local")
}

// CertStorePath is the CA client's certificate store.
func (c *Config) CertStorePath() string {
	return c.path("etc", "letsencrypt")
}

func (c *Config) path(elem ...string) string {
	return filepath.Join(append([]string{c.Root}, elem...)...)
}
