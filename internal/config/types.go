// Package config defines the desired-host-state descriptor and its
// loading, defaulting and validation rules.
package config

import "time"

// Config is the full provisioning descriptor. Host is required input;
// every other block has working defaults.
type Config struct {
	Host                Host                `mapstructure:"host"`
	Packages            []string            `mapstructure:"packages"`
	Webserver           Webserver           `mapstructure:"webserver"`
	VPN                 VPN                 `mapstructure:"vpn"`
	Firewall            Firewall            `mapstructure:"firewall"`
	Certificates        Certificates        `mapstructure:"certificates"`
	IntrusionPrevention IntrusionPrevention `mapstructure:"intrusion_prevention"`
	Backup              Backup              `mapstructure:"backup"`
	Metrics             Metrics             `mapstructure:"metrics"`

	// Root prefixes every generated file path. Defaults to "/"; tests
	// point it at a scratch directory.
	Root string `mapstructure:"root"`

	// CommandTimeout bounds each external command invocation, parsed
	// with time.ParseDuration. Defaults to "5m".
	CommandTimeout string `mapstructure:"command_timeout"`
}

// Host identifies the machine being provisioned. Immutable input,
// validated before any step runs.
type Host struct {
	PublicIP string `mapstructure:"public_ip"`
	Domain   string `mapstructure:"domain"`
}

// Webserver policies for the reverse-proxy and virtual-host steps.
const (
	// PolicyAuto skips config writes when a web server is already
	// active, so an operator's existing setup is never clobbered.
	PolicyAuto = "auto"
	// PolicyForce always writes both configs (dual-stack bring-up).
	PolicyForce = "force"
)

// Webserver controls the reverse-proxy and virtual-host steps.
type Webserver struct {
	Policy      string `mapstructure:"policy"`
	BackendPort int    `mapstructure:"backend_port"`
}

// VPN parameterizes the OpenVPN server config.
type VPN struct {
	Subnet     string   `mapstructure:"subnet"`
	Netmask    string   `mapstructure:"netmask"`
	DNSServers []string `mapstructure:"dns_servers"`
}

// Firewall declares the allow-list. Rules are append-only: the tool adds
// these and never removes anything a prior run (or the operator) added.
type Firewall struct {
	Services []string `mapstructure:"services"`
	Ports    []string `mapstructure:"ports"`
}

// Certificates controls the CA-client integrations.
type Certificates struct {
	// Email is the administrative contact. Empty means admin@<domain>.
	Email string `mapstructure:"email"`
	// Integrations name the server plugins to request certificates
	// through: "nginx" and/or "apache".
	Integrations []string `mapstructure:"integrations"`
}

// IntrusionPrevention parameterizes the fail2ban jail for the
// remote-login service.
type IntrusionPrevention struct {
	// BanTime in fail2ban syntax; "-1" means a permanent ban.
	BanTime    string `mapstructure:"ban_time"`
	FindWindow int    `mapstructure:"find_window"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// Backup controls where the certificate store archive lands. Empty Dir
// means the invoking login user's home directory.
type Backup struct {
	Dir string `mapstructure:"dir"`
}

// Metrics controls the optional Prometheus textfile export. Empty
// Textfile disables it.
type Metrics struct {
	Textfile string `mapstructure:"textfile"`
}

// ContactEmail returns the administrative contact for certificate
// requests, derived from the domain unless configured.
func (c *Config) ContactEmail() string {
	if c.Certificates.Email != "" {
		return c.Certificates.Email
	}
	return "admin@" + c.Host.Domain
}

// Timeout returns the parsed per-command timeout. Validate guarantees
// CommandTimeout parses.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return defaultCommandTimeout
	}
	return d
}
