package config

import "time"

const defaultCommandTimeout = 5 * time.Minute

// DefaultPackages is the declared package set: the web stack, the CA
// client and its server plugins, the VPN daemon, the firewall, the
// intrusion-prevention tool, the GeoIP updater and cron.
var DefaultPackages = []string{
	"nginx",
	"httpd",
	"certbot",
	"python3-certbot-nginx",
	"python3-certbot-apache",
	"openvpn",
	"firewalld",
	"fail2ban",
	"geoipupdate",
	"cronie",
}

// Default firewall allow-list: named services plus the extra ports the
// provisioned host exposes (backend, VPN, SIP, RDP, VNC).
var (
	DefaultFirewallServices = []string{"ssh", "http", "https", "ntp"}
	DefaultFirewallPorts    = []string{"8080/tcp", "1194/udp", "5060-5061/udp", "3389/tcp", "5900-5901/tcp"}
)

// DefaultCertIntegrations are the CA-client server plugins used.
var DefaultCertIntegrations = []string{"nginx", "apache"}

// applyDefaults fills every unset field with its working default.
func applyDefaults(cfg *Config) {
	if len(cfg.Packages) == 0 {
		cfg.Packages = append([]string(nil), DefaultPackages...)
	}
	if cfg.Webserver.Policy == "" {
		cfg.Webserver.Policy = PolicyAuto
	}
	if cfg.Webserver.BackendPort == 0 {
		cfg.Webserver.BackendPort = 8080
	}
	if cfg.VPN.Subnet == "" {
		cfg.VPN.Subnet = "10.8.0.0"
	}
	if cfg.VPN.Netmask == "" {
		cfg.VPN.Netmask = "255.255.255.0"
	}
	if len(cfg.VPN.DNSServers) == 0 {
		cfg.VPN.DNSServers = []string{"8.8.8.8", "8.8.4.4"}
	}
	if len(cfg.Firewall.Services) == 0 {
		cfg.Firewall.Services = append([]string(nil), DefaultFirewallServices...)
	}
	if len(cfg.Firewall.Ports) == 0 {
		cfg.Firewall.Ports = append([]string(nil), DefaultFirewallPorts...)
	}
	if len(cfg.Certificates.Integrations) == 0 {
		cfg.Certificates.Integrations = append([]string(nil), DefaultCertIntegrations...)
	}
	if cfg.IntrusionPrevention.BanTime == "" {
		cfg.IntrusionPrevention.BanTime = "-1"
	}
	if cfg.IntrusionPrevention.FindWindow == 0 {
		cfg.IntrusionPrevention.FindWindow = 600
	}
	if cfg.IntrusionPrevention.MaxRetries == 0 {
		cfg.IntrusionPrevention.MaxRetries = 3
	}
	if cfg.Root == "" {
		cfg.Root = "/"
	}
	if cfg.CommandTimeout == "" {
		cfg.CommandTimeout = defaultCommandTimeout.String()
	}
}
