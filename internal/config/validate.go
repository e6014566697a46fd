package config

import (
	"fmt"
	"net"
	"regexp"
	"time"
)

var domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

// Validate checks the descriptor before any step runs. A validation
// error is a precondition failure: the orchestrator never starts.
func (c *Config) Validate() error {
	if c.Host.PublicIP == "" {
		return fmt.Errorf("host.public_ip is required")
	}
	if net.ParseIP(c.Host.PublicIP) == nil {
		return fmt.Errorf("host.public_ip %q is not a valid IP address", c.Host.PublicIP)
	}
	if c.Host.Domain == "" {
		return fmt.Errorf("host.domain is required")
	}
	if !domainRegex.MatchString(c.Host.Domain) {
		return fmt.Errorf("host.domain %q is not a valid domain name", c.Host.Domain)
	}

	if c.Webserver.Policy != PolicyAuto && c.Webserver.Policy != PolicyForce {
		return fmt.Errorf("webserver.policy must be %q or %q, got %q", PolicyAuto, PolicyForce, c.Webserver.Policy)
	}
	if c.Webserver.BackendPort < 1 || c.Webserver.BackendPort > 65535 {
		return fmt.Errorf("webserver.backend_port %d is out of range", c.Webserver.BackendPort)
	}

	if net.ParseIP(c.VPN.Subnet) == nil {
		return fmt.Errorf("vpn.subnet %q is not a valid network address", c.VPN.Subnet)
	}
	if net.ParseIP(c.VPN.Netmask) == nil {
		return fmt.Errorf("vpn.netmask %q is not a valid netmask", c.VPN.Netmask)
	}

	for _, integration := range c.Certificates.Integrations {
		if integration != "nginx" && integration != "apache" {
			return fmt.Errorf("certificates.integrations entry %q is not supported (nginx, apache)", integration)
		}
	}

	if _, err := time.ParseDuration(c.CommandTimeout); err != nil {
		return fmt.Errorf("command_timeout %q is not a duration: %w", c.CommandTimeout, err)
	}

	seen := make(map[string]bool, len(c.Packages))
	for _, pkg := range c.Packages {
		if pkg == "" {
			return fmt.Errorf("packages may not contain empty names")
		}
		if seen[pkg] {
			return fmt.Errorf("packages contains duplicate entry %q", pkg)
		}
		seen[pkg] = true
	}

	return nil
}
