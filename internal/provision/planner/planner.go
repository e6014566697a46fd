// Package planner assembles the ordered provisioning plan.
package planner

import (
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/provision/certs"
	"github.com/hostup/hostup/internal/provision/packages"
	"github.com/hostup/hostup/internal/provision/services"
)

// Build returns the full plan in execution order. The order is fixed:
// packages land first so every later step's binaries exist, certificates
// come after the web configs they integrate with, and the renewal
// schedule is registered last.
func Build() []provision.Step {
	return []provision.Step{
		packages.Step(),
		services.GeoIP(),
		services.ReverseProxy(),
		services.WebServer(),
		certs.Step(),
		services.VPN(),
		services.SSHBanner(),
		services.Firewall(),
		services.IntrusionPrevention(),
		certs.RenewalStep(),
	}
}
