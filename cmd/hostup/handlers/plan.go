package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/provision/planner"
	"github.com/hostup/hostup/internal/render"
)

// Plan prints the ordered provisioning plan and the config files apply
// would write, without executing anything. It does not require root.
func Plan(_ context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("Plan for %s (%s)\n\n", cfg.Host.Domain, cfg.Host.PublicIP)

	fmt.Println("Steps, in order:")
	for i, step := range planner.Build() {
		fmt.Printf("  %2d. %s\n", i+1, step.Name())
	}

	fmt.Printf("\nPackages: %s\n", strings.Join(cfg.Packages, ", "))
	fmt.Printf("Firewall services: %s\n", strings.Join(cfg.Firewall.Services, ", "))
	fmt.Printf("Firewall ports: %s\n", strings.Join(cfg.Firewall.Ports, ", "))
	fmt.Printf("Certificate integrations: %s (contact %s)\n",
		strings.Join(cfg.Certificates.Integrations, ", "), cfg.ContactEmail())

	return printRenderedFiles(cfg)
}

// printRenderedFiles shows every generated config exactly as apply
// would write it.
func printRenderedFiles(cfg *config.Config) error {
	files := []struct {
		path       string
		templateID string
		params     any
	}{
		{cfg.NginxSitePath(), render.TemplateNginxSite, render.NginxSiteParams{
			Domain: cfg.Host.Domain, BackendPort: cfg.Webserver.BackendPort}},
		{cfg.HTTPDVhostPath(), render.TemplateHTTPDVhost, render.HTTPDVhostParams{
			Domain: cfg.Host.Domain}},
		{cfg.OpenVPNServerPath(), render.TemplateOpenVPN, render.OpenVPNParams{
			Subnet: cfg.VPN.Subnet, Netmask: cfg.VPN.Netmask, DNSServers: cfg.VPN.DNSServers}},
		{cfg.BannerPath(), render.TemplateSSHBanner, render.SSHBannerParams{
			Domain: cfg.Host.Domain}},
		{cfg.JailPath(), render.TemplateJail, render.JailParams{
			BanTime:    cfg.IntrusionPrevention.BanTime,
			FindWindow: cfg.IntrusionPrevention.FindWindow,
			MaxRetries: cfg.IntrusionPrevention.MaxRetries}},
	}

	for _, f := range files {
		content, err := render.Render(f.templateID, f.params)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", f.path, err)
		}
		fmt.Printf("\n--- %s ---\n%s", f.path, content)
	}
	return nil
}
