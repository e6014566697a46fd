package services

import (
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

type vpn struct{}

// VPN returns the step that writes the OpenVPN server config and brings
// the server instance up.
func VPN() provision.Step { return vpn{} }

func (vpn) Name() string { return "vpn" }

func (vpn) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config

	results := []provision.Result{
		writeConfig("vpn", render.TemplateOpenVPN, render.OpenVPNParams{
			Subnet:     cfg.VPN.Subnet,
			Netmask:    cfg.VPN.Netmask,
			DNSServers: cfg.VPN.DNSServers,
		}, cfg.OpenVPNServerPath(), 0o644),
	}
	return append(results, enableNow(ctx, "vpn", "openvpn-server@server"))
}
