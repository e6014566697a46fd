package services

import (
	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

type reverseProxy struct{}

// ReverseProxy returns the step that writes the domain-scoped nginx
// site config and brings nginx up.
func ReverseProxy() provision.Step { return reverseProxy{} }

func (reverseProxy) Name() string { return "reverse-proxy" }

func (reverseProxy) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config
	path := cfg.NginxSitePath()

	if cfg.Webserver.Policy == config.PolicyAuto {
		if unit, active := activeWebServer(ctx); active {
			return []provision.Result{
				provision.Skipped("reverse-proxy", "write "+path, "web server "+unit+" already active"),
			}
		}
	}

	results := []provision.Result{
		writeConfig("reverse-proxy", render.TemplateNginxSite, render.NginxSiteParams{
			Domain:      cfg.Host.Domain,
			BackendPort: cfg.Webserver.BackendPort,
		}, path, 0o644),
	}
	return append(results, enableNow(ctx, "reverse-proxy", "nginx"))
}
