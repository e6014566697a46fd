package services

import (
	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

type webServer struct{}

// WebServer returns the step that writes the httpd virtual host for the
// domain and brings httpd up.
func WebServer() provision.Step { return webServer{} }

func (webServer) Name() string { return "web-server" }

func (webServer) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config
	path := cfg.HTTPDVhostPath()

	if cfg.Webserver.Policy == config.PolicyAuto {
		if unit, active := activeWebServer(ctx); active && unit != "httpd" {
			return []provision.Result{
				provision.Skipped("web-server", "write "+path, "web server "+unit+" already active"),
			}
		}
	}

	results := []provision.Result{
		writeConfig("web-server", render.TemplateHTTPDVhost, render.HTTPDVhostParams{
			Domain: cfg.Host.Domain,
		}, path, 0o644),
	}
	return append(results, enableNow(ctx, "web-server", "httpd"))
}
