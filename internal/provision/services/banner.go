package services

import (
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

type sshBanner struct{}

// SSHBanner returns the step that installs the pre-login banner and
// reloads sshd to pick it up.
func SSHBanner() provision.Step { return sshBanner{} }

func (sshBanner) Name() string { return "ssh-banner" }

func (sshBanner) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config

	results := []provision.Result{
		writeConfig("ssh-banner", render.TemplateSSHBanner, render.SSHBannerParams{
			Domain: cfg.Host.Domain,
		}, cfg.BannerPath(), 0o644),
	}
	return append(results, reload(ctx, "ssh-banner", "sshd"))
}
