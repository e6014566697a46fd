package services

import (
	"github.com/hostup/hostup/internal/provision"
	"github.com/hostup/hostup/internal/render"
)

type intrusionPrevention struct{}

// IntrusionPrevention returns the step that writes the fail2ban jail
// overrides and brings fail2ban up.
func IntrusionPrevention() provision.Step { return intrusionPrevention{} }

func (intrusionPrevention) Name() string { return "fail2ban" }

func (intrusionPrevention) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config

	results := []provision.Result{
		writeConfig("fail2ban", render.TemplateJail, render.JailParams{
			BanTime:    cfg.IntrusionPrevention.BanTime,
			FindWindow: cfg.IntrusionPrevention.FindWindow,
			MaxRetries: cfg.IntrusionPrevention.MaxRetries,
		}, cfg.JailPath(), 0o644),
	}
	results = append(results, enableNow(ctx, "fail2ban", "fail2ban"))
	return append(results, restart(ctx, "fail2ban", "fail2ban"))
}
