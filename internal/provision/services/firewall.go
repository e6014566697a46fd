package services

import "github.com/hostup/hostup/internal/provision"

type firewall struct{}

// Firewall returns the step that applies the allow-list to firewalld.
// Rules are append-only: nothing an operator added is ever removed.
func Firewall() provision.Step { return firewall{} }

func (firewall) Name() string { return "firewall" }

// Run enables firewalld, adds each declared service and port to the
// permanent config, then reloads once so the whole batch takes effect
// atomically. Adding an already-present rule exits zero, so re-runs are
// harmless.
func (firewall) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config

	results := []provision.Result{enableNow(ctx, "firewall", "firewalld")}

	for _, svc := range cfg.Firewall.Services {
		res := ctx.Runner.Run(ctx, "firewall-cmd", "--permanent", "--add-service="+svc)
		if !res.Ok() {
			results = append(results, provision.Failed("firewall", "allow service "+svc, res.Detail()))
			continue
		}
		results = append(results, provision.Succeeded("firewall", "allow service "+svc, ""))
	}

	for _, port := range cfg.Firewall.Ports {
		res := ctx.Runner.Run(ctx, "firewall-cmd", "--permanent", "--add-port="+port)
		if !res.Ok() {
			results = append(results, provision.Failed("firewall", "allow port "+port, res.Detail()))
			continue
		}
		results = append(results, provision.Succeeded("firewall", "allow port "+port, ""))
	}

	res := ctx.Runner.Run(ctx, "firewall-cmd", "--reload")
	if !res.Ok() {
		return append(results, provision.Failed("firewall", "reload rules", res.Detail()))
	}
	return append(results, provision.Succeeded("firewall", "reload rules", ""))
}
