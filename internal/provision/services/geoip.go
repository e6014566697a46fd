package services

import (
	"github.com/hostup/hostup/internal/execute"
	"github.com/hostup/hostup/internal/provision"
)

type geoIP struct{}

// GeoIP returns the step that refreshes the GeoIP databases. The update
// hits a remote mirror, so it gets a retry.
func GeoIP() provision.Step { return geoIP{} }

func (geoIP) Name() string { return "geoip" }

func (geoIP) Run(ctx *provision.Context) []provision.Result {
	res := execute.RunRetry(ctx, ctx.Runner, 2, "geoipupdate")
	if !res.Ok() {
		return []provision.Result{provision.Failed("geoip", "update databases", res.Detail())}
	}
	return []provision.Result{provision.Succeeded("geoip", "update databases", "")}
}
