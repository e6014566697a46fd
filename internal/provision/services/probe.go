package services

import "github.com/hostup/hostup/internal/provision"

// knownWebServers are the units probed before touching web configs, so
// an operator's existing setup is never clobbered.
var knownWebServers = []string{"nginx", "httpd", "apache2", "lighttpd", "caddy"}

// activeWebServer reports the first already-active web server unit, if
// any. Probed via the service manager, read-only.
func activeWebServer(ctx *provision.Context) (string, bool) {
	for _, unit := range knownWebServers {
		if ctx.Runner.Run(ctx, "systemctl", "is-active", "--quiet", unit).Ok() {
			return unit, true
		}
	}
	return "", false
}
