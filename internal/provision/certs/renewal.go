package certs

import (
	"strings"

	"github.com/hostup/hostup/internal/provision"
)

// renewalLine is the daily renewal job. The post-hook reloads both web
// servers so renewed certificates are picked up without a restart.
const renewalLine = `0 3 * * * certbot renew --quiet --post-hook "systemctl reload nginx httpd"`

type renewalSchedule struct{}

// RenewalStep returns the step that registers the daily certificate
// renewal job.
func RenewalStep() provision.Step { return renewalSchedule{} }

func (renewalSchedule) Name() string { return "renewal-schedule" }

// Run appends the renewal line to the crontab unless an identical line
// is already present. A missing crontab reads as empty.
func (renewalSchedule) Run(ctx *provision.Context) []provision.Result {
	existing := ""
	if res := ctx.Runner.Run(ctx, "crontab", "-l"); res.Ok() {
		existing = res.Output
	}

	for _, line := range strings.Split(existing, "\n") {
		if strings.TrimSpace(line) == renewalLine {
			return []provision.Result{
				provision.Skipped("renewal-schedule", "register cron job", "already scheduled"),
			}
		}
	}

	tab := existing
	if tab != "" && !strings.HasSuffix(tab, "\n") {
		tab += "\n"
	}
	tab += renewalLine + "\n"

	res := ctx.Runner.RunInput(ctx, tab, "crontab", "-")
	if !res.Ok() {
		return []provision.Result{
			provision.Failed("renewal-schedule", "register cron job", res.Detail()),
		}
	}
	return []provision.Result{
		provision.Succeeded("renewal-schedule", "register cron job", "daily at 03:00"),
	}
}
