// Package certs requests TLS certificates through the CA client's server
// integrations and backs up the resulting certificate store.
package certs

import (
	"github.com/hostup/hostup/internal/config"
	"github.com/hostup/hostup/internal/provision"
)

const stepName = "certificates"

// integrationFlags maps an integration name to the CA client's plugin
// flag. Validate guarantees only these names appear in the descriptor.
var integrationFlags = map[string]string{
	"nginx":  "--nginx",
	"apache": "--apache",
}

type provisioner struct{}

// Step returns the certificate step: one CA-client request per
// configured integration, then the store backup.
func Step() provision.Step { return provisioner{} }

func (provisioner) Name() string { return stepName }

// Run requests a certificate through each integration and then archives
// the store. One integration's failure never prevents the other, and the
// backup is attempted regardless. Re-runs are safe: the CA client
// no-ops when a valid certificate already exists.
func (provisioner) Run(ctx *provision.Context) []provision.Result {
	cfg := ctx.Config
	var results []provision.Result

	for _, integration := range cfg.Certificates.Integrations {
		flag, ok := integrationFlags[integration]
		if !ok {
			results = append(results, provision.Failed(stepName, integration, "unknown integration"))
			continue
		}

		res := ctx.Runner.Run(ctx, "certbot", flag,
			"-n", "--agree-tos",
			"-m", cfg.ContactEmail(),
			"-d", cfg.Host.Domain)
		if !res.Ok() {
			results = append(results, provision.Failed(stepName, integration, res.Detail()))
			continue
		}
		results = append(results, provision.Succeeded(stepName, integration, "certificate ensured"))
	}

	return append(results, backupStore(ctx)...)
}

// offsiteSettings and offsiteUploader are swapped out in tests.
var (
	offsiteSettings = config.LoadS3Settings
	offsiteUploader = newS3Uploader
)
