// Package wizard collects the host descriptor interactively. Everything
// it produces can equally be written to hostup.yaml by hand.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/hostup/hostup/internal/config"
)

var domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)

var (
	errPublicIPRequired = errors.New("public IP is required")
	errPublicIPInvalid  = errors.New("not a valid IP address")
	errDomainRequired   = errors.New("domain is required")
	errDomainInvalid    = errors.New("not a valid domain name")
)

// Result carries the wizard answers.
type Result struct {
	PublicIP  string
	Domain    string
	Policy    string
	BackupDir string
}

// Run walks the operator through the descriptor.
func Run(ctx context.Context) (*Result, error) {
	result := &Result{Policy: config.PolicyAuto}

	if err := runHostGroup(ctx, result); err != nil {
		return nil, err
	}
	if err := runPolicyGroup(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// runHostGroup prompts for the two required descriptor values.
func runHostGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Public IP").
				Description("The host's public IPv4 address").
				Placeholder("203.0.113.5").
				Value(&result.PublicIP).
				Validate(validatePublicIP),
			huh.NewInput().
				Title("Domain").
				Description("The domain this host serves").
				Placeholder("example.org").
				Value(&result.Domain).
				Validate(validateDomain),
		).Title("Host Identity"),
	).RunWithContext(ctx)
}

// runPolicyGroup prompts for the web-server conflict policy and the
// optional backup directory.
func runPolicyGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Web Server Policy").
				Description("What to do when a web server is already running on this host").
				Options(
					huh.NewOption("Skip config writes if a web server is active (recommended)", config.PolicyAuto),
					huh.NewOption("Always write both reverse-proxy and vhost configs", config.PolicyForce),
				).
				Value(&result.Policy),
			huh.NewInput().
				Title("Certificate Backup Directory (Optional)").
				Description("Leave empty to use the login user's home directory").
				Value(&result.BackupDir),
		).Title("Policies"),
	).RunWithContext(ctx)
}

// ConfirmOverwrite asks before replacing an existing descriptor file.
func ConfirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	).Run()
	return overwrite, err
}

// BuildConfig turns wizard answers into a validated descriptor.
func BuildConfig(result *Result) (*config.Config, error) {
	cfg, err := config.New(result.PublicIP, result.Domain)
	if err != nil {
		return nil, err
	}
	cfg.Webserver.Policy = result.Policy
	cfg.Backup.Dir = result.BackupDir
	return cfg, nil
}

// WriteConfig persists the descriptor as YAML.
func WriteConfig(cfg *config.Config, path string) error {
	out := map[string]any{
		"host": map[string]string{
			"public_ip": cfg.Host.PublicIP,
			"domain":    cfg.Host.Domain,
		},
		"webserver": map[string]any{
			"policy":       cfg.Webserver.Policy,
			"backend_port": cfg.Webserver.BackendPort,
		},
	}
	if cfg.Backup.Dir != "" {
		out["backup"] = map[string]string{"dir": cfg.Backup.Dir}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// FileExists reports whether the descriptor file is already present.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func validatePublicIP(s string) error {
	if s == "" {
		return errPublicIPRequired
	}
	if net.ParseIP(s) == nil {
		return errPublicIPInvalid
	}
	return nil
}

func validateDomain(s string) error {
	if s == "" {
		return errDomainRequired
	}
	if !domainRegex.MatchString(s) {
		return errDomainInvalid
	}
	return nil
}
