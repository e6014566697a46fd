package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostup/hostup/cmd/hostup/handlers"
)

// Apply returns the command that executes the full provisioning plan.
//
// Optional flags:
//
//	--config, -c: Path to the descriptor YAML file (default: auto-detect hostup.yaml)
//	--plain: Disable the live progress view, print plain log lines
func Apply() *cobra.Command {
	var (
		configPath string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Provision the host",
		Long: `Provision the host to match the descriptor.

This command runs the full plan: packages, GeoIP data, web stack, TLS
certificates and their backup, VPN, SSH banner, firewall, intrusion
prevention and the renewal schedule. Every step is idempotent: re-running
apply on an already provisioned host changes nothing and reports the
steps as skipped.

Must be run as root. If no config file is specified, it looks for
hostup.yaml in the current directory. Use 'hostup init' to create one.

Examples:
  # Provision using hostup.yaml in the current directory
  sudo hostup apply

  # Provision using a specific descriptor
  sudo hostup apply -c production.yaml

  # Plain output for logs and CI
  sudo hostup apply --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, plain)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to descriptor file (default: hostup.yaml)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable the live progress view")

	return cmd
}
