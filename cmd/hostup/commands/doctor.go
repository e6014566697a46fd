package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostup/hostup/cmd/hostup/handlers"
)

// Doctor returns the command that probes the host's current state.
func Doctor() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check host tools and service state",
		Long: `Probe the host without changing anything: verify the required
tools exist, report which managed services are active and whether the
generated config files are in place.

Examples:
  hostup doctor
  hostup doctor -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to descriptor file (default: hostup.yaml)")

	return cmd
}
