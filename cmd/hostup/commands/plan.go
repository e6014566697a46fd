package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostup/hostup/cmd/hostup/handlers"
)

// Plan returns the command that previews the provisioning plan without
// touching the host.
func Plan() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would do",
		Long: `Show the ordered provisioning plan and the rendered config files
without executing anything.

Examples:
  # Preview using hostup.yaml in the current directory
  hostup plan

  # Preview a specific descriptor
  hostup plan -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to descriptor file (default: hostup.yaml)")

	return cmd
}
