package commands

import (
	"github.com/spf13/cobra"

	"github.com/hostup/hostup/cmd/hostup/handlers"
)

// Init returns the command that creates a descriptor file interactively.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a descriptor file interactively",
		Long: `Create a hostup.yaml descriptor by answering a few questions.

The wizard asks for the host's public IP and domain, the web-server
conflict policy and an optional backup directory. Everything else gets
working defaults that can be edited in the generated file.

Examples:
  # Create hostup.yaml in the current directory
  hostup init

  # Write the descriptor somewhere else
  hostup init -o /etc/hostup/hostup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "hostup.yaml", "Path for the generated descriptor")

	return cmd
}
