package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fbgen/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the backend script without executing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:   c.configPath(cmd),
				GenerateOnly: true,
			})
		},
	}
}
