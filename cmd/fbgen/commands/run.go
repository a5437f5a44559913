package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fbgen/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate the backend script and execute the build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: c.configPath(cmd),
			})
		},
	}
}
