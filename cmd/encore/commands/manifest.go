package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <build> <path>",
		Short: "Print the public URL manifest.json maps a logical asset path to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Manifest(cmd.Context(), args[0], args[1], globalOptions(cmd))
		},
	}
}
