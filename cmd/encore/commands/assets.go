package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets <build> <entry>",
		Short: "Print the handles and URLs of an entry point as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := globalOptions(cmd)
			opts.Asset = assetOptions(cmd)
			return c.app.Assets(cmd.Context(), args[0], args[1], opts)
		},
	}
	addAssetFlags(cmd)
	return cmd
}
