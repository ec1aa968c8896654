package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <build> <entry>...",
		Short: "Print the script and link tags for one or more entry points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			opts := globalOptions(cmd)
			opts.Asset = assetOptions(cmd)
			return c.app.Render(cmd.Context(), args[0], args[1:], opts)
		},
	}
	addAssetFlags(cmd)
	return cmd
}
