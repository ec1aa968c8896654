package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/encore/internal/core/domain"
)

func addAssetFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-js", false, "Skip the entry point's scripts")
	cmd.Flags().Bool("no-css", false, "Skip the entry point's stylesheets")
	cmd.Flags().StringSlice("js-dep", nil, "Extra script handle every script depends on (repeatable)")
	cmd.Flags().StringSlice("css-dep", nil, "Extra style handle every stylesheet depends on (repeatable)")
	cmd.Flags().Bool("in-footer", true, "Print scripts in the footer")
	cmd.Flags().String("media", domain.DefaultMedia, "Media attribute for stylesheets")
}

// assetOptions returns the asset options set explicitly on the command line.
// Flags left at their default do not override the options configured for the entry point.
func assetOptions(cmd *cobra.Command) domain.AssetOptions {
	var opts domain.AssetOptions
	flags := cmd.Flags()

	if flags.Changed("no-js") {
		noJS, _ := flags.GetBool("no-js")
		opts.JS = domain.Ptr(!noJS)
	}
	if flags.Changed("no-css") {
		noCSS, _ := flags.GetBool("no-css")
		opts.CSS = domain.Ptr(!noCSS)
	}
	if flags.Changed("js-dep") {
		opts.JSDeps, _ = flags.GetStringSlice("js-dep")
	}
	if flags.Changed("css-dep") {
		opts.CSSDeps, _ = flags.GetStringSlice("css-dep")
	}
	if flags.Changed("in-footer") {
		inFooter, _ := flags.GetBool("in-footer")
		opts.InFooter = domain.Ptr(inFooter)
	}
	if flags.Changed("media") {
		media, _ := flags.GetString("media")
		opts.Media = domain.Ptr(media)
	}
	return opts
}
