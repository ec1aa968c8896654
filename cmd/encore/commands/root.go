// Package commands implements the CLI commands for encore.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/encore/internal/app"
	"go.trai.ch/encore/internal/build"
)

// CLI represents the command line interface for encore.
type CLI struct {
	app     Application
	log     LogConfigurer
	rootCmd *cobra.Command
}

// LogConfigurer is implemented by loggers whose level and format can change after construction.
type LogConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Application represents the application logic interface.
type Application interface {
	Assets(ctx context.Context, name, entryPoint string, opts app.Options) error
	Render(ctx context.Context, name string, entryPoints []string, opts app.Options) error
	Manifest(ctx context.Context, name, assetPath string, opts app.Options) error
	Check(ctx context.Context, names []string, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "encore",
		Short:         "Resolve and render Webpack Encore build output",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to encore.yaml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("base-url", "", "Override the public URL of the build output directory")
	rootCmd.PersistentFlags().String("asset-version", "", "Override the asset version, \"auto\" hashes the build descriptors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.log == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		c.log.SetVerbose(verbose)
		c.log.SetJSON(logJSON)
	}

	rootCmd.AddCommand(c.newAssetsCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetLogger sets the logger configured from the --verbose and --log-json flags.
func (c *CLI) SetLogger(l LogConfigurer) {
	c.log = l
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// globalOptions reads the persistent flags shared by every command.
func globalOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	baseURL, _ := cmd.Flags().GetString("base-url")
	version, _ := cmd.Flags().GetString("asset-version")

	return app.Options{
		ConfigPath: configPath,
		BaseURL:    baseURL,
		Version:    version,
	}
}
