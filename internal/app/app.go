// Package app implements the application layer for encore.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports"
	"go.trai.ch/encore/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	reader        ports.BuildOutputReader
	fingerprinter ports.Fingerprinter
	registry      ports.RenderingRegistry
	telemetry     ports.Telemetry
	logger        ports.Logger
	out           io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.BuildOutputReader,
	fingerprinter ports.Fingerprinter,
	registry ports.RenderingRegistry,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		reader:        reader,
		fingerprinter: fingerprinter,
		registry:      registry,
		telemetry:     telemetry,
		logger:        log,
		out:           os.Stdout,
	}
}

// WithOutput sets the writer command results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options holds the per-invocation overrides shared by all commands.
type Options struct {
	// ConfigPath is an explicit encore.yaml path. Empty means discovery from the working directory.
	ConfigPath string
	// BaseURL overrides the configured base URL when set.
	BaseURL string
	// Version overrides the configured asset version when set.
	Version string
	// Asset is merged over the options configured for the entry point.
	Asset domain.AssetOptions
}

// Assets prints the handles and URLs of entryPoint as YAML.
func (a *App) Assets(ctx context.Context, name, entryPoint string, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, project, err := a.resolver(opts)
	if err != nil {
		return err
	}

	assets, err := r.Assets(name, entryPoint, project.EntryOptions(entryPoint).Merge(opts.Asset))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(assets); err != nil {
		return zerr.Wrap(err, "failed to encode assets")
	}
	return enc.Close()
}

// Render enqueues every entry point of the build into the registry and prints the head
// and footer markup.
func (a *App) Render(ctx context.Context, name string, entryPoints []string, opts Options) error {
	if len(entryPoints) == 0 {
		return domain.InvalidArgumentError(domain.ErrNoEntryPointsSpecified)
	}

	r, project, err := a.resolver(opts)
	if err != nil {
		return err
	}

	for _, entryPoint := range entryPoints {
		if err := ctx.Err(); err != nil {
			return err
		}
		assets, err := r.Enqueue(name, entryPoint, project.EntryOptions(entryPoint).Merge(opts.Asset))
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("enqueued %q: %d scripts, %d styles", entryPoint, len(assets.JS), len(assets.CSS)))
	}

	if err := a.registry.RenderHead(a.out); err != nil {
		return err
	}
	return a.registry.RenderFooter(a.out)
}

// Manifest prints the public URL the manifest of the build maps assetPath to.
func (a *App) Manifest(ctx context.Context, name, assetPath string, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r, _, err := a.resolver(opts)
	if err != nil {
		return err
	}

	url, err := r.Lookup(name, assetPath)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, url)
	return err
}

// buildSummary is what Check reports for one build.
type buildSummary struct {
	name        string
	entryPoints int
	manifest    int
}

// Check loads the manifest and entrypoints of every named build concurrently.
// It returns the first failure; on success one line per build is printed in argument order.
func (a *App) Check(ctx context.Context, names []string, opts Options) error {
	if len(names) == 0 {
		return domain.InvalidArgumentError(domain.ErrNoBuildsSpecified)
	}

	r, _, err := a.resolver(opts)
	if err != nil {
		return err
	}

	summaries := make([]buildSummary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			_, vertex := a.telemetry.Record(gctx, "check "+name)
			summary, err := checkBuild(gctx, r, name, vertex)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(err, "name", name)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("checked %d builds in %s", len(names), r.OutputDir()))
	for _, s := range summaries {
		if _, err := fmt.Fprintf(a.out, "%s: ok (%d entry points, %d manifest entries)\n",
			s.name, s.entryPoints, s.manifest); err != nil {
			return err
		}
	}
	return nil
}

func checkBuild(ctx context.Context, r *resolver.Resolver, name string, vertex ports.Vertex) (buildSummary, error) {
	if err := ctx.Err(); err != nil {
		return buildSummary{}, err
	}

	manifest, err := r.Manifest(name)
	if err != nil {
		return buildSummary{}, err
	}
	vertex.Log(fmt.Sprintf("%s: %d entries", domain.ManifestFileName, len(manifest)))

	entrypoints, err := r.Entrypoints(name)
	if err != nil {
		return buildSummary{}, err
	}
	vertex.Log(fmt.Sprintf("%s: %d entry points", domain.EntrypointsFileName, len(entrypoints.EntryPoints)))

	return buildSummary{
		name:        name,
		entryPoints: len(entrypoints.EntryPoints),
		manifest:    len(manifest),
	}, nil
}

// resolver loads the project, applies the overrides and builds a Resolver for its output directory.
func (a *App) resolver(opts Options) (*resolver.Resolver, *domain.Project, error) {
	project, err := a.loadProject(opts.ConfigPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.BaseURL != "" {
		project.BaseURL = opts.BaseURL
	}
	if opts.Version != "" {
		project.Version = opts.Version
	}

	version := project.Version
	if version == domain.AutoVersion {
		version, err = a.fingerprinter.Fingerprint(project.OutputDir())
		if err != nil {
			return nil, nil, err
		}
	}
	a.logger.Debug(fmt.Sprintf("build output %s, version %q, base url %q", project.OutputDir(), version, project.BaseURL))

	r := resolver.New(
		a.registry,
		a.reader,
		project.OutputPath,
		version,
		project.BaseURL,
		resolver.WithRoot(project.Root),
	)
	return r, project, nil
}

func (a *App) loadProject(configPath string) (*domain.Project, error) {
	if configPath != "" {
		return a.configLoader.LoadFile(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return a.configLoader.Load(cwd)
}

// Components holds what the CLI entry point needs from the dependency graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// NewComponents creates a new Components instance.
func NewComponents(app *App, logger ports.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    logger,
		Telemetry: telemetry,
	}
}
