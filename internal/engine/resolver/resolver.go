// Package resolver turns build output descriptors into assets registered with a host registry.
package resolver

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// cacheKey identifies a parsed build descriptor.
type cacheKey struct {
	outputPath string
	dir        string
}

// Resolver resolves entry points of one build output directory and registers them with the host.
// Parsed descriptors are cached for the lifetime of the Resolver and never invalidated.
type Resolver struct {
	host   ports.HostRegistry
	reader ports.BuildOutputReader

	outputPath string
	version    string
	rootPath   string
	rootURL    string

	mu              sync.RWMutex
	manifestCache   map[cacheKey]domain.Manifest
	entrypointCache map[cacheKey]*domain.Entrypoints
	loads           singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRoot overrides the directory the output path is relative to.
func WithRoot(root string) Option {
	return func(r *Resolver) {
		r.rootPath = root
	}
}

// New creates a Resolver for the build output at outputPath.
//
// Without WithRoot the root is the host's template directory when the host provides one,
// otherwise the current working directory.
func New(
	host ports.HostRegistry,
	reader ports.BuildOutputReader,
	outputPath, version, baseURL string,
	opts ...Option,
) *Resolver {
	r := &Resolver{
		host:            host,
		reader:          reader,
		outputPath:      outputPath,
		version:         version,
		rootURL:         baseURL,
		manifestCache:   make(map[cacheKey]domain.Manifest),
		entrypointCache: make(map[cacheKey]*domain.Entrypoints),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.rootPath == "" {
		r.rootPath = defaultRoot(host)
	}
	r.rootPath = filepath.Join(r.rootPath, outputPath)

	return r
}

func defaultRoot(host ports.HostRegistry) string {
	if p, ok := host.(ports.TemplateDirectoryProvider); ok {
		if dir := p.TemplateDirectory(); dir != "" {
			return dir
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// OutputDir returns the absolute directory the build descriptors are read from.
func (r *Resolver) OutputDir() string {
	return r.rootPath
}

// Version returns the asset version passed to the host registry.
func (r *Resolver) Version() string {
	return r.version
}

// Register resolves entryPoint and registers its chunks with the host without enqueueing them.
//
// Each chunk depends on the configured extra dependencies and on every chunk of the same kind
// registered before it in this call, so chunks load in build order.
func (r *Resolver) Register(name, entryPoint string, opts domain.AssetOptions) (domain.ResolvedAssets, error) {
	cfg := opts.Normalize()

	assets, err := r.resolve(name, entryPoint, cfg)
	if err != nil {
		return domain.ResolvedAssets{}, err
	}

	if cfg.JS {
		var chain []string
		for _, js := range assets.JS {
			deps := append(slices.Clone(cfg.JSDeps), chain...)
			if err := r.host.RegisterScript(js.Handle, js.URL, deps, r.version, cfg.InFooter); err != nil {
				return domain.ResolvedAssets{}, zerr.With(zerr.Wrap(err, domain.ErrRegistrationFailed.Error()), "handle", js.Handle)
			}
			chain = append(chain, js.Handle)
		}
	}

	if cfg.CSS {
		var chain []string
		for _, css := range assets.CSS {
			deps := append(slices.Clone(cfg.CSSDeps), chain...)
			if err := r.host.RegisterStyle(css.Handle, css.URL, deps, r.version, cfg.Media); err != nil {
				return domain.ResolvedAssets{}, zerr.With(zerr.Wrap(err, domain.ErrRegistrationFailed.Error()), "handle", css.Handle)
			}
			chain = append(chain, css.Handle)
		}
	}

	return assets, nil
}

// Enqueue registers entryPoint and marks every registered chunk for output, scripts first.
func (r *Resolver) Enqueue(name, entryPoint string, opts domain.AssetOptions) (domain.ResolvedAssets, error) {
	cfg := opts.Normalize()

	assets, err := r.Register(name, entryPoint, cfg.Options())
	if err != nil {
		return domain.ResolvedAssets{}, err
	}

	if cfg.JS {
		for _, js := range assets.JS {
			if err := r.host.EnqueueScript(js.Handle); err != nil {
				return domain.ResolvedAssets{}, zerr.With(zerr.Wrap(err, domain.ErrEnqueueFailed.Error()), "handle", js.Handle)
			}
		}
	}

	if cfg.CSS {
		for _, css := range assets.CSS {
			if err := r.host.EnqueueStyle(css.Handle); err != nil {
				return domain.ResolvedAssets{}, zerr.With(zerr.Wrap(err, domain.ErrEnqueueFailed.Error()), "handle", css.Handle)
			}
		}
	}

	return assets, nil
}

// Assets resolves entryPoint of the build identified by name into handles and URLs.
// The manifest is not consulted; entrypoints.json already lists final paths.
func (r *Resolver) Assets(name, entryPoint string, opts domain.AssetOptions) (domain.ResolvedAssets, error) {
	return r.resolve(name, entryPoint, opts.Normalize())
}

func (r *Resolver) resolve(name, entryPoint string, cfg domain.AssetConfig) (domain.ResolvedAssets, error) {
	entrypoints, err := r.Entrypoints(name)
	if err != nil {
		return domain.ResolvedAssets{}, err
	}

	ep, ok := entrypoints.Lookup(entryPoint)
	if !ok {
		return domain.ResolvedAssets{}, domain.ConfigurationError(
			zerr.With(zerr.With(domain.ErrEntryPointNotFound, "entry_point", entryPoint), "name", name),
		)
	}

	assets := domain.ResolvedAssets{
		JS:  []domain.ResolvedAsset{},
		CSS: []domain.ResolvedAsset{},
	}

	if cfg.JS {
		for _, path := range ep.JS {
			assets.JS = append(assets.JS, domain.ResolvedAsset{
				Handle: handle(name, path, domain.KindScript),
				URL:    r.URL(path),
			})
		}
	}

	if cfg.CSS {
		for _, path := range ep.CSS {
			assets.CSS = append(assets.CSS, domain.ResolvedAsset{
				Handle: handle(name, path, domain.KindStyle),
				URL:    r.URL(path),
			})
		}
	}

	return assets, nil
}

// URL returns the public URL of assetPath. Paths that already point at the development
// server are returned unchanged; anything else is prefixed with the base URL.
func (r *Resolver) URL(assetPath string) string {
	if strings.Contains(assetPath, domain.DevServerMarker) {
		return assetPath
	}
	return r.rootURL + assetPath
}

// Handle derives the registry handle for an asset of the build identified by name.
func (r *Resolver) Handle(name, path string, kind domain.AssetKind) (string, error) {
	if !kind.Valid() {
		return "", domain.InvalidArgumentError(zerr.With(domain.ErrInvalidAssetKind, "kind", string(kind)))
	}
	return handle(name, path, kind), nil
}

func handle(name, path string, kind domain.AssetKind) string {
	return domain.HandlePrefix + name + "_" + path + "_" + string(kind)
}

// Lookup returns the public URL the manifest maps assetPath to.
func (r *Resolver) Lookup(dir, assetPath string) (string, error) {
	manifest, err := r.Manifest(dir)
	if err != nil {
		return "", err
	}

	resolved, ok := manifest[assetPath]
	if !ok {
		return "", domain.ConfigurationError(zerr.With(domain.ErrManifestKeyNotFound, "asset", assetPath))
	}
	return r.URL(resolved), nil
}

// Manifest returns the parsed manifest.json, reading it on the first call for dir.
func (r *Resolver) Manifest(dir string) (domain.Manifest, error) {
	key := cacheKey{outputPath: r.outputPath, dir: dir}

	r.mu.RLock()
	cached, ok := r.manifestCache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := r.loads.Do("manifest\x00"+dir, func() (any, error) {
		r.mu.RLock()
		cached, ok := r.manifestCache[key]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		path := filepath.Join(r.rootPath, domain.ManifestFileName)
		data, err := r.read(path, domain.ErrManifestNotFound)
		if err != nil {
			return nil, err
		}

		var manifest domain.Manifest
		if err := json.Unmarshal(data, &manifest); err != nil || manifest == nil {
			return nil, invalidFileError(domain.ErrManifestInvalid, path, err)
		}

		r.mu.Lock()
		r.manifestCache[key] = manifest
		r.mu.Unlock()
		return manifest, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.Manifest), nil
}

// Entrypoints returns the parsed entrypoints.json, reading it on the first call for dir.
func (r *Resolver) Entrypoints(dir string) (*domain.Entrypoints, error) {
	key := cacheKey{outputPath: r.outputPath, dir: dir}

	r.mu.RLock()
	cached, ok := r.entrypointCache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := r.loads.Do("entrypoints\x00"+dir, func() (any, error) {
		r.mu.RLock()
		cached, ok := r.entrypointCache[key]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		path := filepath.Join(r.rootPath, domain.EntrypointsFileName)
		data, err := r.read(path, domain.ErrEntrypointsNotFound)
		if err != nil {
			return nil, err
		}

		var entrypoints *domain.Entrypoints
		if err := json.Unmarshal(data, &entrypoints); err != nil || entrypoints == nil {
			return nil, invalidFileError(domain.ErrEntrypointsInvalid, path, err)
		}

		r.mu.Lock()
		r.entrypointCache[key] = entrypoints
		r.mu.Unlock()
		return entrypoints, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Entrypoints), nil
}

// read loads a build descriptor, reporting a missing file as notFound.
func (r *Resolver) read(path string, notFound error) ([]byte, error) {
	data, err := r.reader.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ConfigurationError(zerr.With(notFound, "path", path))
	}
	return nil, domain.ConfigurationError(
		zerr.With(zerr.Wrap(err, domain.ErrBuildOutputReadFailed.Error()), "path", path),
	)
}

func invalidFileError(sentinel error, path string, cause error) error {
	if cause != nil {
		return domain.ConfigurationError(zerr.With(zerr.Wrap(cause, sentinel.Error()), "path", path))
	}
	return domain.ConfigurationError(zerr.With(sentinel, "path", path))
}
