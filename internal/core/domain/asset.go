// Package domain contains the core domain models for resolving build output into host assets.
package domain

import "slices"

// AssetKind is the kind of asset a handle refers to.
type AssetKind string

const (
	// KindScript identifies JavaScript assets.
	KindScript AssetKind = "script"
	// KindStyle identifies stylesheet assets.
	KindStyle AssetKind = "style"
)

// Valid reports whether k is one of the known asset kinds.
func (k AssetKind) Valid() bool {
	return k == KindScript || k == KindStyle
}

func (k AssetKind) String() string {
	return string(k)
}

// ResolvedAsset is an asset URL paired with the handle it is registered under.
type ResolvedAsset struct {
	Handle string `json:"handle" yaml:"handle"`
	URL    string `json:"url"    yaml:"url"`
}

// ResolvedAssets holds the resolved chunks of one entry point, in build order.
type ResolvedAssets struct {
	JS  []ResolvedAsset `json:"js"  yaml:"js"`
	CSS []ResolvedAsset `json:"css" yaml:"css"`
}

// AssetOptions is the caller-facing, partially specified form of AssetConfig.
// Nil fields fall back to the defaults applied by Normalize.
type AssetOptions struct {
	JS       *bool
	CSS      *bool
	JSDeps   []string
	CSSDeps  []string
	InFooter *bool
	Media    *string

	// Extra carries keys the resolver does not understand. They are passed through untouched.
	Extra map[string]any
}

// AssetConfig is the normalized asset configuration.
type AssetConfig struct {
	JS       bool
	CSS      bool
	JSDeps   []string
	CSSDeps  []string
	InFooter bool
	Media    string
	Extra    map[string]any
}

// Normalize merges o over the defaults: js and css enabled, no extra dependencies,
// scripts in the footer and media "all".
func (o AssetOptions) Normalize() AssetConfig {
	cfg := AssetConfig{
		JS:       true,
		CSS:      true,
		JSDeps:   []string{},
		CSSDeps:  []string{},
		InFooter: true,
		Media:    DefaultMedia,
		Extra:    o.Extra,
	}

	if o.JS != nil {
		cfg.JS = *o.JS
	}
	if o.CSS != nil {
		cfg.CSS = *o.CSS
	}
	if o.JSDeps != nil {
		cfg.JSDeps = slices.Clone(o.JSDeps)
	}
	if o.CSSDeps != nil {
		cfg.CSSDeps = slices.Clone(o.CSSDeps)
	}
	if o.InFooter != nil {
		cfg.InFooter = *o.InFooter
	}
	if o.Media != nil {
		cfg.Media = *o.Media
	}

	return cfg
}

// Options converts c back into fully specified AssetOptions.
func (c AssetConfig) Options() AssetOptions {
	return AssetOptions{
		JS:       Ptr(c.JS),
		CSS:      Ptr(c.CSS),
		JSDeps:   slices.Clone(c.JSDeps),
		CSSDeps:  slices.Clone(c.CSSDeps),
		InFooter: Ptr(c.InFooter),
		Media:    Ptr(c.Media),
		Extra:    c.Extra,
	}
}

// Merge returns o with every field set in override taking precedence.
// Extra keys are merged, override winning on conflicts.
func (o AssetOptions) Merge(override AssetOptions) AssetOptions {
	merged := o
	if override.JS != nil {
		merged.JS = override.JS
	}
	if override.CSS != nil {
		merged.CSS = override.CSS
	}
	if override.JSDeps != nil {
		merged.JSDeps = override.JSDeps
	}
	if override.CSSDeps != nil {
		merged.CSSDeps = override.CSSDeps
	}
	if override.InFooter != nil {
		merged.InFooter = override.InFooter
	}
	if override.Media != nil {
		merged.Media = override.Media
	}
	if len(override.Extra) > 0 {
		extra := make(map[string]any, len(o.Extra)+len(override.Extra))
		for k, v := range o.Extra {
			extra[k] = v
		}
		for k, v := range override.Extra {
			extra[k] = v
		}
		merged.Extra = extra
	}
	return merged
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
