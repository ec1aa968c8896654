package domain

import "path/filepath"

// Project describes where a theme keeps its build output and how it is served.
type Project struct {
	// Root is the absolute theme or plugin directory.
	Root string
	// OutputPath is the build output directory relative to Root.
	OutputPath string
	// Version is the asset version passed to the host registry, or AutoVersion.
	Version string
	// BaseURL is the public URL of the output directory, with trailing slash.
	BaseURL string
	// Entries holds per entry point default options.
	Entries map[string]AssetOptions
}

// OutputDir returns the absolute build output directory.
func (p *Project) OutputDir() string {
	return filepath.Join(p.Root, p.OutputPath)
}

// EntryOptions returns the configured options for entryPoint, or zero options.
func (p *Project) EntryOptions(entryPoint string) AssetOptions {
	if p == nil {
		return AssetOptions{}
	}
	return p.Entries[entryPoint]
}
