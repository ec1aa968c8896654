// Package ports defines the core interfaces for the application.
package ports

import "io"

// HostRegistry is the host platform's script and style registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=host_registry.go -destination=mocks/mock_host_registry.go -package=mocks
type HostRegistry interface {
	// RegisterScript makes a script known to the host under handle without printing it.
	RegisterScript(handle, url string, deps []string, version string, inFooter bool) error

	// RegisterStyle makes a stylesheet known to the host under handle without printing it.
	RegisterStyle(handle, url string, deps []string, version, media string) error

	// EnqueueScript marks a registered script for output.
	EnqueueScript(handle string) error

	// EnqueueStyle marks a registered stylesheet for output.
	EnqueueStyle(handle string) error
}

// TemplateDirectoryProvider is implemented by hosts that know the active theme directory.
// The resolver uses it as the default root for build output.
type TemplateDirectoryProvider interface {
	TemplateDirectory() string
}

// RenderingRegistry is a HostRegistry that can print what was enqueued.
//
// Scripts and styles needed in the document head are written by RenderHead,
// the remainder by RenderFooter. Each handle is written once.
type RenderingRegistry interface {
	HostRegistry
	RenderHead(w io.Writer) error
	RenderFooter(w io.Writer) error
}
