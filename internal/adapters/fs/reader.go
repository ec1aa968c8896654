// Package fs implements build output access on top of the filesystem.
package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/encore/internal/core/ports"
)

var (
	_ ports.BuildOutputReader = (*Reader)(nil)
	_ ports.BuildOutputReader = (*FSReader)(nil)
)

// Reader implements ports.BuildOutputReader using the operating system filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile reads the entire file at path.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the configured output directory
	return os.ReadFile(path)
}

// FSReader implements ports.BuildOutputReader on top of an fs.FS mounted at Root.
// It serves embedded build output and test fixtures.
type FSReader struct {
	FS   iofs.FS
	Root string // simulated root path
}

// NewFSReader creates a new FSReader serving fsys as if it were mounted at root.
func NewFSReader(root string, fsys iofs.FS) *FSReader {
	return &FSReader{
		FS:   fsys,
		Root: root,
	}
}

// ReadFile reads the entire file at path.
func (r *FSReader) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(r.FS, r.toRelPath(path))
}

// toRelPath converts an absolute path to a slash-separated path within the filesystem.
// Paths outside Root are returned unchanged so fs operations fail with "file not found".
func (r *FSReader) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(filepath.Clean(absPath))
	}

	if r.Root != "/" && absPath != r.Root && !strings.HasPrefix(absPath, r.Root+string(filepath.Separator)) {
		return absPath
	}

	rel := strings.TrimPrefix(absPath, r.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return "."
	}
	return filepath.ToSlash(rel)
}
