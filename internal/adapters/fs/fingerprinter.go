package fs

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter hashes the build descriptors of an output directory with XXHash.
type Fingerprinter struct {
	reader ports.BuildOutputReader
}

// NewFingerprinter creates a new Fingerprinter reading through reader.
func NewFingerprinter(reader ports.BuildOutputReader) *Fingerprinter {
	return &Fingerprinter{reader: reader}
}

// Fingerprint computes a single hash over manifest.json and entrypoints.json in outputDir.
// Each file contributes its name and contents, so swapping contents between them changes the result.
func (f *Fingerprinter) Fingerprint(outputDir string) (string, error) {
	hasher := xxhash.New()

	for _, name := range []string{domain.ManifestFileName, domain.EntrypointsFileName} {
		path := filepath.Join(outputDir, name)
		data, err := f.reader.ReadFile(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrFingerprintFailed.Error()), "path", path)
		}

		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0}) // Separator
		_, _ = hasher.Write(data)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
