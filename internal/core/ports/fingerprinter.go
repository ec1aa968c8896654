package ports

// Fingerprinter derives a version tag from the build descriptors in an output directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint hashes the manifest and entrypoints files found in outputDir.
	Fingerprint(outputDir string) (string, error)
}
