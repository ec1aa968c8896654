package ports

// BuildOutputReader reads files produced by the front-end build.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_output_reader.go -destination=mocks/mock_build_output_reader.go -package=mocks
type BuildOutputReader interface {
	// ReadFile returns the contents of the file at path.
	// A missing file is reported with an error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)
}
