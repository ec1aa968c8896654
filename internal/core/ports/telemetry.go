package ports

import "context"

// Telemetry records units of work as vertices of a progress tape.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex named name and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log appends a line to the vertex output.
	Log(msg string)
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
