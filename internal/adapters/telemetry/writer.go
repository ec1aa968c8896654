package telemetry

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/encore/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports vertex progress as debug log lines.
// Each vertex produces a started line, one line per logged output line and a final
// done or failed line.
type LogWriter struct {
	log ports.Logger

	mu       sync.Mutex
	names    map[string]string
	started  map[string]bool
	finished map[string]bool
}

// NewLogWriter creates a LogWriter that forwards to log.
func NewLogWriter(log ports.Logger) *LogWriter {
	return &LogWriter{
		log:      log,
		names:    make(map[string]string),
		started:  make(map[string]bool),
		finished: make(map[string]bool),
	}
}

// WriteStatus forwards the vertex and log updates in status to the logger.
func (w *LogWriter) WriteStatus(status *progrock.StatusUpdate) error {
	if status == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range status.Vertexes {
		w.names[v.Id] = v.Name

		if !w.started[v.Id] {
			w.started[v.Id] = true
			w.log.Debug(v.Name + ": started")
		}

		if v.Completed == nil || w.finished[v.Id] {
			continue
		}
		w.finished[v.Id] = true
		if v.Error != nil {
			w.log.Debug(v.Name + ": failed: " + *v.Error)
		} else {
			w.log.Debug(v.Name + ": done")
		}
	}

	for _, l := range status.Logs {
		name, ok := w.names[l.Vertex]
		if !ok {
			name = l.Vertex
		}
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if line == "" {
				continue
			}
			w.log.Debug(name + ": " + line)
		}
	}

	return nil
}

// Close implements progrock.Writer.
func (w *LogWriter) Close() error {
	return nil
}
