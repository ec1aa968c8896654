// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/encore/internal/core/ports"
)

// messager describes an error that can report its own message without the chain,
// as zerr.Error does.
type messager interface {
	Message() string
}

// metadataer describes an error carrying key/value context, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing human-readable text to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination, keeping the current format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and text logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose lowers the level to debug when enabled.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// rebuild replaces the slog handler. Callers must hold mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(slog.NewTextHandler(l.output, opts))
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its causes and any metadata attached along the chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	messages, metadata := collectErrorEntries(err)
	l.logger.Error(formatErrorEntries(messages), metadataAttrs(metadata)...)
}

// collectErrorEntries walks the error chain, including joined errors, and returns one message
// per layer together with the merged metadata. Outer layers win on metadata key conflicts.
func collectErrorEntries(err error) ([]string, map[string]any) {
	var messages []string
	metadata := make(map[string]any)

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, e := range joined.Unwrap() {
					walk(e)
				}
				return
			}

			if md, ok := current.(metadataer); ok {
				for k, v := range md.Metadata() {
					if _, exists := metadata[k]; !exists {
						metadata[k] = v
					}
				}
			}

			m, ok := current.(messager)
			if !ok {
				// Standard error: its message already includes the rest of the chain.
				messages = append(messages, current.Error())
				return
			}
			if msg := m.Message(); msg != "" {
				messages = append(messages, msg)
			}
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	return messages, metadata
}

// formatErrorEntries renders the first message as the error and the rest as causes.
func formatErrorEntries(messages []string) string {
	if len(messages) == 0 {
		return ""
	}

	lines := []string{messages[0]}
	for _, msg := range messages[1:] {
		lines = append(lines, "caused by: "+msg)
	}
	return strings.Join(lines, "\n")
}

func metadataAttrs(metadata map[string]any) []any {
	attrs := make([]any, 0, len(metadata))
	for _, k := range slices.Sorted(maps.Keys(metadata)) {
		attrs = append(attrs, slog.Any(k, metadata[k]))
	}
	return attrs
}
