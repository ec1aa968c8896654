package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/encore/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	os.Stderr = originalStderr

	return output
}

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
	})

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("info message")
	lg.Warn("warn message")
	lg.Debug("hidden debug message")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "warn message")
	assert.NotContains(t, out, "hidden debug message")

	lg.SetVerbose(true)
	lg.Debug("visible debug message")
	assert.Contains(t, buf.String(), "visible debug message")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(nil)
	assert.Empty(t, buf.String())

	lg.Error(os.ErrPermission)
	assert.Contains(t, buf.String(), "permission denied")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLogger_Error_JSONMetadata(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	err := errors.Join(
		zerr.New("configuration error"),
		zerr.With(zerr.New("manifest does not exist"), "path", "/theme/build/manifest.json"),
	)
	lg.Error(err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "configuration error\ncaused by: manifest does not exist", record["msg"])
	assert.Equal(t, "/theme/build/manifest.json", record["path"])
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: map[string]any{},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: map[string]any{},
		},
		{
			name: "metadata merged outer first",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "key", "inner_val")
				outer := zerr.Wrap(inner, "outer")
				return zerr.With(outer, "key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: map[string]any{"key": "outer_val"},
		},
		{
			name:         "metadata on standard error",
			err:          zerr.With(errors.New("disk full"), "path", "/theme/build"),
			wantMessages: []string{"disk full"},
			wantMetadata: map[string]any{"path": "/theme/build"},
		},
		{
			name: "joined errors",
			err: errors.Join(
				zerr.New("invalid argument"),
				zerr.With(zerr.New("bad kind"), "kind", "page"),
			),
			wantMessages: []string{"invalid argument", "bad kind"},
			wantMetadata: map[string]any{"kind": "page"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, metadata := logger.CollectErrorEntries(tt.err)
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	assert.Empty(t, logger.FormatErrorEntries(nil))
	assert.Equal(t, "only", logger.FormatErrorEntries([]string{"only"}))
	assert.Equal(t,
		"outer\ncaused by: middle\ncaused by: root",
		strings.TrimSpace(logger.FormatErrorEntries([]string{"outer", "middle", "root"})),
	)
}
