package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/encore/cmd/encore/commands"
	"go.trai.ch/encore/internal/app"
	"go.trai.ch/encore/internal/build"
	"go.trai.ch/encore/internal/core/domain"
)

type mockApp struct {
	assetsFunc   func(ctx context.Context, name, entryPoint string, opts app.Options) error
	renderFunc   func(ctx context.Context, name string, entryPoints []string, opts app.Options) error
	manifestFunc func(ctx context.Context, name, assetPath string, opts app.Options) error
	checkFunc    func(ctx context.Context, names []string, opts app.Options) error
}

func (m *mockApp) Assets(ctx context.Context, name, entryPoint string, opts app.Options) error {
	if m.assetsFunc != nil {
		return m.assetsFunc(ctx, name, entryPoint, opts)
	}
	return nil
}

func (m *mockApp) Render(ctx context.Context, name string, entryPoints []string, opts app.Options) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, name, entryPoints, opts)
	}
	return nil
}

func (m *mockApp) Manifest(ctx context.Context, name, assetPath string, opts app.Options) error {
	if m.manifestFunc != nil {
		return m.manifestFunc(ctx, name, assetPath, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, names []string, opts app.Options) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, names, opts)
	}
	return nil
}

func TestCommands_Assets(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.Options
		var capturedName, capturedEntry string

		mock := &mockApp{
			assetsFunc: func(_ context.Context, name, entryPoint string, opts app.Options) error {
				capturedName, capturedEntry, capturedOpts = name, entryPoint, opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"assets", "main", "app",
			"--config", "theme/encore.yaml",
			"--base-url", "/static/",
			"--asset-version", "auto",
			"--no-css",
			"--js-dep", "jquery", "--js-dep", "wp-i18n",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "main", capturedName)
		assert.Equal(t, "app", capturedEntry)
		assert.Equal(t, "theme/encore.yaml", capturedOpts.ConfigPath)
		assert.Equal(t, "/static/", capturedOpts.BaseURL)
		assert.Equal(t, "auto", capturedOpts.Version)
		assert.Equal(t, domain.AssetOptions{
			CSS:    domain.Ptr(false),
			JSDeps: []string{"jquery", "wp-i18n"},
		}, capturedOpts.Asset)
	})

	t.Run("defaults leave entry options alone", func(t *testing.T) {
		var capturedOpts app.Options
		mock := &mockApp{
			assetsFunc: func(_ context.Context, _, _ string, opts app.Options) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"assets", "main", "app"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.Options{}, capturedOpts)
	})

	t.Run("requires build and entry", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"assets", "main"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Render(t *testing.T) {
	t.Run("passes every entry point", func(t *testing.T) {
		var capturedEntries []string
		var capturedOpts app.Options

		mock := &mockApp{
			renderFunc: func(_ context.Context, name string, entryPoints []string, opts app.Options) error {
				assert.Equal(t, "main", name)
				capturedEntries, capturedOpts = entryPoints, opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"render", "main", "app", "admin", "--in-footer=false", "--media", "print"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"app", "admin"}, capturedEntries)
		assert.Equal(t, domain.Ptr(false), capturedOpts.Asset.InFooter)
		assert.Equal(t, domain.Ptr("print"), capturedOpts.Asset.Media)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ string, _ []string, _ app.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"render", "main", "app"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no entry points provided", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(_ context.Context, _ string, _ []string, _ app.Options) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"render", "main"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Manifest(t *testing.T) {
	called := false
	mock := &mockApp{
		manifestFunc: func(_ context.Context, name, assetPath string, opts app.Options) error {
			called = true
			assert.Equal(t, "main", name)
			assert.Equal(t, "build/app.js", assetPath)
			assert.Equal(t, "encore.yaml", opts.ConfigPath)
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"manifest", "-c", "encore.yaml", "main", "build/app.js"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Check(t *testing.T) {
	t.Run("passes build names", func(t *testing.T) {
		var capturedNames []string
		mock := &mockApp{
			checkFunc: func(_ context.Context, names []string, _ app.Options) error {
				capturedNames = names
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check", "main", "legacy"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"main", "legacy"}, capturedNames)
	})

	t.Run("shows usage when no builds provided", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ []string, _ app.Options) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "encore version "+build.Version)
}

type recordingLogger struct {
	verbose, json bool
}

func (l *recordingLogger) SetVerbose(enable bool) { l.verbose = enable }
func (l *recordingLogger) SetJSON(enable bool)    { l.json = enable }

func TestCommands_LogFlags(t *testing.T) {
	log := &recordingLogger{}
	cli := commands.New(&mockApp{})
	cli.SetLogger(log)
	cli.SetArgs([]string{"check", "main", "-v", "--log-json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.verbose)
	assert.True(t, log.json)
}
