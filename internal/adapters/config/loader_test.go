package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/encore/internal/adapters/config"
	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	configPath := createFile(t, rootDir, domain.ConfigFileName, `
root: theme
output_path: build
version: "1.4.0"
base_url: https://cdn.example/build/
entries:
  app:
    js_dep: [jquery]
    css: false
    media: screen
    strategy: defer
  admin:
`)

	project, err := config.NewLoader(mockLogger).LoadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(rootDir, "theme"), project.Root)
	assert.Equal(t, "build", project.OutputPath)
	assert.Equal(t, "1.4.0", project.Version)
	assert.Equal(t, "https://cdn.example/build/", project.BaseURL)
	assert.Equal(t, filepath.Join(rootDir, "theme", "build"), project.OutputDir())

	app := project.EntryOptions("app").Normalize()
	assert.Equal(t, []string{"jquery"}, app.JSDeps)
	assert.False(t, app.CSS)
	assert.True(t, app.JS)
	assert.Equal(t, "screen", app.Media)
	assert.Equal(t, "defer", app.Extra["strategy"], "unknown keys must be passed through")

	admin := project.EntryOptions("admin").Normalize()
	assert.Equal(t, domain.AssetOptions{}.Normalize(), admin)

	assert.Equal(t, domain.AssetOptions{}, project.EntryOptions("unknown"))
}

func TestLoader_Load_DiscoversParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "output_path: dist\nbase_url: /dist/\n")

	nested := filepath.Join(rootDir, "templates", "parts")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := config.NewLoader(mockLogger).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, rootDir, project.Root)
	assert.Equal(t, "dist", project.OutputPath)
}

func TestLoader_EnvOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	configPath := createFile(t, rootDir, domain.ConfigFileName, `
output_path: build
version: "1.0.0"
base_url: https://cdn.example/build/
`)
	createFile(t, rootDir, domain.EnvFileName, "ENCORE_VERSION=2.0.0\nENCORE_BASE_URL=https://dotenv.example/build/\n")

	t.Setenv(config.EnvBaseURL, "https://process.example/build/")

	project, err := config.NewLoader(mockLogger).LoadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", project.Version, ".env overrides YAML")
	assert.Equal(t, "https://process.example/build/", project.BaseURL, "process environment overrides .env")
	assert.Equal(t, "build", project.OutputPath)
}

func TestLoader_WarnsOnBaseURLWithoutSlash(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	configPath := createFile(t, rootDir, domain.ConfigFileName, "output_path: build\nbase_url: https://cdn.example/build\n")

	_, err := config.NewLoader(mockLogger).LoadFile(configPath)
	require.NoError(t, err)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, rootDir string) string
		errContains string
	}{
		{
			name: "config not found",
			setup: func(_ *testing.T, rootDir string) string {
				return filepath.Join(rootDir, domain.ConfigFileName)
			},
			errContains: domain.ErrConfigNotFound.Error(),
		},
		{
			name: "invalid yaml",
			setup: func(t *testing.T, rootDir string) string {
				return createFile(t, rootDir, domain.ConfigFileName, "output_path: [unclosed\n")
			},
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "missing output path",
			setup: func(t *testing.T, rootDir string) string {
				return createFile(t, rootDir, domain.ConfigFileName, "version: \"1\"\n")
			},
			errContains: domain.ErrMissingOutputPath.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			rootDir := t.TempDir()
			path := tt.setup(t, rootDir)

			_, err := config.NewLoader(mockLogger).LoadFile(path)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(mockLogger).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
