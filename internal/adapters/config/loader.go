// Package config provides the project configuration loader for encore.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/encore/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override encore.yaml values.
const (
	EnvBaseURL    = "ENCORE_BASE_URL"
	EnvVersion    = "ENCORE_VERSION"
	EnvOutputPath = "ENCORE_OUTPUT_PATH"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds encore.yaml in cwd or the closest parent directory and loads it.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// LoadFile loads the project described by the config file at configPath.
//
// Values from a .env file next to the config file override the YAML values,
// and variables set in the process environment override both.
func (l *Loader) LoadFile(configPath string) (*domain.Project, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var encorefile Encorefile
	if err := readAndUnmarshalYAML(absPath, &encorefile); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if err := applyEnvOverrides(filepath.Join(filepath.Dir(absPath), domain.EnvFileName), &encorefile); err != nil {
		return nil, err
	}

	if encorefile.OutputPath == "" {
		return nil, zerr.With(domain.ErrMissingOutputPath, "path", absPath)
	}

	if encorefile.BaseURL != "" && !strings.HasSuffix(encorefile.BaseURL, "/") {
		l.Logger.Warn(fmt.Sprintf("base_url %q has no trailing slash, asset URLs are appended verbatim", encorefile.BaseURL))
	}

	return &domain.Project{
		Root:       resolveRoot(absPath, encorefile.Root),
		OutputPath: encorefile.OutputPath,
		Version:    encorefile.Version,
		BaseURL:    encorefile.BaseURL,
		Entries:    buildEntries(encorefile.Entries),
	}, nil
}

func findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// applyEnvOverrides layers the .env file at envPath, then the process environment, over f.
// A missing .env file is not an error.
func applyEnvOverrides(envPath string, f *Encorefile) error {
	dotenv, err := godotenv.Read(envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", envPath)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvBaseURL); ok {
		f.BaseURL = v
	}
	if v, ok := lookup(EnvVersion); ok {
		f.Version = v
	}
	if v, ok := lookup(EnvOutputPath); ok {
		f.OutputPath = v
	}
	return nil
}

func buildEntries(dtos map[string]*EntryDTO) map[string]domain.AssetOptions {
	if len(dtos) == 0 {
		return nil
	}

	entries := make(map[string]domain.AssetOptions, len(dtos))
	for name, dto := range dtos {
		if dto == nil {
			entries[name] = domain.AssetOptions{}
			continue
		}
		entries[name] = domain.AssetOptions{
			JS:       dto.JS,
			CSS:      dto.CSS,
			JSDeps:   dto.JSDep,
			CSSDeps:  dto.CSSDep,
			InFooter: dto.InFooter,
			Media:    dto.Media,
			Extra:    dto.Extra,
		}
	}
	return entries
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrConfigNotFound
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
