package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/encore/internal/core/domain"
)

func TestAssetOptions_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := domain.AssetOptions{}.Normalize()

		assert.Equal(t, domain.AssetConfig{
			JS:       true,
			CSS:      true,
			JSDeps:   []string{},
			CSSDeps:  []string{},
			InFooter: true,
			Media:    "all",
		}, cfg)
	})

	t.Run("css disabled", func(t *testing.T) {
		cfg := domain.AssetOptions{CSS: domain.Ptr(false)}.Normalize()

		assert.Equal(t, domain.AssetConfig{
			JS:       true,
			CSS:      false,
			JSDeps:   []string{},
			CSSDeps:  []string{},
			InFooter: true,
			Media:    "all",
		}, cfg)
	})

	t.Run("overrides and extra keys", func(t *testing.T) {
		opts := domain.AssetOptions{
			JS:       domain.Ptr(false),
			JSDeps:   []string{"jquery"},
			CSSDeps:  []string{"theme"},
			InFooter: domain.Ptr(false),
			Media:    domain.Ptr("print"),
			Extra:    map[string]any{"strategy": "defer"},
		}

		cfg := opts.Normalize()

		assert.False(t, cfg.JS)
		assert.True(t, cfg.CSS)
		assert.Equal(t, []string{"jquery"}, cfg.JSDeps)
		assert.Equal(t, []string{"theme"}, cfg.CSSDeps)
		assert.False(t, cfg.InFooter)
		assert.Equal(t, "print", cfg.Media)
		assert.Equal(t, "defer", cfg.Extra["strategy"])
	})

	t.Run("does not alias caller slices", func(t *testing.T) {
		deps := []string{"jquery"}
		cfg := domain.AssetOptions{JSDeps: deps}.Normalize()
		cfg.JSDeps[0] = "changed"

		assert.Equal(t, "jquery", deps[0])
	})

	t.Run("idempotent", func(t *testing.T) {
		cfg := domain.AssetOptions{CSS: domain.Ptr(false), Media: domain.Ptr("screen")}.Normalize()

		assert.Equal(t, cfg, cfg.Options().Normalize())
	})
}

func TestAssetOptions_Merge(t *testing.T) {
	base := domain.AssetOptions{
		JSDeps: []string{"jquery"},
		Media:  domain.Ptr("screen"),
		Extra:  map[string]any{"a": 1, "b": 1},
	}
	override := domain.AssetOptions{
		CSS:   domain.Ptr(false),
		Media: domain.Ptr("print"),
		Extra: map[string]any{"b": 2},
	}

	merged := base.Merge(override)

	cfg := merged.Normalize()
	assert.Equal(t, []string{"jquery"}, cfg.JSDeps)
	assert.False(t, cfg.CSS)
	assert.Equal(t, "print", cfg.Media)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, cfg.Extra)
	assert.Equal(t, map[string]any{"a": 1, "b": 1}, base.Extra)
}

func TestAssetKind_Valid(t *testing.T) {
	assert.True(t, domain.KindScript.Valid())
	assert.True(t, domain.KindStyle.Valid())
	assert.False(t, domain.AssetKind("page").Valid())
}

func TestConfigurationError(t *testing.T) {
	err := domain.ConfigurationError(domain.ErrManifestNotFound)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
	assert.False(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.ErrorContains(t, err, domain.ErrManifestNotFound.Error())
}

func TestEntrypoints_Lookup(t *testing.T) {
	var nilEntrypoints *domain.Entrypoints
	_, ok := nilEntrypoints.Lookup("app")
	assert.False(t, ok)

	eps := &domain.Entrypoints{EntryPoints: map[string]*domain.EntryPoint{
		"app":   {JS: []string{"a.js"}},
		"empty": nil,
	}}
	ep, ok := eps.Lookup("app")
	require.True(t, ok)
	assert.Equal(t, []string{"a.js"}, ep.JS)

	_, ok = eps.Lookup("empty")
	assert.False(t, ok)
}
