package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/encore/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_Add(t *testing.T) {
	g := domain.NewGraph()

	require.NoError(t, g.Add("a", nil))
	assert.True(t, g.Has("a"))

	err := g.Add("a", nil)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "a", zErr.Metadata()["handle"])
}

func TestGraph_Order(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*domain.Graph)
		roots       []string
		wantOrder   []string
		wantMissing []string
		errContains string
	}{
		{
			name: "Chain",
			setup: func(g *domain.Graph) {
				_ = g.Add("a", nil)
				_ = g.Add("b", []string{"a"})
				_ = g.Add("c", []string{"a", "b"})
			},
			roots:     []string{"c"},
			wantOrder: []string{"a", "b", "c"},
		},
		{
			name: "Shared dependency printed once",
			setup: func(g *domain.Graph) {
				_ = g.Add("vendor", nil)
				_ = g.Add("app", []string{"vendor"})
				_ = g.Add("admin", []string{"vendor"})
			},
			roots:     []string{"app", "admin"},
			wantOrder: []string{"vendor", "app", "admin"},
		},
		{
			name: "Missing dependency skipped",
			setup: func(g *domain.Graph) {
				_ = g.Add("app", []string{"jquery"})
			},
			roots:       []string{"app"},
			wantOrder:   []string{"app"},
			wantMissing: []string{"jquery"},
		},
		{
			name: "Self cycle",
			setup: func(g *domain.Graph) {
				_ = g.Add("a", []string{"a"})
			},
			roots:       []string{"a"},
			errContains: "cycle detected",
		},
		{
			name: "Two node cycle",
			setup: func(g *domain.Graph) {
				_ = g.Add("a", []string{"b"})
				_ = g.Add("b", []string{"a"})
			},
			roots:       []string{"a"},
			errContains: "cycle detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			tt.setup(g)

			order, missing, err := g.Order(tt.roots)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, order)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestGraph_Order_CycleMetadata(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.Add("a", []string{"b"}))
	require.NoError(t, g.Add("b", []string{"c"}))
	require.NoError(t, g.Add("c", []string{"b"}))

	_, _, err := g.Order([]string{"a"})
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "b -> c -> b", zErr.Metadata()["cycle"])
}
