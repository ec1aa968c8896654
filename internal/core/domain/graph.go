package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph of registered asset handles.
type Graph struct {
	deps map[string][]string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		deps: make(map[string][]string),
	}
}

// Add adds a handle with its dependencies to the graph.
// It returns an error if the handle already exists.
func (g *Graph) Add(handle string, deps []string) error {
	if _, exists := g.deps[handle]; exists {
		return zerr.With(ErrHandleAlreadyExists, "handle", handle)
	}
	g.deps[handle] = slices.Clone(deps)
	return nil
}

// Has reports whether handle has been added.
func (g *Graph) Has(handle string) bool {
	_, ok := g.deps[handle]
	return ok
}

// Order returns the handles needed to load roots, dependencies first, each once.
// Roots and dependencies are visited in the order given, so the result is deterministic.
// Handles that are not in the graph are skipped and reported in missing.
func (g *Graph) Order(roots []string) (order, missing []string, err error) {
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		deps, exists := g.deps[u]
		if !exists {
			if !slices.Contains(missing, u) {
				missing = append(missing, u)
			}
			visited[u] = 2
			return nil
		}

		visited[u] = 1
		path = append(path, u)

		for _, dep := range deps {
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, root := range roots {
		if visited[root] == 0 {
			if err := visit(root); err != nil {
				return nil, nil, err
			}
		}
	}

	return order, missing, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	cyclePath := ""
	startIdx := slices.Index(path, dep)
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i] + " -> "
	}
	cyclePath += dep
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}
