package builder

import (
	"fmt"

	"github.com/katalvlaran/bbsgraph/core"
)

// Random generates a directed weighted multigraph from src.
//
// Draw order is fixed and part of the contract:
//  1. n, the vertex count
//  2. m, the edge count
//  3. m triples of (from, to, weight), each appended immediately
//
// Duplicate edges and self-loops are kept; insertion order is exactly the
// draw order, which fixes downstream DFS behavior.
//
// Fails fast on a nil source or invalid options; propagates any source
// error wrapped with the draw it occurred in.
// Complexity: O(n + m) draws and appends.
func Random(src IntSource, opts ...Option) (*core.Graph, error) {
	// 1. Resolve and validate configuration before consuming any entropy.
	if src == nil {
		return nil, fmt.Errorf("builder: Random: %w", ErrNilSource)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("builder: Random: %w", err)
	}

	// 2. Draw the vertex count and allocate the graph.
	n, err := src.NextInt(cfg.minNodes, cfg.maxNodes)
	if err != nil {
		return nil, fmt.Errorf("builder: Random: node count draw: %w", err)
	}
	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("builder: Random: %w", err)
	}

	// 3. Draw the edge count.
	m, err := src.NextInt(n*cfg.minFactor, n*cfg.maxFactor)
	if err != nil {
		return nil, fmt.Errorf("builder: Random: edge count draw: %w", err)
	}

	// 4. Draw and append each edge in order.
	for i := 0; i < m; i++ {
		from, err := src.NextInt(0, n-1)
		if err != nil {
			return nil, fmt.Errorf("builder: Random: edge %d source draw: %w", i, err)
		}
		to, err := src.NextInt(0, n-1)
		if err != nil {
			return nil, fmt.Errorf("builder: Random: edge %d destination draw: %w", i, err)
		}
		w, err := src.NextInt(cfg.minWeight, cfg.maxWeight)
		if err != nil {
			return nil, fmt.Errorf("builder: Random: edge %d weight draw: %w", i, err)
		}
		if err := g.AddEdge(from, to, int64(w)); err != nil {
			return nil, fmt.Errorf("builder: Random: edge %d: %w", i, err)
		}
	}

	return g, nil
}
