package core

import (
	"fmt"
	"strings"
)

// NodeCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.numNodes
}

// EdgeCount returns the total number of edges across all vertices.
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, out := range g.adj {
		total += len(out)
	}

	return total
}

// AddEdge appends a directed edge from → to with the given weight.
//
// Both endpoints must lie in [0, n); violations return ErrVertexOutOfRange.
// Self-loops and parallel edges are permitted and preserved in insertion
// order. No weight constraint is imposed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if err := g.checkVertex(from); err != nil {
		return fmt.Errorf("core: AddEdge(from=%d): %w", from, err)
	}
	if err := g.checkVertex(to); err != nil {
		return fmt.Errorf("core: AddEdge(to=%d): %w", to, err)
	}

	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})

	return nil
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
// A vertex with no outgoing edges yields an empty (non-nil) slice, never an
// error. The copy keeps the underlying graph read-only for callers.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", v, err)
	}

	out := make([]Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// String renders the adjacency structure in the console listing format:
// a header with node and edge counts, then one aligned line per vertex.
func (g *Graph) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Directed Weighted Graph: nodes=%d, edges=%d\n", g.numNodes, g.EdgeCount())
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for v := 0; v < g.numNodes; v++ {
		fmt.Fprintf(&b, "%3d:", v)

		out := g.adj[v]
		if len(out) == 0 {
			b.WriteString("  (no outgoing edges)\n")
			continue
		}

		b.WriteString(" ")
		for i, e := range out {
			fmt.Fprintf(&b, "-> %d(w=%d)", e.To, e.Weight)
			if i < len(out)-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", 40))

	return b.String()
}

// checkVertex validates a vertex index against [0, n).
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.numNodes {
		return ErrVertexOutOfRange
	}

	return nil
}
