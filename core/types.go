// Package core - Edge, Graph, sentinel errors, and the NewGraph-equivalent
// constructor for the index-based model.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeCount indicates New was called with a negative count.
	ErrInvalidNodeCount = errors.New("core: invalid node count")

	// ErrVertexOutOfRange indicates an operation referenced a vertex index
	// outside [0, n). Violating this precondition is an implementation
	// error in the caller; it is reported loudly, never absorbed.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge is a directed, weighted connection to another vertex.
// The source is implicit: an Edge lives only in its source vertex's
// outgoing list and holds no back reference.
type Edge struct {
	// To is the destination vertex index, always in [0, n).
	To int

	// Weight is the traversal cost. The generator restricts itself to
	// [1, 20] but the model imposes no constraint.
	Weight int64
}

// String renders the edge in the report token format, e.g. "(3, w=10)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, w=%d)", e.To, e.Weight)
}

// Graph is a directed weighted multigraph over vertices 0..n-1.
// The zero value is an empty graph with no vertices; prefer New.
type Graph struct {
	numNodes int
	adj      [][]Edge // adj[v] = outgoing edges of v, in insertion order
}

// New creates a graph with n isolated vertices and no edges.
// Returns ErrInvalidNodeCount for negative n; n == 0 is a valid empty graph.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("core: New(%d): %w", n, ErrInvalidNodeCount)
	}

	return &Graph{
		numNodes: n,
		adj:      make([][]Edge, n),
	}, nil
}
