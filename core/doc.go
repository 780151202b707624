// Package core defines the directed, weighted multigraph at the heart of
// bbsgraph: a fixed vertex count and one ordered outgoing-edge list per
// vertex.
//
// What:
//
//   - Edge: destination index plus integer weight, owned by the source
//     vertex's list; String renders the "(to, w=weight)" snapshot token.
//   - Graph: New(n) creates n isolated vertices indexed 0..n-1; AddEdge
//     appends, Neighbors reads back in insertion order.
//
// Model rules:
//
//   - Vertex count is immutable after construction.
//   - Self-loops and parallel edges are permitted; both matter downstream
//     (a self-loop is a valid one-vertex cycle, parallel edges affect the
//     path-costing tie-break).
//   - Insertion order of edges is significant: it fixes DFS exploration
//     order and therefore which path or cycle is found first.
//   - A graph is effectively immutable once a traversal inspects it; the
//     builder fully replaces, never mutates, on regeneration.
//
// Concurrency:
//   - None. The system is single-threaded by design; Graph carries no locks.
//
// Errors:
//
//   - ErrInvalidNodeCount  New called with a negative vertex count
//   - ErrVertexOutOfRange  an endpoint outside [0, n)
package core
