// Package dfs - visitation states and sentinel errors shared by the path
// and cycle walkers.
package dfs

import "errors"

// VertexState values for three-color marking during cycle detection.
// FindPath needs only the White/Black distinction.
const (
	White = iota // not yet visited
	Gray         // on the active recursion stack
	Black        // fully explored, never re-entered
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindPath,
	// PathCost, or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates a query endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("dfs: vertex index out of range")

	// ErrNotAdjacent indicates PathCost was given consecutive vertices with
	// no connecting edge. Only paths produced by FindPath are valid input;
	// anything else is a caller bug surfaced loudly.
	ErrNotAdjacent = errors.New("dfs: consecutive path vertices not adjacent")
)
