package dfs

import (
	"fmt"

	"github.com/katalvlaran/bbsgraph/core"
)

// pathWalker encapsulates state for one FindPath invocation: the graph, the
// target, the visited marks, and the shared path buffer that grows on entry
// and shrinks on backtrack.
type pathWalker struct {
	graph   *core.Graph
	end     int
	visited []bool
	path    []int
}

// FindPath searches for any path from start to end by depth-first descent
// in edge-insertion order.
//
// Returns (path, true, nil) on success, where path begins with start and
// ends with end; (nil, false, nil) when end is unreachable. start == end
// succeeds immediately with the single-element path. The first successful
// branch wins: no further edges are explored once end is reached.
//
// Errors: ErrGraphNil for a nil graph, ErrVertexOutOfRange for endpoints
// outside [0, n). Absence of a path is not an error.
func FindPath(g *core.Graph, start, end int) ([]int, bool, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if start < 0 || start >= g.NodeCount() {
		return nil, false, fmt.Errorf("dfs: FindPath(start=%d): %w", start, ErrVertexOutOfRange)
	}
	if end < 0 || end >= g.NodeCount() {
		return nil, false, fmt.Errorf("dfs: FindPath(end=%d): %w", end, ErrVertexOutOfRange)
	}

	// 2. Walk.
	w := &pathWalker{
		graph:   g,
		end:     end,
		visited: make([]bool, g.NodeCount()),
		path:    make([]int, 0, g.NodeCount()),
	}
	found, err := w.traverse(start)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return w.path, true, nil
}

// traverse visits current, growing the shared path buffer. Success is
// propagated as a boolean so the first hit unwinds every level without
// exploring further siblings; failure pops current before reporting.
func (w *pathWalker) traverse(current int) (bool, error) {
	// 1. Mark and record.
	w.visited[current] = true
	w.path = append(w.path, current)

	// 2. Target reached: the path buffer as-is is the answer.
	if current == w.end {
		return true, nil
	}

	// 3. Explore outgoing edges in insertion order.
	nbs, err := w.graph.Neighbors(current)
	if err != nil {
		return false, fmt.Errorf("dfs: Neighbors(%d): %w", current, err)
	}
	for _, e := range nbs {
		if w.visited[e.To] {
			continue
		}
		found, err := w.traverse(e.To)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// 4. Dead end: backtrack.
	w.path = w.path[:len(w.path)-1]

	return false, nil
}

// PathCost sums the edge weights along a path produced by FindPath.
//
// For each consecutive pair the first edge in insertion order whose
// destination matches is charged. When parallel edges connect the same
// pair, that first-match rule is the tie-break; it is preserved for
// compatibility even though DFS may have walked a later parallel edge.
//
// A valid single-vertex or empty path costs 0. Consecutive vertices with no
// connecting edge violate the caller contract and return ErrNotAdjacent.
func PathCost(g *core.Graph, path []int) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var cost int64
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]

		nbs, err := g.Neighbors(from)
		if err != nil {
			return 0, fmt.Errorf("dfs: PathCost: Neighbors(%d): %w", from, err)
		}

		matched := false
		for _, e := range nbs {
			if e.To == to {
				cost += e.Weight
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("dfs: PathCost: %d -> %d: %w", from, to, ErrNotAdjacent)
		}
	}

	return cost, nil
}
