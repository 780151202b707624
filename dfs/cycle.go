package dfs

import (
	"fmt"

	"github.com/katalvlaran/bbsgraph/core"
)

// cycleWalker encapsulates state for one DetectCycle invocation: per-vertex
// color marks and the working buffer holding the active recursion stack.
type cycleWalker struct {
	graph *core.Graph
	state []int // White, Gray, or Black per vertex
	stack []int // vertices of the active DFS chain, root first
}

// DetectCycle searches g for any directed cycle.
//
// Every still-unvisited vertex is tried as a DFS root, covering
// disconnected components. Vertices on the active recursion stack are
// marked Gray; an edge into a Gray vertex is a back-edge and closes a
// cycle. The working buffer is then trimmed to start at that vertex,
// discarding the acyclic prefix walked before entering the cycle, and all
// further search stops.
//
// Returns (cycle, true, nil) with each vertex listed once, the closing edge
// back to the first element implicit; (nil, false, nil) when g is acyclic.
// A self-loop is a valid one-vertex cycle. Errors: ErrGraphNil only.
func DetectCycle(g *core.Graph) ([]int, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}

	w := &cycleWalker{
		graph: g,
		state: make([]int, g.NodeCount()),
		stack: make([]int, 0, g.NodeCount()),
	}

	// Try every vertex as a root; components already swept are Black.
	for v := 0; v < g.NodeCount(); v++ {
		if w.state[v] != White {
			continue
		}
		found, err := w.traverse(v)
		if err != nil {
			return nil, false, err
		}
		if found {
			return w.stack, true, nil
		}
	}

	return nil, false, nil
}

// traverse explores current's subtree. On a back-edge it trims the working
// buffer to the cycle and reports success up the chain; otherwise it
// un-grays current, pops it, and reports failure. Black vertices are never
// re-entered, so each vertex is explored at most once across all roots.
func (w *cycleWalker) traverse(current int) (bool, error) {
	// 1. Enter: current joins the recursion stack.
	w.state[current] = Gray
	w.stack = append(w.stack, current)

	// 2. Examine outgoing edges in insertion order.
	nbs, err := w.graph.Neighbors(current)
	if err != nil {
		return false, fmt.Errorf("dfs: Neighbors(%d): %w", current, err)
	}
	for _, e := range nbs {
		switch w.state[e.To] {
		case White:
			found, err := w.traverse(e.To)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		case Gray:
			// Back-edge: e.To is on the active chain, the cycle runs from
			// its stack position through current. Drop the prefix.
			w.stack = w.stack[indexOf(w.stack, e.To):]

			return true, nil
		}
	}

	// 3. Exit: subtree exhausted without a cycle.
	w.state[current] = Black
	w.stack = w.stack[:len(w.stack)-1]

	return false, nil
}

// indexOf returns the first position of val in s, or -1 if absent.
func indexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
