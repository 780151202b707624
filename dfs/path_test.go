package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbsgraph/core"
	"github.com/katalvlaran/bbsgraph/dfs"
)

// buildGraph constructs a graph from (from, to, weight) triples in order.
func buildGraph(t *testing.T, n int, edges [][3]int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], int64(e[2])))
	}

	return g
}

// TestFindPath_Chain: edges 0→2(w=5) and 2→5(w=9) give path [0,2,5] with
// cost 14.
func TestFindPath_Chain(t *testing.T) {
	g := buildGraph(t, 6, [][3]int{{0, 2, 5}, {2, 5, 9}})

	path, ok, err := dfs.FindPath(g, 0, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 5}, path)

	cost, err := dfs.PathCost(g, path)
	require.NoError(t, err)
	assert.Equal(t, int64(14), cost)
}

// TestFindPath_SameStartEnd verifies start == end short-circuits to the
// single-element path without any traversal, even with no edges at all.
func TestFindPath_SameStartEnd(t *testing.T) {
	g := buildGraph(t, 4, nil)

	path, ok, err := dfs.FindPath(g, 2, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{2}, path)

	cost, err := dfs.PathCost(g, path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
}

// TestFindPath_Unreachable covers the edge-free graph scenario: absence is
// an ordinary (nil, false, nil) outcome.
func TestFindPath_Unreachable(t *testing.T) {
	g := buildGraph(t, 4, nil)

	path, ok, err := dfs.FindPath(g, 0, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

// TestFindPath_Backtracks forces the first branch into a dead end so the
// walker must pop it and succeed through the second branch.
// 0 → 1 (dead end), 0 → 2 → 3.
func TestFindPath_Backtracks(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {0, 2, 1}, {2, 3, 1}})

	path, ok, err := dfs.FindPath(g, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 3}, path, "dead-end vertex 1 must not linger in the path")
}

// TestFindPath_InsertionOrderWins pins which of two valid paths is found:
// the one through the earlier-inserted edge.
func TestFindPath_InsertionOrderWins(t *testing.T) {
	// Both 0→1→3 and 0→2→3 exist; 0→1 was inserted first.
	g := buildGraph(t, 4, [][3]int{{0, 1, 9}, {0, 2, 1}, {1, 3, 9}, {2, 3, 1}})

	path, ok, err := dfs.FindPath(g, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3}, path, "first-found is defined by edge-insertion order")
}

// TestFindPath_SurvivesCycles verifies visited marking terminates search on
// a graph with a directed cycle on the way to the target.
func TestFindPath_SurvivesCycles(t *testing.T) {
	g := buildGraph(t, 4, [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 2, 1}, {2, 3, 1}})

	path, ok, err := dfs.FindPath(g, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

// TestFindPath_Validation covers nil graphs and out-of-range endpoints.
func TestFindPath_Validation(t *testing.T) {
	_, _, err := dfs.FindPath(nil, 0, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildGraph(t, 3, nil)
	_, _, err = dfs.FindPath(g, -1, 2)
	assert.ErrorIs(t, err, dfs.ErrVertexOutOfRange)
	_, _, err = dfs.FindPath(g, 0, 3)
	assert.ErrorIs(t, err, dfs.ErrVertexOutOfRange)
}

// TestPathCost_ParallelEdgesFirstMatch pins the costing tie-break: when
// parallel edges connect the same pair, the first in insertion order is
// charged — even if DFS walked a later one. Preserved deliberately for
// snapshot compatibility; this test exists to make any change visible.
func TestPathCost_ParallelEdgesFirstMatch(t *testing.T) {
	g := buildGraph(t, 2, [][3]int{{0, 1, 3}, {0, 1, 11}})

	cost, err := dfs.PathCost(g, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
}

// TestPathCost_NotAdjacent verifies a malformed path fails loudly instead
// of being costed silently.
func TestPathCost_NotAdjacent(t *testing.T) {
	g := buildGraph(t, 3, [][3]int{{0, 1, 1}})

	_, err := dfs.PathCost(g, []int{0, 2})
	assert.ErrorIs(t, err, dfs.ErrNotAdjacent)
}
