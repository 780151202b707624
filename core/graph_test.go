package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbsgraph/core"
)

// TestNew_ValidCounts covers zero and positive vertex counts.
func TestNew_ValidCounts(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	g, err = core.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestNew_NegativeCount verifies the ErrInvalidNodeCount guard.
func TestNew_NegativeCount(t *testing.T) {
	_, err := core.New(-1)
	assert.ErrorIs(t, err, core.ErrInvalidNodeCount)
}

// TestAddEdge_PreservesInsertionOrder pins the ordering invariant that DFS
// exploration depends on, including parallel edges and a self-loop.
func TestAddEdge_PreservesInsertionOrder(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 2, 9)) // parallel edge, later in order
	require.NoError(t, g.AddEdge(0, 0, 1)) // self-loop

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{To: 2, Weight: 5},
		{To: 1, Weight: 3},
		{To: 2, Weight: 9},
		{To: 0, Weight: 1},
	}, out)
	assert.Equal(t, 4, g.EdgeCount())
}

// TestAddEdge_BoundsChecked verifies both endpoints are validated.
func TestAddEdge_BoundsChecked(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(3, 0, 1), core.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges must not be stored")
}

// TestNeighbors_EmptyAndIsolated verifies sink vertices yield an empty
// slice, not an error, and that the returned slice is a defensive copy.
func TestNeighbors_EmptyAndIsolated(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))

	out, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)

	// Mutating the copy must not touch the graph.
	out, err = g.Neighbors(0)
	require.NoError(t, err)
	out[0].Weight = 99

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), again[0].Weight)
}

// TestNeighbors_OutOfRange verifies bad indices fail loudly.
func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Neighbors(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestEdgeString pins the report token format used by the snapshot writer.
func TestEdgeString(t *testing.T) {
	e := core.Edge{To: 3, Weight: 10}
	assert.Equal(t, "(3, w=10)", e.String())
}

// TestGraphString covers the console listing: header counts, aligned vertex
// labels, and the no-outgoing-edges marker.
func TestGraphString(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(0, 1, 3))

	s := g.String()
	assert.Contains(t, s, "nodes=3, edges=2")
	assert.Contains(t, s, "  0: -> 2(w=5), -> 1(w=3)")
	assert.Contains(t, s, "  1:  (no outgoing edges)")
	assert.Equal(t, 5, strings.Count(s, "\n"), "header, rule, three vertex lines")
}
