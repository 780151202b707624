package session_test

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bbsgraph/bbs"
	"github.com/katalvlaran/bbsgraph/session"
	"github.com/katalvlaran/bbsgraph/snapshot"
)

// newSession builds a deterministic session saving into a temp dir.
func newSession(t *testing.T, seed int64) *session.Session {
	t.Helper()
	src, err := bbs.New(big.NewInt(10007), big.NewInt(10039), big.NewInt(seed))
	require.NoError(t, err)

	s, err := session.New(
		session.WithSource(src),
		session.WithSaveDir(filepath.Join(t.TempDir(), "saved_graphs")),
	)
	require.NoError(t, err)

	return s
}

// TestQueriesBeforeGenerate verifies every query reports ErrNoGraph until
// the first graph exists.
func TestQueriesBeforeGenerate(t *testing.T) {
	s := newSession(t, 101)

	_, err := s.Describe()
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, err = s.FindPath(0, 1)
	assert.ErrorIs(t, err, session.ErrNoGraph)
	_, err = s.DetectCycle()
	assert.ErrorIs(t, err, session.ErrNoGraph)
	assert.Nil(t, s.Graph())
}

// TestGenerate_FirstCallSavesNothing verifies no snapshot is attempted when
// there is no previous graph.
func TestGenerate_FirstCallSavesNothing(t *testing.T) {
	s := newSession(t, 101)

	report, err := s.Generate()
	require.NoError(t, err)
	assert.Empty(t, report.BackupPath)
	assert.NoError(t, report.SaveErr)
	require.NotNil(t, s.Graph())
}

// TestGenerate_SnapshotsPreviousGraph runs two generations with a path
// query in between and checks the backup file holds the first graph and
// the cached path.
func TestGenerate_SnapshotsPreviousGraph(t *testing.T) {
	s := newSession(t, 101)

	_, err := s.Generate()
	require.NoError(t, err)
	first := s.Graph()

	// Cache a result (found or not, it is recorded for the snapshot).
	pr, err := s.FindPath(0, first.NodeCount()-1)
	require.NoError(t, err)

	report, err := s.Generate()
	require.NoError(t, err)
	require.NoError(t, report.SaveErr)
	require.NotEmpty(t, report.BackupPath)

	f, err := os.Open(report.BackupPath)
	require.NoError(t, err)
	defer f.Close()

	snap, err := snapshot.Read(f)
	require.NoError(t, err)
	assert.Equal(t, first.NodeCount(), snap.Graph.NodeCount())
	if pr.Found {
		assert.Equal(t, pr.Path, snap.LastPath)
	} else {
		assert.Nil(t, snap.LastPath)
	}

	// The replacement is a different instance with cleared caches: a third
	// generation must snapshot the second graph with None results.
	report, err = s.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, report.BackupPath)
	data, err := os.ReadFile(report.BackupPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "===== Last Path =====\nNone")
}

// TestGenerate_SaveFailureNonFatal points the save dir at a regular file
// so snapshotting fails, and requires generation to proceed anyway.
func TestGenerate_SaveFailureNonFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	src, err := bbs.New(big.NewInt(10007), big.NewInt(10039), big.NewInt(101))
	require.NoError(t, err)
	s, err := session.New(
		session.WithSource(src),
		session.WithSaveDir(filepath.Join(blocker, "nested")),
	)
	require.NoError(t, err)

	_, err = s.Generate()
	require.NoError(t, err)
	before := s.Graph()

	report, err := s.Generate()
	require.NoError(t, err, "a failed snapshot must not block regeneration")
	assert.Error(t, report.SaveErr)
	assert.Empty(t, report.BackupPath)
	assert.NotSame(t, before, s.Graph())
}

// TestFindPath_SameVertex covers the immediate start == end answer through
// the session layer.
func TestFindPath_SameVertex(t *testing.T) {
	s := newSession(t, 101)
	_, err := s.Generate()
	require.NoError(t, err)

	pr, err := s.FindPath(0, 0)
	require.NoError(t, err)
	require.True(t, pr.Found)
	assert.Equal(t, []int{0}, pr.Path)
	assert.Equal(t, int64(0), pr.Cost)
}

// TestDescribe_RendersCurrentGraph sanity-checks the listing shape.
func TestDescribe_RendersCurrentGraph(t *testing.T) {
	s := newSession(t, 101)
	_, err := s.Generate()
	require.NoError(t, err)

	out, err := s.Describe()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Directed Weighted Graph:"))
}

// TestFindPath_OutOfRangeSurfaces verifies dfs validation errors pass
// through the session wrapper.
func TestFindPath_OutOfRangeSurfaces(t *testing.T) {
	s := newSession(t, 101)
	_, err := s.Generate()
	require.NoError(t, err)

	_, err = s.FindPath(-1, 0)
	assert.Error(t, err)
}
