package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/bbsgraph/core"
)

// Sentinel errors for snapshot operations.
var (
	// ErrNilGraph indicates Write or Save was called without a graph.
	ErrNilGraph = errors.New("snapshot: graph is nil")

	// ErrMalformedSnapshot indicates Read was given text that does not
	// follow the report layout.
	ErrMalformedSnapshot = errors.New("snapshot: malformed report")
)

// Section headers and literals of the report layout.
const (
	headerGraph = "===== Saved Graph ====="
	headerPath  = "===== Last Path ====="
	headerCycle = "===== Last Cycle ====="
	nodesPrefix = "Number of nodes: "
	adjHeader   = "Adjacency List:"
	noneLiteral = "None"

	// timestampLayout derives the save filename; second granularity, with
	// collision suffixes handled separately.
	timestampLayout = "20060102_150405"

	filePrefix = "graph_backup_"
	fileSuffix = ".txt"

	dirPerm = 0o755
)

// Write renders the report for g, lastPath, and lastCycle to w.
// Either result sequence may be nil, rendered as the literal "None".
func Write(w io.Writer, g *core.Graph, lastPath, lastCycle []int) error {
	if g == nil {
		return fmt.Errorf("snapshot: Write: %w", ErrNilGraph)
	}

	var b strings.Builder

	// Graph section.
	b.WriteString(headerGraph + "\n")
	fmt.Fprintf(&b, "%s%d\n\n", nodesPrefix, g.NodeCount())

	// Adjacency section: one line per vertex, edges in insertion order.
	b.WriteString(adjHeader + "\n")
	for v := 0; v < g.NodeCount(); v++ {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("snapshot: Write: %w", err)
		}
		fmt.Fprintf(&b, "%d ->", v)
		for _, e := range nbs {
			b.WriteString(" " + e.String())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Result sections.
	b.WriteString(headerPath + "\n")
	b.WriteString(formatSeq(lastPath) + "\n\n")
	b.WriteString(headerCycle + "\n")
	b.WriteString(formatSeq(lastCycle) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}

	return nil
}

// Save writes the report into dir under a timestamp-derived name and
// returns the full path. The directory is created if absent. When the
// timestamped name already exists (two saves within one second), a numeric
// suffix is appended so no prior save is ever overwritten.
func Save(dir string, g *core.Graph, lastPath, lastCycle []int) (string, error) {
	if g == nil {
		return "", fmt.Errorf("snapshot: Save: %w", ErrNilGraph)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("snapshot: Save: create %q: %w", dir, err)
	}

	path, err := uniquePath(dir, time.Now())
	if err != nil {
		return "", fmt.Errorf("snapshot: Save: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("snapshot: Save: create %q: %w", path, err)
	}

	if err = Write(f, g, lastPath, lastCycle); err != nil {
		_ = f.Close()

		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: Save: close %q: %w", path, err)
	}

	return path, nil
}

// uniquePath builds the first non-existing timestamped filename in dir.
func uniquePath(dir string, now time.Time) (string, error) {
	stamp := now.Format(timestampLayout)
	base := filepath.Join(dir, filePrefix+stamp)

	candidate := base + fileSuffix
	for i := 2; ; i++ {
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("stat %q: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, fileSuffix)
	}
}

// formatSeq renders a vertex sequence as "[0, 2, 5]", or "None" for nil.
// An empty non-nil sequence is still a sequence: "[]".
func formatSeq(seq []int) string {
	if seq == nil {
		return noneLiteral
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
