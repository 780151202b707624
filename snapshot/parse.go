package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/bbsgraph/core"
)

// Snapshot is the parsed form of a saved report.
type Snapshot struct {
	// Graph holds the reconstructed adjacency structure, edges in the
	// order they appear on each vertex line.
	Graph *core.Graph

	// LastPath and LastCycle are nil when the report recorded "None".
	LastPath  []int
	LastCycle []int
}

// edgeToken matches one "(to, w=weight)" adjacency token.
var edgeToken = regexp.MustCompile(`\((\d+), w=(-?\d+)\)`)

// Read parses a report previously produced by Write.
//
// The adjacency section is recovered order-preserving per vertex, so
// Write∘Read is an identity on the (from, to, weight) sequence. Layout
// violations surface as ErrMalformedSnapshot with a line-level cause.
func Read(r io.Reader) (*Snapshot, error) {
	sc := bufio.NewScanner(r)

	// 1. Graph header and node count.
	if err := expectLine(sc, headerGraph); err != nil {
		return nil, err
	}
	countLine, err := nextContentLine(sc)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(countLine, nodesPrefix) {
		return nil, malformed("expected node count, got %q", countLine)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(countLine, nodesPrefix))
	if err != nil {
		return nil, malformed("node count: %v", err)
	}
	g, err := core.New(n)
	if err != nil {
		return nil, fmt.Errorf("snapshot: Read: %w", err)
	}

	// 2. Adjacency section: exactly one "v -> ..." line per vertex.
	if err = expectLine(sc, adjHeader); err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		line, err := nextContentLine(sc)
		if err != nil {
			return nil, err
		}
		if err = parseAdjacencyLine(g, v, line); err != nil {
			return nil, err
		}
	}

	// 3. Result sections.
	path, err := parseSeqSection(sc, headerPath)
	if err != nil {
		return nil, err
	}
	cycle, err := parseSeqSection(sc, headerCycle)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Graph: g, LastPath: path, LastCycle: cycle}, nil
}

// parseAdjacencyLine replays one vertex line's edges onto g.
func parseAdjacencyLine(g *core.Graph, v int, line string) error {
	prefix := fmt.Sprintf("%d ->", v)
	if !strings.HasPrefix(line, prefix) {
		return malformed("expected adjacency for vertex %d, got %q", v, line)
	}

	rest := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	if rest == "" {
		return nil
	}

	matches := edgeToken.FindAllStringSubmatch(rest, -1)
	if matches == nil {
		return malformed("unparseable edges for vertex %d: %q", v, rest)
	}
	for _, m := range matches {
		to, err := strconv.Atoi(m[1])
		if err != nil {
			return malformed("vertex %d edge destination: %v", v, err)
		}
		w, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return malformed("vertex %d edge weight: %v", v, err)
		}
		if err = g.AddEdge(v, to, w); err != nil {
			return fmt.Errorf("snapshot: Read: %w", err)
		}
	}

	return nil
}

// parseSeqSection reads a section header and the "None"-or-"[...]" line
// after it.
func parseSeqSection(sc *bufio.Scanner, header string) ([]int, error) {
	if err := expectLine(sc, header); err != nil {
		return nil, err
	}
	line, err := nextContentLine(sc)
	if err != nil {
		return nil, err
	}
	if line == noneLiteral {
		return nil, nil
	}
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return nil, malformed("expected sequence or %q, got %q", noneLiteral, line)
	}

	inner := strings.TrimSpace(line[1 : len(line)-1])
	if inner == "" {
		return []int{}, nil
	}
	parts := strings.Split(inner, ",")
	seq := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, malformed("sequence element %q: %v", p, err)
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// expectLine consumes the next content line and requires it to match want
// exactly. Blank lines are layout padding and skipped on the way.
func expectLine(sc *bufio.Scanner, want string) error {
	line, err := nextContentLine(sc)
	if err != nil {
		return err
	}
	if line != want {
		return malformed("expected %q, got %q", want, line)
	}

	return nil
}

// nextContentLine returns the next non-blank line, trimmed of trailing
// whitespace.
func nextContentLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("snapshot: Read: %w", err)
	}

	return "", malformed("unexpected end of report")
}

// malformed wraps ErrMalformedSnapshot with a line-level cause.
func malformed(format string, args ...any) error {
	return fmt.Errorf("snapshot: Read: "+format+": %w", append(args, ErrMalformedSnapshot)...)
}
