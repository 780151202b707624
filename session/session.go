package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/bbsgraph/bbs"
	"github.com/katalvlaran/bbsgraph/builder"
	"github.com/katalvlaran/bbsgraph/core"
	"github.com/katalvlaran/bbsgraph/dfs"
	"github.com/katalvlaran/bbsgraph/snapshot"
)

// Sentinel errors for session operations.
var (
	// ErrNoGraph indicates a query before the first Generate.
	ErrNoGraph = errors.New("session: no graph generated yet")
)

// DefaultSaveDir is where snapshots land unless WithSaveDir overrides it.
const DefaultSaveDir = "saved_graphs"

// Session holds the state of one interactive run.
type Session struct {
	src       builder.IntSource
	graph     *core.Graph
	lastPath  []int
	lastCycle []int
	saveDir   string
	logger    *slog.Logger
	buildOpts []builder.Option
}

// Option configures a Session at construction.
type Option func(*Session)

// WithSource injects a pseudorandom source, replacing the default
// freshly-generated BBS instance. Useful for deterministic sessions.
func WithSource(src builder.IntSource) Option {
	return func(s *Session) { s.src = src }
}

// WithSaveDir overrides the snapshot directory.
func WithSaveDir(dir string) Option {
	return func(s *Session) { s.saveDir = dir }
}

// WithLogger installs a structured logger; the default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithBuildOptions forwards builder options to every Generate call.
func WithBuildOptions(opts ...builder.Option) Option {
	return func(s *Session) { s.buildOpts = opts }
}

// New constructs a Session. Without WithSource, a BBS generator with
// DefaultBitLength primes is created; that is the only fallible step.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		saveDir: DefaultSaveDir,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.src == nil {
		gen, err := bbs.Generate(bbs.DefaultBitLength)
		if err != nil {
			return nil, fmt.Errorf("session: New: %w", err)
		}
		s.src = gen
	}

	return s, nil
}

// GenerateReport describes one Generate call: the snapshot of the previous
// graph (if there was one) and whether snapshotting failed.
type GenerateReport struct {
	// BackupPath is the file the previous graph was saved to; empty when
	// this was the first generation or the save failed.
	BackupPath string

	// SaveErr carries a snapshot failure. Non-fatal: the new graph was
	// generated regardless.
	SaveErr error
}

// Generate snapshots the current graph (if any) together with the cached
// results, then replaces it with a fresh random instance and clears the
// caches. A snapshot failure is recorded on the report and logged, never
// fatal; a generation failure leaves the previous state intact.
func (s *Session) Generate() (GenerateReport, error) {
	var report GenerateReport

	// 1. Preserve the outgoing graph.
	if s.graph != nil {
		path, err := snapshot.Save(s.saveDir, s.graph, s.lastPath, s.lastCycle)
		if err != nil {
			report.SaveErr = err
			s.logger.Warn("snapshot failed", "dir", s.saveDir, "err", err)
		} else {
			report.BackupPath = path
			s.logger.Info("previous graph saved", "path", path)
		}
	}

	// 2. Build the replacement.
	g, err := builder.Random(s.src, s.buildOpts...)
	if err != nil {
		return report, fmt.Errorf("session: Generate: %w", err)
	}

	s.graph = g
	s.lastPath = nil
	s.lastCycle = nil
	s.logger.Info("graph generated", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return report, nil
}

// Graph returns the current graph, or nil before the first Generate.
func (s *Session) Graph() *core.Graph {
	return s.graph
}

// Describe renders the current graph's adjacency listing.
func (s *Session) Describe() (string, error) {
	if s.graph == nil {
		return "", ErrNoGraph
	}

	return s.graph.String(), nil
}

// PathReport is the outcome of one FindPath query.
type PathReport struct {
	// Path runs from start to end inclusive; nil when Found is false.
	Path []int

	// Cost is the summed weight along Path; 0 when Found is false.
	Cost int64

	// Found distinguishes absence (a normal outcome) from presence.
	Found bool
}

// FindPath searches the current graph and caches the result (present or
// absent) for the next snapshot.
func (s *Session) FindPath(start, end int) (PathReport, error) {
	if s.graph == nil {
		return PathReport{}, ErrNoGraph
	}

	path, found, err := dfs.FindPath(s.graph, start, end)
	if err != nil {
		return PathReport{}, fmt.Errorf("session: FindPath: %w", err)
	}
	s.lastPath = path
	if !found {
		s.logger.Info("no path", "start", start, "end", end)

		return PathReport{}, nil
	}

	cost, err := dfs.PathCost(s.graph, path)
	if err != nil {
		return PathReport{}, fmt.Errorf("session: FindPath: %w", err)
	}
	s.logger.Info("path found", "start", start, "end", end, "len", len(path), "cost", cost)

	return PathReport{Path: path, Cost: cost, Found: true}, nil
}

// CycleReport is the outcome of one DetectCycle query.
type CycleReport struct {
	// Cycle lists each vertex once; nil when Found is false.
	Cycle []int

	// Found distinguishes an acyclic graph from a detected cycle.
	Found bool
}

// DetectCycle searches the current graph and caches the result for the
// next snapshot.
func (s *Session) DetectCycle() (CycleReport, error) {
	if s.graph == nil {
		return CycleReport{}, ErrNoGraph
	}

	cycle, found, err := dfs.DetectCycle(s.graph)
	if err != nil {
		return CycleReport{}, fmt.Errorf("session: DetectCycle: %w", err)
	}
	s.lastCycle = cycle
	if !found {
		s.logger.Info("no cycle")

		return CycleReport{}, nil
	}
	s.logger.Info("cycle found", "len", len(cycle))

	return CycleReport{Cycle: cycle, Found: true}, nil
}
