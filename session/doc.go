// Package session owns the mutable state of one interactive run: the
// current graph, the last path and cycle found, the pseudorandom generator,
// and the snapshot directory.
//
// What was ambient global state in a naive driver — one graph, one cached
// path, one cached cycle, one PRNG — is a single explicit Session value
// here, passed to each operation.
//
// Behavioral contract:
//
//   - Generate snapshots the previous graph (with whatever results were
//     cached) before replacing it, then clears the caches. A snapshot
//     failure is non-fatal: it is logged, reported on the GenerateReport,
//     and never blocks regeneration.
//   - FindPath and DetectCycle answer against the current graph and cache
//     their results for the next snapshot. Absence is a normal outcome.
//   - Every query before the first Generate returns ErrNoGraph.
//
// The Session is single-caller by design: no locking, no concurrent use.
package session
