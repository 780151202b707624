// Package bbsgraph builds small directed, weighted graphs from a
// Blum–Blum–Shub pseudorandom bit stream and answers two structural
// questions about them: path existence with cost, and directed-cycle
// existence with the cycle's vertices.
//
// What's inside?
//
//	bbs/      — modular-squaring PRNG: Blum primes, bit draws, ranged ints
//	core/     — the Graph: fixed vertex count, ordered adjacency lists,
//	            self-loops and parallel edges welcome
//	builder/  — random-instance generation from an injected integer source
//	dfs/      — FindPath (first path in insertion order, with costing) and
//	            DetectCycle (three-color marking, back-edge trimming)
//	snapshot/ — plain-text reports: write, save with unique names, re-parse
//	session/  — one explicit state object per interactive run
//	cmd/      — the interactive console driver
//
// Design commitments:
//
//   - Determinism first: every graph is a pure function of the bit stream
//     that generated it, and every query is a pure function of the graph.
//   - Absence is not an error: "no path" and "no cycle" are ordinary,
//     distinguishable outcomes.
//   - First found wins: DFS returns the first path or cycle reached in
//     edge-insertion order, with no shortest-path claim anywhere.
//   - Single-threaded by contract: no locks, no cancellation, bounded
//     work on instances of at most fifteen vertices.
//
// Start with builder.Random and the dfs package; see the package docs and
// runnable examples in each directory.
package bbsgraph
