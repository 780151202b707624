// Package builder generates random core.Graph instances from an injected
// integer source.
//
// What:
//
//   - IntSource: the single-method contract a pseudorandom source must meet
//     (bbs.Generator satisfies it).
//   - Random(src, opts...): draws a node count, an edge count, then one
//     (from, to, weight) triple per edge, appending in draw order.
//
// Canonical model:
//
//   - nodes n ∈ [3, 15]
//   - edges m ∈ [n, 3n]
//   - endpoints uniform in [0, n), independently per edge
//   - weights ∈ [1, 20]
//   - duplicates and self-loops are possible and expected
//
// This is the single point where randomness enters the system: every
// downstream query result is a deterministic function of the integers
// consumed here, in exactly this draw order.
//
// Determinism:
//   - Fixed draw order (n, m, then from/to/weight per edge) means a
//     deterministic source yields a deterministic graph.
//
// Errors:
//
//   - ErrNilSource           Random called without a source
//   - ErrInvalidNodeRange    option bounds reversed or non-positive
//   - ErrInvalidEdgeFactor   option factors reversed or below one
//   - ErrInvalidWeightRange  option bounds reversed
//   - plus any error propagated from the source itself
package builder
