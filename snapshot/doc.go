// Package snapshot persists a graph plus its last query results as a flat,
// human-readable text report, and parses such reports back.
//
// Report layout (fixed, unversioned by design):
//
//	===== Saved Graph =====
//	Number of nodes: 5
//
//	Adjacency List:
//	0 -> (2, w=5) (3, w=1)
//	1 ->
//	...
//
//	===== Last Path =====
//	[0, 2, 5]        (or the literal "None")
//
//	===== Last Cycle =====
//	None
//
// What:
//
//   - Write: renders the report to any io.Writer.
//   - Save: writes into a directory (created if absent) under a
//     timestamp-derived name; an existing name gets a numeric suffix so a
//     prior save is never overwritten.
//   - Read: recovers node count, the per-vertex (to, weight) sequences in
//     order, and the last path/cycle. Write∘Read is an identity on all of
//     them.
//
// Failures here are boundary failures: callers treat them as reportable,
// non-fatal conditions for the session.
//
// Errors:
//
//   - ErrNilGraph            Write/Save called without a graph
//   - ErrMalformedSnapshot   Read given text that does not follow the layout
package snapshot
