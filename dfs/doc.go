// Package dfs implements the two depth-first queries this system answers
// over a core.Graph, plus path costing.
//
// What:
//
//   - FindPath(g, start, end): does a path exist, and through which
//     vertices? Returns the first path discovered in edge-insertion order;
//     no shortest-path or minimum-cost claim is made.
//   - PathCost(g, path): sums the weight of the first matching edge between
//     each consecutive pair of a path produced by FindPath.
//   - DetectCycle(g): does a directed cycle exist, and which vertices form
//     it? Returns the first cycle found, trimmed to start at the vertex
//     where the back-edge closes it.
//
// How:
//
//   - FindPath uses two-state marking (unvisited/visited) with a shared
//     path buffer: mark, append, recurse in insertion order, backtrack on
//     failure. The first success short-circuits all remaining exploration,
//     propagated as a boolean up the call chain.
//   - DetectCycle uses three-color marking (White, Gray, Black). Every
//     still-White vertex is tried as a root so disconnected components are
//     covered. A Gray destination is a back-edge: the working buffer is cut
//     at that destination's position, discarding the acyclic prefix, and
//     the search stops immediately. Self-loops close through the same
//     check and form valid one-vertex cycles.
//
// Result shapes:
//
//   - A path runs from start to end inclusive; start == end yields the
//     single-element path [start] with no traversal.
//   - A cycle lists each vertex once; the closing edge back to the first
//     element is implicit, the sequence does not repeat it.
//   - Absence is an ordinary outcome reported as (nil, false, nil), never
//     an error.
//
// Errors:
//
//   - ErrGraphNil          nil graph passed to a query
//   - ErrVertexOutOfRange  start or end outside [0, n)
//   - ErrNotAdjacent       PathCost given consecutive vertices with no
//     connecting edge (an implementation error in the caller, reported
//     loudly rather than costed silently)
//
// Complexity:
//
//   - FindPath, DetectCycle: Time O(V + E), Memory O(V).
//   - PathCost: O(L·deg) over path length L.
package dfs
