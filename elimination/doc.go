// Package elimination decides whether a team can still finish first (or tied
// for first) in its division, and when it cannot, names a subset of rivals
// that proves it.
//
// A Division wraps an immutable *roster.Roster and answers two questions per
// team:
//
//	d, _ := elimination.New(r)
//	out, _ := d.IsEliminated("Philadelphia")  // true
//	cert, _ := d.Certificate("Philadelphia")  // [Atlanta New_York]
//
// # Algorithm
//
// For a team T with ceiling W = wins(T) + remaining(T):
//
//  1. Trivial check: any rival i with wins(i) > W eliminates T on its own,
//     and {i} is the certificate. This check is authoritative: when it
//     fires, no flow network is built.
//  2. Flow check: a network with one vertex per pair of rivals and one per
//     rival is solved with package flow. source→pair{i,j} carries the games
//     left between i and j, pair→team edges are unbounded, team i→sink
//     carries max(W - wins(i), 0). T is eliminated iff the maximum flow is
//     below the total of the source capacities.
//  3. Certificate: the rivals on the source side of the minimum cut. Their
//     wins plus the games among them, averaged over the subset, exceed W
//     (see Explain).
//
// # Caching and concurrency
//
// Results are memoized per team; each team's answer is computed at most once
// even under concurrent first queries. A Division is safe for concurrent use.
// Queries run to completion: the context accepted by ResultContext carries
// tracing only, never cancellation.
package elimination
