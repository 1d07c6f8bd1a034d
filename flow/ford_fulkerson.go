package flow

import (
	"context"
	"log/slog"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in the
// network `n` using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It returns:
//   - result : flow value, augmentation count and min-cut membership
//   - err    : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     ErrUnboundedFlow or ErrFlowInvariant
//
// Steps:
//  1. Validate terminals and reject all-unbounded s→t paths (O(V + E)).
//  2. Repeat until no augmenting path:
//     a. Iteratively DFS to find any path s→t with positive residual capacity (O(E)).
//     b. If none found, break.
//     c. Augment along the path by its bottleneck (O(path length)).
//     d. Accumulate flow; log the path at debug level.
//  3. Verify invariants and compute the residual reachability of the source.
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (sum of all augmentations).
//	Memory: O(V + E) for the parent table and DFS stack.
//
// Suitable for small integral networks; for stronger guarantees,
// consider Edmonds–Karp (BFS) or Dinic (level graph + blocking flow).
func FordFulkerson(n *Network, source, sink int, opts FlowOptions) (*Result, error) {
	// 1) Validate and reset
	if err := prepare(n, source, sink); err != nil {
		return nil, err
	}
	log := opts.logger()

	var (
		maxFlow       int64
		augmentations int
	)
	// 2) Main loop: find any augmenting path and push flow
	for {
		parent, delta, found := dfsAugmentingPath(n, source, sink)
		if !found {
			break
		}
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("augmenting path", "method", MethodFordFulkerson, "path", pathOf(n, parent, source, sink), "flow", delta)
		}
		augment(n, parent, source, sink, delta)
		maxFlow += delta
		augmentations++
	}

	// 3) Verify and derive the cut
	return finish(n, source, sink, maxFlow, MethodFordFulkerson, augmentations)
}

// dfsAugmentingPath searches any s→t path with positive residual capacity.
// It returns the parent-edge table, the path bottleneck, and whether the
// sink was reached.
func dfsAugmentingPath(n *Network, source, sink int) ([]int, int64, bool) {
	// parent[v] = edge used to reach v
	parent := newParentTable(n.VertexCount())
	// minCap[v] = bottleneck capacity from source to v along discovered path
	minCap := make([]Capacity, n.VertexCount())
	visited := make([]bool, n.VertexCount())

	stack := []int{source}
	visited[source] = true
	minCap[source] = Unbounded()

	for len(stack) > 0 {
		// pop last entry (LIFO)
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, id := range n.adj[u] {
			e := &n.edges[id]
			v := e.Other(u)
			if visited[v] {
				continue
			}
			residual := e.ResidualTo(v)
			if !residual.Positive() {
				continue
			}
			visited[v] = true
			parent[v] = id
			minCap[v] = minCap[u].Min(residual)

			// if we reached sink, we can stop DFS
			if v == sink {
				return parent, minCap[sink].Value(), true
			}
			stack = append(stack, v)
		}
	}

	return parent, 0, false
}
