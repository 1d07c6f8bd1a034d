package flow

import "math"

// Dinic computes the maximum flow from `source` to `sink` in the
// network `n` using Dinic’s algorithm (level graph + blocking flows).
//
// It returns:
//   - result : flow value, push count and min-cut membership
//   - err    : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     ErrUnboundedFlow or ErrFlowInvariant
//
// Steps:
//  1. Validate terminals and reset flow (O(V + E)).
//  2. Repeat until no more augmenting paths:
//     a. BFS to build the level graph: distance from source for each vertex (O(V + E)).
//     b. If sink unreachable, break.
//     c. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//  3. Verify invariants and compute residual reachability.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit‐capacity networks.
//	Memory: O(V + E) for level, iter and recursion state.
func Dinic(n *Network, source, sink int, opts FlowOptions) (*Result, error) {
	// 1) Validate presence of source and sink
	if err := prepare(n, source, sink); err != nil {
		return nil, err
	}
	log := opts.logger()

	var (
		maxFlow      int64
		augmentCount int
	)
	level := make([]int, n.VertexCount())
	iter := make([]int, n.VertexCount())
	for {
		// 2a) BFS to compute levels
		if !buildLevels(n, source, sink, level) {
			// 2b) sink unreachable in level graph, we're done
			break
		}

		// 2c) DFS‐based blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dfsDinicPush(n, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			log.Debug("blocking flow push", "method", MethodDinic, "pushed", pushed, "total", maxFlow)
			// Optionally rebuild level graph
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return finish(n, source, sink, maxFlow, MethodDinic, augmentCount)
}

// buildLevels fills level with BFS distances from source over residual edges
// (-1 for unreachable) and reports whether sink was reached.
func buildLevels(n *Network, source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range n.adj[u] {
			e := &n.edges[id]
			v := e.Other(u)
			if level[v] < 0 && e.ResidualTo(v).Positive() {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dfsDinicPush recursively pushes flow along the level graph, updates the
// edges in place, and returns the amount actually sent. iter[u] remembers
// the next incident edge of u worth trying in this phase.
func dfsDinicPush(n *Network, level, iter []int, u, sink int, available int64) int64 {
	// If we reached sink, return the available flow
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		e := &n.edges[n.adj[u][iter[u]]]
		v := e.Other(u)
		if level[v] != level[u]+1 {
			continue
		}
		residual := e.ResidualTo(v)
		if !residual.Positive() {
			continue
		}
		// Determine how much we can send: min(available, residual)
		send := available
		if !residual.IsUnbounded() && residual.Value() < send {
			send = residual.Value()
		}
		// Recurse to push from v toward sink
		pushed := dfsDinicPush(n, level, iter, v, sink, send)
		if pushed > 0 {
			e.addFlowTo(v, pushed)

			return pushed
		}
	}

	return 0
}
