package flow

import (
	"context"
	"log/slog"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - result: flow value, augmentation count and min-cut membership
//   - err: non-nil on bad terminals, unbounded paths or broken invariants.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(n *Network, source, sink int, opts FlowOptions) (*Result, error) {
	// 1) Validate presence of source/sink and reset
	if err := prepare(n, source, sink); err != nil {
		return nil, err
	}
	log := opts.logger()

	// 2) Main loop: find BFS augmenting paths until none remain
	var (
		maxFlow       int64
		augmentations int
	)
	for {
		parent, bottle, found := bfsAugmentingPath(n, source, sink)
		if !found {
			break
		}
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("augmenting path", "method", MethodEdmondsKarp, "path", pathOf(n, parent, source, sink), "flow", bottle)
		}
		// 3) Augment along the path
		augment(n, parent, source, sink, bottle)
		maxFlow += bottle
		augmentations++
	}

	return finish(n, source, sink, maxFlow, MethodEdmondsKarp, augmentations)
}

// bfsAugmentingPath finds the shortest (fewest-edges) path in the residual
// graph from source→sink with positive capacity, and returns its parent-edge
// table plus its bottleneck capacity. found is false if no path exists.
func bfsAugmentingPath(n *Network, source, sink int) (parent []int, bottle int64, found bool) {
	parent = newParentTable(n.VertexCount())
	// capTo[v] = bottleneck capacity from source→v
	capTo := make([]Capacity, n.VertexCount())
	capTo[source] = Unbounded()
	visited := make([]bool, n.VertexCount())
	visited[source] = true

	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
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
			capTo[v] = capTo[u].Min(residual)
			if v == sink {
				return parent, capTo[sink].Value(), true
			}
			queue = append(queue, v)
		}
	}

	return parent, 0, false
}
