package flow

// validateTerminals checks that source and sink are distinct vertices of n.
func validateTerminals(n *Network, source, sink int) error {
	if source < 0 || source >= n.VertexCount() {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= n.VertexCount() {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSourceIsSink
	}

	return nil
}

// checkBounded rejects networks where the sink is reachable from the source
// along forward unbounded edges only. Such a path would never saturate.
//
// Reverse residual edges are always finite and unbounded edges never lose
// capacity, so once this check passes every augmenting path found later has
// a finite bottleneck.
//
// Complexity: O(V + E).
func checkBounded(n *Network, source, sink int) error {
	seen := make([]bool, n.VertexCount())
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range n.adj[u] {
			e := &n.edges[id]
			if e.From != u || !e.Cap.IsUnbounded() || seen[e.To] {
				continue
			}
			if e.To == sink {
				return ErrUnboundedFlow
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}

	return nil
}

// prepare runs the checks shared by every algorithm and clears any flow left
// by an earlier run.
func prepare(n *Network, source, sink int) error {
	if err := validateTerminals(n, source, sink); err != nil {
		return err
	}
	if err := checkBounded(n, source, sink); err != nil {
		return err
	}
	n.Reset()

	return nil
}

// augment pushes delta units from source to sink along the path recorded in
// parentEdge (parentEdge[v] = index of the edge used to reach v).
func augment(n *Network, parentEdge []int, source, sink int, delta int64) {
	for v := sink; v != source; {
		e := &n.edges[parentEdge[v]]
		e.addFlowTo(v, delta)
		v = e.Other(v)
	}
}

// pathOf reconstructs the vertex sequence source→sink from parentEdge.
// Used for debug logging only.
func pathOf(n *Network, parentEdge []int, source, sink int) []int {
	path := []int{sink}
	for v := sink; v != source; {
		v = n.edges[parentEdge[v]].Other(v)
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// newParentTable returns a parent-edge table with every entry unset (-1).
func newParentTable(v int) []int {
	parent := make([]int, v)
	for i := range parent {
		parent[i] = -1
	}

	return parent
}
