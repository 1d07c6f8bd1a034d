package flow

import "fmt"

// Result is the outcome of a maximum-flow computation.
type Result struct {
	// Value is the total flow leaving the source.
	Value int64
	// Method is the algorithm that produced the flow.
	Method Method
	// Augmentations counts augmenting paths (or blocking-flow pushes for Dinic).
	Augmentations int

	sourceSide []bool
}

// IsSourceSide reports whether v is reachable from the source in the residual
// graph of the maximum flow, i.e. lies on the source side of the minimum cut.
// Vertices outside the network report false.
func (r *Result) IsSourceSide(v int) bool {
	if v < 0 || v >= len(r.sourceSide) {
		return false
	}

	return r.sourceSide[v]
}

// SourceSide returns the source-side vertices in ascending order.
func (r *Result) SourceSide() []int {
	var out []int
	for v, in := range r.sourceSide {
		if in {
			out = append(out, v)
		}
	}

	return out
}

// finish verifies the flow on n and derives the minimum cut.
func finish(n *Network, source, sink int, value int64, method Method, augmentations int) (*Result, error) {
	if err := verify(n, source, sink, value); err != nil {
		return nil, err
	}

	return &Result{
		Value:         value,
		Method:        method,
		Augmentations: augmentations,
		sourceSide:    residualReach(n, source),
	}, nil
}

// residualReach marks every vertex reachable from source through edges with
// positive residual capacity, forward or backward.
//
// Complexity: O(V + E).
func residualReach(n *Network, source int) []bool {
	seen := make([]bool, n.VertexCount())
	seen[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, id := range n.adj[u] {
			e := &n.edges[id]
			w := e.Other(u)
			if seen[w] || !e.ResidualTo(w).Positive() {
				continue
			}
			seen[w] = true
			queue = append(queue, w)
		}
	}

	return seen
}

// verify checks capacity bounds on every edge, conservation at every vertex
// other than source and sink, and that the net outflow of source equals value.
func verify(n *Network, source, sink int, value int64) error {
	excess := make([]int64, n.VertexCount())
	for id := range n.edges {
		e := &n.edges[id]
		if e.Flow < 0 {
			return &InvariantError{Edge: id, Vertex: -1, Reason: fmt.Sprintf("negative flow %d", e.Flow)}
		}
		if !e.Cap.IsUnbounded() && e.Flow > e.Cap.Value() {
			return &InvariantError{Edge: id, Vertex: -1, Reason: fmt.Sprintf("flow %d exceeds capacity %s", e.Flow, e.Cap)}
		}
		if e.From == e.To {
			continue
		}
		excess[e.From] -= e.Flow
		excess[e.To] += e.Flow
	}

	for v, x := range excess {
		if v == source || v == sink {
			continue
		}
		if x != 0 {
			return &InvariantError{Edge: -1, Vertex: v, Reason: fmt.Sprintf("conservation broken, excess %d", x)}
		}
	}
	if -excess[source] != value {
		return &InvariantError{Edge: -1, Vertex: source,
			Reason: fmt.Sprintf("source outflow %d differs from flow value %d", -excess[source], value)}
	}

	return nil
}

// MaxFlow computes the maximum flow from source to sink with opts.Method and
// leaves the resulting flow on n's edges.
func MaxFlow(n *Network, source, sink int, opts FlowOptions) (*Result, error) {
	switch opts.Method {
	case MethodEdmondsKarp:
		return EdmondsKarp(n, source, sink, opts)
	case MethodFordFulkerson:
		return FordFulkerson(n, source, sink, opts)
	case MethodDinic:
		return Dinic(n, source, sink, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, opts.Method)
	}
}
