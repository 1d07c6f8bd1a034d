package flow

import "fmt"

// Edge is one directed, capacitated edge of a Network together with the
// flow it currently carries (0 ≤ Flow ≤ Cap).
type Edge struct {
	From, To int
	Cap      Capacity
	Flow     int64
}

// Other returns the endpoint of e opposite to v.
func (e *Edge) Other(v int) int {
	if v == e.From {
		return e.To
	}

	return e.From
}

// ResidualTo returns the residual capacity of e in the direction of v:
// Cap-Flow toward To, Flow toward From.
func (e *Edge) ResidualTo(v int) Capacity {
	if v == e.To {
		return e.Cap.Residual(e.Flow)
	}

	return Finite(e.Flow)
}

// addFlowTo pushes delta units along e in the direction of v, cancelling
// existing flow when v is the tail.
func (e *Edge) addFlowTo(v int, delta int64) {
	if v == e.To {
		e.Flow += delta
	} else {
		e.Flow -= delta
	}
}

// Network is a directed flow network over dense vertex indices 0..V-1.
// A Network is not safe for concurrent use; build one per computation.
type Network struct {
	edges []Edge
	// adj[v] lists indices of edges incident to v in either direction.
	adj [][]int
}

// NewNetwork returns an empty network with v vertices.
// It panics if v is negative.
func NewNetwork(v int) *Network {
	if v < 0 {
		panic(fmt.Sprintf("flow: negative vertex count %d", v))
	}

	return &Network{adj: make([][]int, v)}
}

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int { return len(n.adj) }

// EdgeCount returns the number of edges added so far.
func (n *Network) EdgeCount() int { return len(n.edges) }

// AddEdge adds from→to with capacity c and returns the new edge index.
// Self-loops are stored but never carry flow.
func (n *Network) AddEdge(from, to int, c Capacity) (int, error) {
	if from < 0 || from >= len(n.adj) || to < 0 || to >= len(n.adj) {
		return -1, fmt.Errorf("%w: %d→%d with %d vertices", ErrVertexOutOfRange, from, to, len(n.adj))
	}
	if !c.IsUnbounded() && c.Value() < 0 {
		return -1, EdgeError{From: from, To: to, Cap: c.Value()}
	}

	id := len(n.edges)
	n.edges = append(n.edges, Edge{From: from, To: to, Cap: c})
	if from != to {
		n.adj[from] = append(n.adj[from], id)
		n.adj[to] = append(n.adj[to], id)
	}

	return id, nil
}

// Edge returns a copy of edge i.
func (n *Network) Edge(i int) Edge { return n.edges[i] }

// Edges returns a copy of all edges in insertion order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Reset zeroes the flow on every edge.
func (n *Network) Reset() {
	for i := range n.edges {
		n.edges[i].Flow = 0
	}
}
