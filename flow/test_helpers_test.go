package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/flow"
)

// edgeSpec is a compact edge literal for building test networks.
type edgeSpec struct {
	from, to int
	cap      flow.Capacity
}

// buildNetwork returns a network with v vertices and the given edges.
func buildNetwork(t testing.TB, v int, edges ...edgeSpec) *flow.Network {
	t.Helper()
	n := flow.NewNetwork(v)
	for _, e := range edges {
		_, err := n.AddEdge(e.from, e.to, e.cap)
		require.NoError(t, err)
	}

	return n
}

// clrsNetwork is the six-vertex textbook network: s=0, t=5, max flow 23,
// unique minimum cut with source side {0, 1, 2, 4}.
func clrsNetwork(t testing.TB) *flow.Network {
	return buildNetwork(t, 6,
		edgeSpec{0, 1, flow.Finite(16)},
		edgeSpec{0, 2, flow.Finite(13)},
		edgeSpec{1, 3, flow.Finite(12)},
		edgeSpec{2, 1, flow.Finite(4)},
		edgeSpec{2, 4, flow.Finite(14)},
		edgeSpec{3, 2, flow.Finite(9)},
		edgeSpec{3, 5, flow.Finite(20)},
		edgeSpec{4, 3, flow.Finite(7)},
		edgeSpec{4, 5, flow.Finite(4)},
	)
}

// buildRandomNetwork constructs a network with V vertices and roughly p
// probability of an edge between any ordered pair u→v. Finite capacities
// are uniform in [0, maxCap]; about one edge in ten is unbounded, never
// leaving the source so that every s→t path keeps a finite edge.
func buildRandomNetwork(t testing.TB, V int, p float64, maxCap int64, seed int64) *flow.Network {
	t.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	n := flow.NewNetwork(V)
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			c := flow.Finite(r.Int63n(maxCap + 1))
			if u != 0 && r.Intn(10) == 0 {
				c = flow.Unbounded()
			}
			_, err := n.AddEdge(u, v, c)
			require.NoError(t, err)
		}
	}

	return n
}

// assertFlowIntegrity verifies on the network after max-flow that
//
//	0 ≤ flow(e) ≤ cap(e) for every edge,
//	inflow(v) == outflow(v) for every v ∉ {source, sink},
//	outflow(source) - inflow(source) == value,
//
// and that no residual path from source to sink remains.
func assertFlowIntegrity(t *testing.T, n *flow.Network, res *flow.Result, source, sink int) {
	t.Helper()
	excess := make([]int64, n.VertexCount())
	for i, e := range n.Edges() {
		require.GreaterOrEqual(t, e.Flow, int64(0), "negative flow on edge %d", i)
		if !e.Cap.IsUnbounded() {
			require.LessOrEqual(t, e.Flow, e.Cap.Value(), "over capacity on edge %d", i)
		}
		excess[e.From] -= e.Flow
		excess[e.To] += e.Flow
	}
	for v, x := range excess {
		if v == source || v == sink {
			continue
		}
		require.Zero(t, x, "conservation broken at vertex %d", v)
	}
	require.Equal(t, res.Value, -excess[source])
	require.Equal(t, res.Value, excess[sink])

	require.True(t, res.IsSourceSide(source))
	require.False(t, res.IsSourceSide(sink), "sink must not be reachable after max flow")
}

// cutCapacity sums finite capacities of edges crossing from the source side
// to the sink side of res. Returns -1 if an unbounded edge crosses.
func cutCapacity(n *flow.Network, res *flow.Result) int64 {
	var total int64
	for _, e := range n.Edges() {
		if res.IsSourceSide(e.From) && !res.IsSourceSide(e.To) {
			if e.Cap.IsUnbounded() {
				return -1
			}
			total += e.Cap.Value()
		}
	}

	return total
}

// methods enumerates every algorithm for table-driven comparisons.
var methods = []flow.Method{flow.MethodEdmondsKarp, flow.MethodFordFulkerson, flow.MethodDinic}
