// Package flow implements maximum-flow algorithms on a dense, index-addressed
// flow network. It computes the maximum feasible flow from a source to a sink
// and reports, for every vertex, on which side of the minimum cut it lies.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed (integral networks).
//
//   - Memory: O(V + E) for the parent table and DFS stack.
//
//   - Edmonds–Karp (default)
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V + E).
//
//   - Dinic
//
//   - Method: level graph + blocking flow via DFS.
//
//   - Time:   O(V² · E) in general; much better on unit-capacity networks.
//
//   - Memory: O(V + E) for levels, iterators and recursion state.
//
// # Network
//
// A Network has a fixed number of vertices 0..V-1 and grows by AddEdge.
// Every edge carries a Capacity, which is either Finite(n) with n ≥ 0 or
// Unbounded(). Unbounded capacities never saturate and never overflow: they
// are compared specially rather than approximated by a large constant.
//
//	net := flow.NewNetwork(4)
//	net.AddEdge(0, 1, flow.Finite(3))
//	net.AddEdge(1, 2, flow.Unbounded())
//	net.AddEdge(2, 3, flow.Finite(2))
//
//	res, err := flow.MaxFlow(net, 0, 3, flow.DefaultOptions())
//	// res.Value == 2, res.IsSourceSide(1) == true
//
// Every algorithm starts from zero flow and leaves the maximum flow it found
// on the network's edges, where Edges and Edge can inspect it.
//
// # Residual graph and minimum cut
//
// An edge u→v with capacity c and flow f contributes residual capacity c-f
// toward v and f toward u. After the flow is maximal, Result.IsSourceSide
// reports reachability from the source in that residual graph: the source
// side of the minimum cut. The set is the same for every maximum flow.
//
// # Errors
//
//	ErrSourceNotFound / ErrSinkNotFound - terminal index outside 0..V-1.
//	ErrSourceIsSink                     - source and sink coincide.
//	ErrVertexOutOfRange                 - AddEdge endpoint outside 0..V-1.
//	ErrUnboundedFlow                    - an s→t path made only of unbounded edges.
//	EdgeError                           - negative finite capacity.
//	ErrFlowInvariant (*InvariantError)  - post-flow verification failed.
package flow
