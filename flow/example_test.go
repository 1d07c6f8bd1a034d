package flow_test

import (
	"fmt"

	"github.com/katalvlaran/pennant/flow"
)

// ExampleMaxFlow demonstrates max-flow and the minimum cut on a small network.
// Network: 0→1 (3), 1→2 (unbounded), 2→3 (2)
func ExampleMaxFlow() {
	net := flow.NewNetwork(4)
	_, _ = net.AddEdge(0, 1, flow.Finite(3))
	_, _ = net.AddEdge(1, 2, flow.Unbounded())
	_, _ = net.AddEdge(2, 3, flow.Finite(2))

	res, err := flow.MaxFlow(net, 0, 3, flow.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Value)
	fmt.Println(res.SourceSide())
	// Output:
	// 2
	// [0 1 2]
}

// ExampleFordFulkerson_simple demonstrates max-flow on a single-edge network.
// Network: s→t with capacity 5
func ExampleFordFulkerson_simple() {
	net := flow.NewNetwork(2)
	_, _ = net.AddEdge(0, 1, flow.Finite(5))

	res, _ := flow.FordFulkerson(net, 0, 1, flow.DefaultOptions())
	fmt.Println(res.Value)
	// Output:
	// 5
}
