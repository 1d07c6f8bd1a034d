package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

var (
	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = errors.New("flow: source and sink are the same vertex")

	// ErrVertexOutOfRange is returned by AddEdge for an endpoint outside 0..V-1.
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrUnboundedFlow is returned when the sink is reachable from the source
	// through unbounded edges only, so no finite maximum exists.
	ErrUnboundedFlow = errors.New("flow: unbounded augmenting path")

	// ErrFlowInvariant signals that a computed flow violates a capacity or
	// conservation constraint. It is a logic fault, never a user error.
	ErrFlowInvariant = errors.New("flow: invariant violated")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
	ErrUnknownMethod = errors.New("flow: unknown method")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// InvariantError describes which vertex or edge broke the flow invariants.
// It unwraps to ErrFlowInvariant.
type InvariantError struct {
	Edge   int // edge index, or -1
	Vertex int // vertex index, or -1
	Reason string
}

func (e *InvariantError) Error() string {
	switch {
	case e.Edge >= 0:
		return fmt.Sprintf("flow: invariant violated on edge %d: %s", e.Edge, e.Reason)
	case e.Vertex >= 0:
		return fmt.Sprintf("flow: invariant violated at vertex %d: %s", e.Vertex, e.Reason)
	default:
		return "flow: invariant violated: " + e.Reason
	}
}

func (e *InvariantError) Unwrap() error { return ErrFlowInvariant }

// Capacity is the capacity of one edge: either a finite non-negative amount
// or unbounded. The zero value is Finite(0).
type Capacity struct {
	value     int64
	unbounded bool
}

// Finite returns a capacity of exactly n units.
func Finite(n int64) Capacity { return Capacity{value: n} }

// Unbounded returns a capacity that never saturates.
func Unbounded() Capacity { return Capacity{unbounded: true} }

// IsUnbounded reports whether c has no upper limit.
func (c Capacity) IsUnbounded() bool { return c.unbounded }

// Value returns the finite amount of c, or math.MaxInt64 when unbounded.
func (c Capacity) Value() int64 {
	if c.unbounded {
		return math.MaxInt64
	}

	return c.value
}

// Positive reports whether c admits at least one more unit of flow.
func (c Capacity) Positive() bool { return c.unbounded || c.value > 0 }

// Residual returns what is left of c after carrying flow units.
// An unbounded capacity stays unbounded.
func (c Capacity) Residual(flow int64) Capacity {
	if c.unbounded {
		return c
	}

	return Capacity{value: c.value - flow}
}

// Min returns the smaller of c and o. Unbounded is larger than every finite value.
func (c Capacity) Min(o Capacity) Capacity {
	switch {
	case c.unbounded:
		return o
	case o.unbounded:
		return c
	case o.value < c.value:
		return o
	default:
		return c
	}
}

// String renders c as a decimal number or "inf".
func (c Capacity) String() string {
	if c.unbounded {
		return "inf"
	}

	return strconv.FormatInt(c.value, 10)
}

// Method selects the augmenting-path strategy used by MaxFlow.
type Method int

const (
	// MethodEdmondsKarp searches shortest augmenting paths with BFS.
	MethodEdmondsKarp Method = iota
	// MethodFordFulkerson searches any augmenting path with DFS.
	MethodFordFulkerson
	// MethodDinic pushes blocking flows over a level graph.
	MethodDinic
)

var methodNames = map[Method]string{
	MethodEdmondsKarp:   "edmonds-karp",
	MethodFordFulkerson: "ford-fulkerson",
	MethodDinic:         "dinic",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return "method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod maps a method name ("edmonds-karp", "ford-fulkerson", "dinic")
// to its Method. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// FlowOptions configures all max-flow algorithms.
//   - Method: algorithm used by MaxFlow (default Edmonds–Karp).
//   - Logger: if non-nil, each augmentation is logged at debug level.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Method               Method
	Logger               *slog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: Edmonds–Karp, no logging,
// no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{Method: MethodEdmondsKarp}
}

func (o FlowOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
