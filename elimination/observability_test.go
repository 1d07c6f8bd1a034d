package elimination_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/pennant/elimination"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := elimination.NewMetrics(reg)
	require.NoError(t, err)
	d := loadDivision(t, "teams4.txt", elimination.WithMetrics(m))

	for _, team := range []string{"Philadelphia", "Philadelphia", "Montreal", "Atlanta", "Boston"} {
		_, _ = d.IsEliminated(team)
	}

	expected := `
# HELP pennant_elimination_queries_total Elimination queries by outcome.
# TYPE pennant_elimination_queries_total counter
pennant_elimination_queries_total{outcome="eliminated"} 3
pennant_elimination_queries_total{outcome="error"} 1
pennant_elimination_queries_total{outcome="not_eliminated"} 1
# HELP pennant_elimination_cache_hits_total Queries answered from the result cache.
# TYPE pennant_elimination_cache_hits_total counter
pennant_elimination_cache_hits_total 1
# HELP pennant_elimination_computations_total Uncached elimination computations by deciding check.
# TYPE pennant_elimination_computations_total counter
pennant_elimination_computations_total{kind="flow"} 2
pennant_elimination_computations_total{kind="trivial"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"pennant_elimination_queries_total",
		"pennant_elimination_cache_hits_total",
		"pennant_elimination_computations_total",
	))
	series, err := testutil.GatherAndCount(reg, "pennant_elimination_flow_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, series)
}

// TestMetricsConcurrentHits: every query that ran no computation of its own
// counts as a cache hit, including those that waited on another caller.
func TestMetricsConcurrentHits(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := elimination.NewMetrics(reg)
	require.NoError(t, err)
	d := loadDivision(t, "teams5.txt", elimination.WithMetrics(m))
	names := d.Roster().TeamNames()

	const rounds = 16
	var wg sync.WaitGroup
	for k := 0; k < rounds; k++ {
		for _, name := range names {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				_, err := d.IsEliminated(name)
				assert.NoError(t, err)
			}(name)
		}
	}
	wg.Wait()

	queries := rounds * len(names)
	computed := len(names)
	require.Equal(t, int64(computed), d.Computations())

	expected := fmt.Sprintf(`
# HELP pennant_elimination_cache_hits_total Queries answered from the result cache.
# TYPE pennant_elimination_cache_hits_total counter
pennant_elimination_cache_hits_total %d
`, queries-computed)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"pennant_elimination_cache_hits_total"))
}

func TestMetricsDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := elimination.NewMetrics(reg)
	require.NoError(t, err)
	_, err = elimination.NewMetrics(reg)
	require.Error(t, err)
}

func TestLoggerAndTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tracer := noop.NewTracerProvider().Tracer("test")
	d := loadDivision(t, "teams4.txt", elimination.WithLogger(logger), elimination.WithTracer(tracer))

	results, err := d.ReportContext(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)

	out := buf.String()
	require.Contains(t, out, "trivially eliminated")
	require.Contains(t, out, "team=Montreal")
	require.Contains(t, out, "flow check")
	require.Contains(t, out, "team=Philadelphia")
}
