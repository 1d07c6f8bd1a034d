package elimination

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pennant/flow"
)

const instrumentationName = "github.com/katalvlaran/pennant/elimination"

// Option configures a Division.
type Option func(*Division)

// WithLogger sets the logger for query and flow debug records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Division) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMethod selects the max-flow algorithm (default Edmonds–Karp).
func WithMethod(m flow.Method) Option {
	return func(d *Division) { d.method = m }
}

// WithMetrics records query outcomes, cache hits and flow timings in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Division) { d.metrics = m }
}

// WithTracer sets the tracer used for per-query spans. The default is the
// global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(d *Division) {
		if t != nil {
			d.tracer = t
		}
	}
}

func defaultTracer() trace.Tracer { return otel.Tracer(instrumentationName) }
