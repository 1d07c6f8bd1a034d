package elimination

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/roster"
)

// Division answers elimination queries over one immutable roster.
type Division struct {
	roster *roster.Roster
	teams  []roster.Team

	method  flow.Method
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	cache        *resultCache
	computations atomic.Int64
}

// New returns a Division over r. The roster is assumed validated, which
// roster.New and the roster loaders guarantee.
func New(r *roster.Roster, opts ...Option) (*Division, error) {
	if r == nil {
		return nil, ErrNilRoster
	}

	d := &Division{
		roster: r,
		teams:  make([]roster.Team, r.TeamCount()),
		method: flow.MethodEdmondsKarp,
		logger: slog.New(slog.DiscardHandler),
		tracer: defaultTracer(),
		cache:  newResultCache(r.TeamCount()),
	}
	for i := range d.teams {
		d.teams[i] = r.Team(i)
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Roster returns the roster the Division was built on.
func (d *Division) Roster() *roster.Roster { return d.roster }

// IsEliminated reports whether team can no longer finish first or tied.
func (d *Division) IsEliminated(team string) (bool, error) {
	r, err := d.Result(team)
	if err != nil {
		return false, err
	}

	return r.Eliminated(), nil
}

// Certificate returns the rivals proving team's elimination, in roster
// order, or nil when team is not eliminated.
func (d *Division) Certificate(team string) ([]string, error) {
	r, err := d.Result(team)
	if err != nil {
		return nil, err
	}

	return r.Certificate, nil
}

// Result returns the full answer for team.
func (d *Division) Result(team string) (Result, error) {
	return d.ResultContext(context.Background(), team)
}

// ResultContext is Result with a parent context for tracing. Cancelling ctx
// does not interrupt a computation in progress.
func (d *Division) ResultContext(ctx context.Context, team string) (Result, error) {
	i, err := d.roster.Index(team)
	if err != nil {
		d.metrics.observeQuery(Result{}, false, err)
		return Result{}, err
	}

	r, hit, err := d.cache.load(i, func() (Result, error) { return d.compute(ctx, i) })
	d.metrics.observeQuery(r, hit, err)
	if err != nil {
		return Result{}, err
	}

	return r.clone(), nil
}

// Report returns the results for every team in roster order.
func (d *Division) Report() ([]Result, error) {
	return d.ReportContext(context.Background())
}

// ReportContext is Report with a parent context for tracing.
func (d *Division) ReportContext(ctx context.Context) ([]Result, error) {
	out := make([]Result, 0, len(d.teams))
	for _, t := range d.teams {
		r, err := d.ResultContext(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Explain returns the arithmetic showing why team's certificate eliminates
// it. It fails with ErrNotEliminated when team is still in contention.
func (d *Division) Explain(team string) (Evidence, error) {
	r, err := d.Result(team)
	if err != nil {
		return Evidence{}, err
	}

	return d.EvidenceFor(r)
}

// EvidenceFor is Explain for a Result already in hand. It does not query the
// Division again.
func (d *Division) EvidenceFor(r Result) (Evidence, error) {
	if !r.Eliminated() {
		return Evidence{}, fmt.Errorf("%w: %q", ErrNotEliminated, r.Team)
	}

	return d.evidence(r)
}

func (d *Division) evidence(r Result) (Evidence, error) {
	e := Evidence{Team: r.Team, MaxWins: r.MaxWins, Subset: r.Certificate}
	idx := make([]int, len(r.Certificate))
	for k, name := range r.Certificate {
		i, err := d.roster.Index(name)
		if err != nil {
			return Evidence{}, err
		}
		idx[k] = i
		e.SubsetWins += d.teams[i].Wins
	}
	for a := range idx {
		for b := a + 1; b < len(idx); b++ {
			e.SubsetGames += d.teams[idx[a]].Against[idx[b]]
		}
	}

	return e, nil
}

// Computations returns how many uncached computations have run.
func (d *Division) Computations() int64 { return d.computations.Load() }

// Cached returns how many teams have a memoized result.
func (d *Division) Cached() int { return d.cache.len() }

// compute decides team t, first with the trivial check, then with max flow.
func (d *Division) compute(ctx context.Context, t int) (Result, error) {
	team := d.teams[t]
	_, span := d.tracer.Start(ctx, "elimination.compute",
		trace.WithAttributes(attribute.String("team", team.Name)))
	defer span.End()
	d.computations.Add(1)

	if r, ok := d.trivial(t); ok {
		d.metrics.observeComputation(true, 0)
		span.SetAttributes(attribute.Bool("trivial", true), attribute.Bool("eliminated", true))
		d.logger.Debug("trivially eliminated", "team", team.Name, "by", r.Certificate[0])
		return r, nil
	}

	start := time.Now()
	r, err := d.solve(t)
	d.metrics.observeComputation(false, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.Error("flow check failed", "team", team.Name, "error", err)
		return Result{}, err
	}

	span.SetAttributes(
		attribute.Bool("trivial", false),
		attribute.Bool("eliminated", r.Eliminated()),
		attribute.Int64("flow.value", r.FlowValue),
		attribute.Int64("flow.total_games", r.TotalGames),
	)
	d.logger.Debug("flow check", "team", team.Name, "eliminated", r.Eliminated(),
		"flow", r.FlowValue, "games", r.TotalGames, "certificate", r.Certificate)

	return r, nil
}

// trivial returns an elimination result when some rival has already won more
// games than team t can reach.
func (d *Division) trivial(t int) (Result, bool) {
	maxWins := d.teams[t].MaxWins()
	for i, rival := range d.teams {
		if i != t && rival.Wins > maxWins {
			return Result{
				Team:        d.teams[t].Name,
				Status:      Eliminated,
				Certificate: []string{rival.Name},
				Trivial:     true,
				MaxWins:     maxWins,
			}, true
		}
	}

	return Result{}, false
}

// network builds the flow network for team t and returns it with its
// layout and the total capacity leaving the source.
func (d *Division) network(t int) (*flow.Network, layout, int64, error) {
	l := newLayout(len(d.teams), t)
	net := flow.NewNetwork(l.vertexCount())
	maxWins := d.teams[t].MaxWins()

	var total int64
	for i := range d.teams {
		if i == t {
			continue
		}
		for j := i + 1; j < len(d.teams); j++ {
			if j == t {
				continue
			}
			games := int64(d.teams[i].Against[j])
			total += games
			g := l.gameVertex(i, j)
			if _, err := net.AddEdge(l.source(), g, flow.Finite(games)); err != nil {
				return nil, l, 0, err
			}
			if _, err := net.AddEdge(g, l.teamVertex(i), flow.Unbounded()); err != nil {
				return nil, l, 0, err
			}
			if _, err := net.AddEdge(g, l.teamVertex(j), flow.Unbounded()); err != nil {
				return nil, l, 0, err
			}
		}

		// A negative headroom is caught by the trivial check; clamp anyway.
		headroom := int64(maxWins - d.teams[i].Wins)
		if headroom < 0 {
			headroom = 0
		}
		if _, err := net.AddEdge(l.teamVertex(i), l.sink(), flow.Finite(headroom)); err != nil {
			return nil, l, 0, err
		}
	}

	return net, l, total, nil
}

// solve runs the flow check for team t and reads the certificate off the
// minimum cut.
func (d *Division) solve(t int) (Result, error) {
	name := d.teams[t].Name
	net, l, total, err := d.network(t)
	if err != nil {
		return Result{}, fmt.Errorf("elimination: build network for %q: %w", name, err)
	}

	opts := flow.DefaultOptions()
	opts.Method = d.method
	opts.Logger = d.logger.With("team", name)
	res, err := flow.MaxFlow(net, l.source(), l.sink(), opts)
	if err != nil {
		return Result{}, fmt.Errorf("elimination: max flow for %q: %w", name, err)
	}
	if res.Value > total {
		return Result{}, fmt.Errorf("elimination: %q: %w", name, &flow.InvariantError{
			Edge: -1, Vertex: l.source(),
			Reason: fmt.Sprintf("flow %d exceeds remaining games %d", res.Value, total),
		})
	}

	r := Result{
		Team:       name,
		Status:     NotEliminated,
		MaxWins:    d.teams[t].MaxWins(),
		FlowValue:  res.Value,
		TotalGames: total,
	}
	if res.Value == total {
		return r, nil
	}

	r.Status = Eliminated
	for i, rival := range d.teams {
		if i != t && res.IsSourceSide(l.teamVertex(i)) {
			r.Certificate = append(r.Certificate, rival.Name)
		}
	}
	if len(r.Certificate) == 0 {
		return Result{}, fmt.Errorf("elimination: %q: %w", name, &flow.InvariantError{
			Edge: -1, Vertex: l.source(), Reason: "flow below remaining games but cut holds no team",
		})
	}

	return r, nil
}
