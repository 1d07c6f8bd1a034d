// Package server exposes a Division's elimination answers over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pennant/elimination"
)

const shutdownTimeout = 5 * time.Second

// Server answers elimination queries for one division.
type Server struct {
	division *elimination.Division
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGatherer serves g at /metrics. Without it /metrics is not routed.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// New returns a Server over d.
func New(d *elimination.Division, opts ...Option) *Server {
	s := &Server{division: d, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// TeamSummary is one row of GET /teams.
type TeamSummary struct {
	Name      string `json:"name"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Remaining int    `json:"remaining"`
}

// TeamResponse is the body of GET /teams/{team}.
type TeamResponse struct {
	elimination.Result
	Evidence *elimination.Evidence `json:"evidence,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes returns the router for the server's endpoints.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/teams", s.listTeams)
	r.Get("/teams/{team}", s.getTeam)
	r.Get("/eliminated", s.listEliminated)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// ListenAndServe serves Routes on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	ros := s.division.Roster()
	out := make([]TeamSummary, 0, ros.TeamCount())
	for i := 0; i < ros.TeamCount(); i++ {
		t := ros.Team(i)
		out = append(out, TeamSummary{Name: t.Name, Wins: t.Wins, Losses: t.Losses, Remaining: t.Remaining})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")

	res, err := s.division.ResultContext(r.Context(), team)
	if err != nil {
		s.writeError(w, err)
		return
	}
	body := TeamResponse{Result: res}
	if res.Eliminated() {
		e, err := s.division.EvidenceFor(res)
		if err != nil {
			s.writeError(w, err)
			return
		}
		body.Evidence = &e
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) listEliminated(w http.ResponseWriter, r *http.Request) {
	results, err := s.division.ReportContext(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]elimination.Result, 0, len(results))
	for _, res := range results {
		if res.Eliminated() {
			out = append(out, res)
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, elimination.ErrInvalidTeam) {
		status = http.StatusNotFound
	} else {
		s.logger.Error("query failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
