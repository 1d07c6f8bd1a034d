package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pennant/config"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/roster"
	"github.com/katalvlaran/pennant/server"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "pennant",
		Usage:     "decide which teams can no longer finish first",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "pennant.yaml",
				Usage:   "path to the configuration file",
			},
		},
		Commands: []*cli.Command{
			newReportCommand(),
			newServeCommand(),
		},
	}
}

func divisionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "roster", Aliases: []string{"r"}, Usage: "division file (.txt or .yaml)"},
		&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "edmonds-karp, ford-fulkerson or dinic"},
		&cli.BoolFlag{Name: "outside-games", Usage: "remaining counts include games outside the division"},
	}
}

func newReportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "print every team's elimination status",
		ArgsUsage: "[roster]",
		Flags: append(divisionFlags(),
			&cli.BoolFlag{Name: "explain", Aliases: []string{"e"}, Usage: "print the arithmetic behind each certificate"},
		),
		Action: func(c *cli.Context) error {
			_, _, d, err := setup(c, nil)
			if err != nil {
				return err
			}
			results, err := d.ReportContext(c.Context)
			if err != nil {
				return err
			}

			return printReport(c.App.Writer, d, results, c.Bool("explain"))
		},
	}
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve elimination queries over HTTP",
		ArgsUsage: "[roster]",
		Flags: append(divisionFlags(),
			&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "listen address"},
		),
		Action: func(c *cli.Context) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			cfg, logger, d, err := setup(c, reg)
			if err != nil {
				return err
			}
			srv := server.New(d, server.WithLogger(logger), server.WithGatherer(reg))

			return srv.ListenAndServe(c.Context, cfg.HTTP.Addr)
		},
	}
}

// setup loads the configuration, applies command-line overrides and builds
// the Division. Metrics are registered with reg when it is non-nil.
func setup(c *cli.Context, reg prometheus.Registerer) (*config.Config, *slog.Logger, *elimination.Division, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	if c.Args().Present() {
		cfg.Roster.Path = c.Args().First()
	}
	if c.IsSet("roster") {
		cfg.Roster.Path = c.String("roster")
	}
	if c.IsSet("method") {
		cfg.Flow.Method = c.String("method")
	}
	if c.IsSet("outside-games") {
		cfg.Roster.OutsideGames = c.Bool("outside-games")
	}
	if c.IsSet("addr") {
		cfg.HTTP.Addr = c.String("addr")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if cfg.Roster.Path == "" {
		return nil, nil, nil, fmt.Errorf("no roster given: pass a file or set %s", config.EnvRoster)
	}

	logger, err := cfg.NewLogger(c.App.ErrWriter)
	if err != nil {
		return nil, nil, nil, err
	}
	method, err := cfg.FlowMethod()
	if err != nil {
		return nil, nil, nil, err
	}

	r, err := roster.Load(cfg.Roster.Path, cfg.RosterOptions()...)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("roster loaded", "path", cfg.Roster.Path, "teams", r.TeamCount())

	opts := []elimination.Option{elimination.WithLogger(logger), elimination.WithMethod(method)}
	if reg != nil {
		m, err := elimination.NewMetrics(reg)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, elimination.WithMetrics(m))
	}
	d, err := elimination.New(r, opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, d, nil
}

func printReport(w io.Writer, d *elimination.Division, results []elimination.Result, explain bool) error {
	for _, r := range results {
		if !r.Eliminated() {
			if _, err := fmt.Fprintf(w, "%s is not eliminated\n", r.Team); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s is eliminated by the subset R = { %s }\n", r.Team, strings.Join(r.Certificate, " ")); err != nil {
			return err
		}
		if !explain {
			continue
		}
		e, err := d.EvidenceFor(r)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", e); err != nil {
			return err
		}
	}

	return nil
}
