// Package config loads pennant's settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/roster"
)

// Environment variables that override file settings.
const (
	EnvRoster       = "PENNANT_ROSTER"
	EnvOutsideGames = "PENNANT_OUTSIDE_GAMES"
	EnvFlowMethod   = "PENNANT_FLOW_METHOD"
	EnvHTTPAddr     = "PENNANT_HTTP_ADDR"
	EnvLogLevel     = "PENNANT_LOG_LEVEL"
	EnvLogFormat    = "PENNANT_LOG_FORMAT"
)

// Defaults applied before the file and the environment are read.
const (
	DefaultFlowMethod = "edmonds-karp"
	DefaultHTTPAddr   = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the configuration settings.
type Config struct {
	Roster  RosterConfig  `yaml:"roster"`
	Flow    FlowConfig    `yaml:"flow"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// RosterConfig locates the division file.
type RosterConfig struct {
	Path string `yaml:"path"`
	// OutsideGames allows remaining counts to include games against teams
	// outside the division.
	OutsideGames bool `yaml:"outside_games"`
}

// FlowConfig selects the max-flow algorithm.
type FlowConfig struct {
	Method string `yaml:"method"` // edmonds-karp|ford-fulkerson|dinic
}

// HTTPConfig holds the query server settings.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds the slog handler settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Default returns a Config with every default filled in.
func Default() *Config {
	return &Config{
		Flow:    FlowConfig{Method: DefaultFlowMethod},
		HTTP:    HTTPConfig{Addr: DefaultHTTPAddr},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// LoadConfig loads the configuration from a YAML file, then applies
// environment overrides. A missing file (or an empty filename) leaves the
// defaults in place of the file.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to env
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvRoster); v != "" {
		c.Roster.Path = v
	}
	if v := os.Getenv(EnvOutsideGames); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvOutsideGames, err)
		}
		c.Roster.OutsideGames = b
	}
	if v := os.Getenv(EnvFlowMethod); v != "" {
		c.Flow.Method = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}

	return nil
}

// Validate rejects unknown methods, levels and formats.
func (c *Config) Validate() error {
	if _, err := c.FlowMethod(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// FlowMethod parses Flow.Method.
func (c *Config) FlowMethod() (flow.Method, error) {
	return flow.ParseMethod(c.Flow.Method)
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}

	return lvl, nil
}

// RosterOptions returns the loader options implied by Roster.
func (c *Config) RosterOptions() []roster.Option {
	if c.Roster.OutsideGames {
		return []roster.Option{roster.WithOutsideGames()}
	}

	return nil
}

// NewLogger builds a slog.Logger writing to w with the configured level and
// format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(c.Logging.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}
}
