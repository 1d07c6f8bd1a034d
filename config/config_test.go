package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/config"
	"github.com/katalvlaran/pennant/flow"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pennant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
roster:
  path: divisions/east.txt
  outside_games: true
flow:
  method: dinic
http:
  addr: 127.0.0.1:9000
logging:
  level: debug
  format: json
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, &config.Config{
		Roster:  config.RosterConfig{Path: "divisions/east.txt", OutsideGames: true},
		Flow:    config.FlowConfig{Method: "dinic"},
		HTTP:    config.HTTPConfig{Addr: "127.0.0.1:9000"},
		Logging: config.LoggingConfig{Level: "debug", Format: "json"},
	}, cfg)
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.RosterOptions(), 1)

	m, err := cfg.FlowMethod()
	require.NoError(t, err)
	require.Equal(t, flow.MethodDinic, m)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, "roster:\n  path: east.txt\n"))
	require.NoError(t, err)
	require.Equal(t, "east.txt", cfg.Roster.Path)
	require.Equal(t, config.DefaultFlowMethod, cfg.Flow.Method)
	require.Equal(t, config.DefaultHTTPAddr, cfg.HTTP.Addr)
	require.Nil(t, cfg.RosterOptions())
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv(config.EnvRoster, "west.yaml")
	t.Setenv(config.EnvOutsideGames, "true")
	t.Setenv(config.EnvFlowMethod, "Ford-Fulkerson")
	t.Setenv(config.EnvHTTPAddr, ":9999")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "json")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "west.yaml", cfg.Roster.Path)
	require.True(t, cfg.Roster.OutsideGames)
	require.Equal(t, ":9999", cfg.HTTP.Addr)
	require.NoError(t, cfg.Validate())

	m, err := cfg.FlowMethod()
	require.NoError(t, err)
	require.Equal(t, flow.MethodFordFulkerson, m)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "flow:\n  method: dinic\n")
	t.Setenv(config.EnvFlowMethod, "edmonds-karp")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "edmonds-karp", cfg.Flow.Method)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "flow: [unterminated"))
	require.Error(t, err)

	t.Setenv(config.EnvOutsideGames, "sometimes")
	_, err = config.LoadConfig("")
	require.ErrorContains(t, err, config.EnvOutsideGames)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"method": func(c *config.Config) { c.Flow.Method = "push-relabel" },
		"level":  func(c *config.Config) { c.Logging.Level = "chatty" },
		"format": func(c *config.Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, cfg.Validate())
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "debug"

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("flow check", "team", "Detroit")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "flow check", rec["msg"])
	require.Equal(t, "Detroit", rec["team"])

	buf.Reset()
	cfg.Logging.Format = "text"
	cfg.Logging.Level = "error"
	logger, err = cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("dropped")
	require.Empty(t, buf.String())
}
