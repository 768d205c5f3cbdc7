package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(New("", t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Loader.Registry)
	assert.Empty(t, cfg.Loader.Layers)
	assert.Equal(t, 64, cfg.Loader.MaxPlatforms)

	require.Len(t, cfg.Drivers, 1)
	assert.Equal(t, "reference", cfg.Drivers[0].Name)
	assert.Equal(t, "3.0", cfg.Drivers[0].Version)
	assert.Equal(t, 1, cfg.Drivers[0].Platforms)

	assert.Equal(t, SinkNone, cfg.Stats.Sink)
	assert.Equal(t, 10*time.Second, cfg.Stats.FlushInterval)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, time.Second, cfg.Server.StreamInterval)
	assert.Empty(t, cfg.Server.AuthSecret)
	assert.False(t, cfg.Server.Profiling)
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
log:
  level: debug
  format: json
loader:
  layers: [calltrace, apistats]
  max_platforms: 8
drivers:
  - name: modern
    version: 3.0
    platforms: 2
    devices: 1
  - name: vintage
    version: "1.1"
    platforms: 1
    devices: 2
    omit: [clIcdGetPlatformIDsKHR]
stats:
  sink: sql
  flush_interval: 2s
  sql:
    driver: sqlite3
    dsn: ":memory:"
server:
  addr: 127.0.0.1:9000
`)

	cfg, err := LoadFrom(New("", dir))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"calltrace", "apistats"}, cfg.Loader.Layers)
	assert.True(t, cfg.HasLayer("apistats"))
	assert.Equal(t, 8, cfg.Loader.MaxPlatforms)

	require.Len(t, cfg.Drivers, 2)
	assert.Equal(t, "3.0", cfg.Drivers[0].Version)
	assert.Equal(t, "1.1", cfg.Drivers[1].Version)
	assert.Equal(t, []string{"clIcdGetPlatformIDsKHR"}, cfg.Drivers[1].Omit)

	assert.Equal(t, SinkSQL, cfg.Stats.Sink)
	assert.Equal(t, 2*time.Second, cfg.Stats.FlushInterval)
	assert.Equal(t, ":memory:", cfg.Stats.SQL.DSN)
	assert.Equal(t, "cl_api_stats", cfg.Stats.SQL.Table)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := writeConfig(t, "log:\n  level: warn\n")
	cfg, err := Load(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CLDISPATCH_LOG_LEVEL", "error")
	t.Setenv("CLDISPATCH_LOADER_LAYERS", "apistats,calltrace")
	t.Setenv("CLDISPATCH_SERVER_ADDR", ":8181")
	t.Setenv("CLDISPATCH_SERVER_AUTH_SECRET", "s3cret")
	t.Setenv("CLDISPATCH_SERVER_PPROF", "true")

	cfg, err := LoadFrom(New("", t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, []string{"apistats", "calltrace"}, cfg.Loader.Layers)
	assert.Equal(t, ":8181", cfg.Server.Address)
	assert.Equal(t, "s3cret", cfg.Server.AuthSecret)
	assert.True(t, cfg.Server.Profiling)
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"log format":       "log:\n  format: xml\n",
		"unknown layer":    "loader:\n  layers: [tracing]\n",
		"duplicate layer":  "loader:\n  layers: [apistats, apistats]\n",
		"max platforms":    "loader:\n  max_platforms: 0\n",
		"no drivers":       "drivers: []\n",
		"unnamed driver":   "drivers:\n  - version: \"1.0\"\n",
		"duplicate driver": "drivers:\n  - name: a\n    version: \"1.0\"\n  - name: a\n    version: \"1.0\"\n",
		"unknown sink":     "stats:\n  sink: kafka\n",
		"sink no layer":    "stats:\n  sink: redis\n",
		"sql driver":       "loader:\n  layers: [apistats]\nstats:\n  sink: sql\n  sql:\n    driver: mysql\n",
		"flush interval":   "stats:\n  flush_interval: 0s\n",
		"stream interval":  "server:\n  stream_interval: 0s\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(New("", writeConfig(t, content)))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestFloatToVersionString(t *testing.T) {
	dir := writeConfig(t, "drivers:\n  - name: a\n    version: 2.1\n  - name: b\n    version: 3\n")
	cfg, err := LoadFrom(New("", dir))
	require.NoError(t, err)
	assert.Equal(t, "2.1", cfg.Drivers[0].Version)
	// integers are not floats; ParseVersion rejects them when the driver is built
	assert.Equal(t, "3", cfg.Drivers[1].Version)
}
