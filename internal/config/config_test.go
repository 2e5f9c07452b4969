package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	yaml := `
base_dir: /data/etl
sources:
  players: mlb.csv
  equities: stocks.xlsx
store:
  driver: postgres
  batch_size: 100
  postgres:
    host: localhost
    port: 5433
    name: statflow
    user: etl
    password: secret
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/etl", cfg.BaseDir)
	assert.Equal(t, "mlb.csv", cfg.Sources.Players)
	assert.Equal(t, "stocks.xlsx", cfg.Sources.Equities)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 100, cfg.Store.BatchSize)
	assert.Equal(t, 5433, cfg.Store.Postgres.Port)
	assert.Equal(t, "etl", cfg.Store.Postgres.User)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_STATFLOW_DB_PASSWORD", "secret123")

	yaml := `
store:
  driver: postgres
  postgres:
    host: localhost
    name: statflow
    user: etl
    password: ${TEST_STATFLOW_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret123", cfg.Store.Postgres.Password)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("STATFLOW_STORE_DRIVER", "sqlite")
	t.Setenv("STATFLOW_SOURCES_PLAYERS", "override.csv")
	t.Setenv("STATFLOW_STORE_BATCH_SIZE", "42")
	t.Setenv("STATFLOW_STORE_SQLITE_PLAYERS_PATH", "players.sqlite")

	yaml := `
sources:
  players: mlb.csv
store:
  driver: postgres
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "override.csv", cfg.Sources.Players)
	assert.Equal(t, 42, cfg.Store.BatchSize)
	assert.Equal(t, "players.sqlite", cfg.Store.SQLite.PlayersPath)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := LoadAndValidate("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPlayersSource, cfg.Sources.Players)
	assert.Equal(t, DefaultEquitiesSource, cfg.Sources.Equities)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, DefaultBatchSize, cfg.Store.BatchSize)
	assert.Equal(t, DefaultSQLitePlayersPath, cfg.Store.SQLite.PlayersPath)
	assert.Equal(t, DefaultSQLiteEquitiesPath, cfg.Store.SQLite.EquitiesPath)
	assert.Equal(t, DefaultPostgresPort, cfg.Store.Postgres.Port)
	assert.Equal(t, DefaultPostgresSSLMode, cfg.Store.Postgres.SSLMode)
	assert.Equal(t, DefaultLoggingMode, cfg.Logging.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "store: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:    "unknown driver",
			modify:  func(c *Config) { c.Store.Driver = "mysql" },
			wantErr: "Config.Store.Driver",
		},
		{
			name:    "zero batch size",
			modify:  func(c *Config) { c.Store.BatchSize = -1 },
			wantErr: "Config.Store.BatchSize",
		},
		{
			name:    "unknown logging mode",
			modify:  func(c *Config) { c.Logging.Mode = "verbose" },
			wantErr: "Config.Logging.Mode",
		},
		{
			name: "postgres without host",
			modify: func(c *Config) {
				c.Store.Driver = DriverPostgres
				c.Store.Postgres.Name = "statflow"
				c.Store.Postgres.User = "etl"
			},
			wantErr: "store.postgres.host is required",
		},
		{
			name: "postgres without user",
			modify: func(c *Config) {
				c.Store.Driver = DriverPostgres
				c.Store.Postgres.Host = "localhost"
				c.Store.Postgres.Name = "statflow"
			},
			wantErr: "store.postgres.user is required",
		},
		{
			name: "postgres bad port",
			modify: func(c *Config) {
				c.Store.Driver = DriverPostgres
				c.Store.Postgres.Host = "localhost"
				c.Store.Postgres.Name = "statflow"
				c.Store.Postgres.User = "etl"
				c.Store.Postgres.Port = 70000
			},
			wantErr: "store.postgres.port must be between 1 and 65535",
		},
		{
			name: "complete postgres block",
			modify: func(c *Config) {
				c.Store.Driver = DriverPostgres
				c.Store.Postgres.Host = "localhost"
				c.Store.Postgres.Name = "statflow"
				c.Store.Postgres.User = "etl"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := &Config{BaseDir: "/data/etl"}

	assert.Equal(t, filepath.Join("/data/etl", "mlb.csv"), cfg.Resolve("mlb.csv"))
	assert.Equal(t, "/tmp/stocks.csv", cfg.Resolve("/tmp/stocks.csv"))
	assert.Equal(t, "", cfg.Resolve(""))

	cfg.BaseDir = ""
	assert.Equal(t, "mlb.csv", cfg.Resolve("mlb.csv"))
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
