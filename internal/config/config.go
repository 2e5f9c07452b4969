package config

import "path/filepath"

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root configuration for a pipeline run.
// Leaf fields must not carry envconfig tags: envconfig falls back to the bare
// tag name (USER, PORT) when the prefixed variable is unset.
type Config struct {
	// BaseDir resolves every relative source and store path.
	BaseDir string        `yaml:"base_dir" split_words:"true"`
	Sources SourcesConfig `yaml:"sources"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig holds the input dataset paths (.csv or .xlsx).
type SourcesConfig struct {
	Players  string `yaml:"players" validate:"required"`
	Equities string `yaml:"equities" validate:"required"`
}

// StoreConfig selects and configures the relational store.
type StoreConfig struct {
	Driver    string         `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	BatchSize int            `yaml:"batch_size" split_words:"true" validate:"gte=1"`
	SQLite    SQLiteConfig   `yaml:"sqlite"`
	Postgres  PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds one database file per dataset.
type SQLiteConfig struct {
	PlayersPath  string `yaml:"players_path" split_words:"true"`
	EquitiesPath string `yaml:"equities_path" split_words:"true"`
}

// PostgresConfig holds a single database connection.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Mode string `yaml:"mode" validate:"omitempty,oneof=development production"`
}

// Resolve returns path joined to BaseDir unless it is already absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}
