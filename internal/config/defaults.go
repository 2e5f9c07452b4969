package config

// Default values for optional configuration fields.
const (
	DefaultPlayersSource      = "MLB2008.csv"
	DefaultEquitiesSource     = "StockValuations.csv"
	DefaultDriver             = DriverSQLite
	DefaultBatchSize          = 500
	DefaultSQLitePlayersPath  = "baseball.db"
	DefaultSQLiteEquitiesPath = "stocks.db"
	DefaultPostgresPort       = 5432
	DefaultPostgresSSLMode    = "disable"
	DefaultLoggingMode        = "development"
)

func (c *Config) applyDefaults() {
	if c.Sources.Players == "" {
		c.Sources.Players = DefaultPlayersSource
	}
	if c.Sources.Equities == "" {
		c.Sources.Equities = DefaultEquitiesSource
	}

	if c.Store.Driver == "" {
		c.Store.Driver = DefaultDriver
	}
	if c.Store.BatchSize == 0 {
		c.Store.BatchSize = DefaultBatchSize
	}
	if c.Store.SQLite.PlayersPath == "" {
		c.Store.SQLite.PlayersPath = DefaultSQLitePlayersPath
	}
	if c.Store.SQLite.EquitiesPath == "" {
		c.Store.SQLite.EquitiesPath = DefaultSQLiteEquitiesPath
	}
	if c.Store.Postgres.Port == 0 {
		c.Store.Postgres.Port = DefaultPostgresPort
	}
	if c.Store.Postgres.SSLMode == "" {
		c.Store.Postgres.SSLMode = DefaultPostgresSSLMode
	}

	if c.Logging.Mode == "" {
		c.Logging.Mode = DefaultLoggingMode
	}
}
