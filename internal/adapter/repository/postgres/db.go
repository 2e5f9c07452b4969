package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/simaogato/statflow-etl/internal/config"
	"github.com/simaogato/statflow-etl/internal/logger"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
	log *logger.Logger
}

// BuildConnString builds a PostgreSQL connection URL from config
func BuildConnString(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultPostgresSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// NewDB creates a new database connection and verifies it with a ping
func NewDB(ctx context.Context, connectionString string, log *logger.Logger) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, log: log.With("store", "postgres")}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
