package postgres

import (
	"context"
	"fmt"
)

const (
	playerTable = "baseball_stats"
	equityTable = "stock_stats"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS baseball_stats (
		player_name  TEXT NOT NULL,
		salary       BIGINT NOT NULL,
		games_played BIGINT NOT NULL,
		average      DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_stats (
		company_name       TEXT NOT NULL,
		ticker             TEXT NOT NULL,
		exchange_country   TEXT NOT NULL,
		price              DOUBLE PRECISION NOT NULL,
		exchange_rate      DOUBLE PRECISION NOT NULL,
		shares_outstanding DOUBLE PRECISION NOT NULL,
		net_income         DOUBLE PRECISION NOT NULL,
		market_value_usd   DOUBLE PRECISION NOT NULL,
		pe_ratio           DOUBLE PRECISION NOT NULL
	)`,
}

// EnsureSchema creates both relations if they are absent; existing tables are left untouched
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.log.Error("Failed to create schema", "error", err)
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	db.log.Debug("Schema ready", "tables", []string{playerTable, equityTable})
	return nil
}
