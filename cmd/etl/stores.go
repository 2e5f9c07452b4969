package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/simaogato/statflow-etl/internal/adapter/repository/postgres"
	"github.com/simaogato/statflow-etl/internal/adapter/repository/sqlite"
	"github.com/simaogato/statflow-etl/internal/config"
	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
)

// stores holds the repositories of both datasets and the connections behind them
type stores struct {
	players  domain.PlayerRepository
	equities domain.EquityRepository
	closers  []func() error
}

func (s *stores) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

// openStores connects to the configured driver and provisions its schema
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openSQLite(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	playersPath := cfg.Resolve(cfg.Store.SQLite.PlayersPath)
	equitiesPath := cfg.Resolve(cfg.Store.SQLite.EquitiesPath)

	playersDB, err := sqlite.OpenPlayers(ctx, playersPath, cfg.Store.BatchSize, log)
	if err != nil {
		return nil, err
	}
	equitiesDB, err := sqlite.OpenEquities(ctx, equitiesPath, cfg.Store.BatchSize, log)
	if err != nil {
		_ = playersDB.Close()
		return nil, err
	}

	log.Debug("sqlite stores ready", "players", playersPath, "equities", equitiesPath)
	return &stores{
		players:  sqlite.NewPlayerRepository(playersDB),
		equities: sqlite.NewEquityRepository(equitiesDB),
		closers:  []func() error{playersDB.Close, equitiesDB.Close},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	db, err := postgres.NewDB(ctx, postgres.BuildConnString(cfg.Store.Postgres), log)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debug("postgres store ready", "host", cfg.Store.Postgres.Host, "database", cfg.Store.Postgres.Name)
	return &stores{
		players:  postgres.NewPlayerRepository(db),
		equities: postgres.NewEquityRepository(db),
		closers:  []func() error{db.Close},
	}, nil
}
