// Package seeder populates each domain store from its source the first time
// the pipeline runs against it.
//
// Seeding runs in two steps. Prepare counts a store and, when it is empty,
// reads and validates its source. Commit writes the prepared records. A run
// prepares every dataset before committing any, so a missing source leaves
// all stores untouched.
package seeder

import (
	"context"
	"fmt"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
	"github.com/simaogato/statflow-etl/internal/usecase/loader"
	"github.com/simaogato/statflow-etl/internal/usecase/validation"
)

// Result reports what seeding did for one dataset
type Result struct {
	Dataset  string
	Skipped  bool
	Existing int
	Summary  loader.Summary
}

// DatasetSeeder loads a source into its store when the store is empty
type DatasetSeeder struct {
	playerRepo   domain.PlayerRepository
	equityRepo   domain.EquityRepository
	playersPath  string
	equitiesPath string
	log          *logger.Logger
}

// NewDatasetSeeder creates a new DatasetSeeder instance
func NewDatasetSeeder(
	playerRepo domain.PlayerRepository,
	equityRepo domain.EquityRepository,
	playersPath, equitiesPath string,
	log *logger.Logger,
) *DatasetSeeder {
	return &DatasetSeeder{
		playerRepo:   playerRepo,
		equityRepo:   equityRepo,
		playersPath:  playersPath,
		equitiesPath: equitiesPath,
		log:          log,
	}
}

// PreparePlayers reads the player source unless the store already has records
func (s *DatasetSeeder) PreparePlayers(ctx context.Context) (*Batch[domain.PlayerRecord], error) {
	return prepare[domain.PlayerRecord](ctx, s.log, domain.DatasetPlayers, s.playersPath, s.playerRepo, validation.Player)
}

// PrepareEquities reads the equity source unless the store already has records
func (s *DatasetSeeder) PrepareEquities(ctx context.Context) (*Batch[domain.EquityRecord], error) {
	return prepare[domain.EquityRecord](ctx, s.log, domain.DatasetEquities, s.equitiesPath, s.equityRepo, validation.Equity)
}

// store is the subset of a repository the seeder needs
type store[T any] interface {
	InsertAll(ctx context.Context, records []T) error
	Count(ctx context.Context) (int, error)
}

// Batch holds the validated records of one dataset that are not yet stored
// A batch for an already populated store is empty and commits nothing.
type Batch[T any] struct {
	result  Result
	records []T
	repo    store[T]
	log     *logger.Logger
}

// Pending returns the number of records Commit would write
func (b *Batch[T]) Pending() int {
	return len(b.records)
}

// Commit writes the prepared records to the store
func (b *Batch[T]) Commit(ctx context.Context) (*Result, error) {
	result := b.result
	if result.Skipped {
		return &result, nil
	}

	if err := b.repo.InsertAll(ctx, b.records); err != nil {
		return nil, err
	}

	b.log.Info("dataset loaded",
		"source", result.Summary.Source,
		"processed", result.Summary.Processed,
		"accepted", result.Summary.Accepted,
		"rejected", result.Summary.Rejected,
	)
	return &result, nil
}

func prepare[T any](
	ctx context.Context,
	log *logger.Logger,
	dataset, path string,
	repo store[T],
	validate validation.RowValidator[T],
) (*Batch[T], error) {
	log = log.With("dataset", dataset)
	batch := &Batch[T]{
		result: Result{Dataset: dataset},
		repo:   repo,
		log:    log,
	}

	existing, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		batch.result.Skipped = true
		batch.result.Existing = existing
		log.Info("store already populated, skipping load", "records", existing)
		return batch, nil
	}

	loaded, err := loader.Load(path, validate, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", dataset, err)
	}
	batch.result.Summary = loaded.Summary
	batch.records = loaded.Records
	return batch, nil
}
