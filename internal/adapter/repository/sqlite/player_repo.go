package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
)

// playerRepository implements domain.PlayerRepository
type playerRepository struct {
	db *DB
}

// OpenPlayers opens the player database file and provisions baseball_stats
func OpenPlayers(ctx context.Context, path string, batchSize int, log *logger.Logger) (*DB, error) {
	return Open(ctx, path, batchSize, log, &playerRow{})
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *DB) domain.PlayerRepository {
	return &playerRepository{db: db}
}

// InsertAll writes every record in batches inside one transaction
func (r *playerRepository) InsertAll(ctx context.Context, records []domain.PlayerRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]playerRow, len(records))
	for i, record := range records {
		rows[i] = newPlayerRow(record)
	}

	err := r.db.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, r.db.batchSize).Error
	})
	return domain.NewStoreError(domain.DatasetPlayers, "insert records", err)
}

// SelectAll retrieves every player record
func (r *playerRepository) SelectAll(ctx context.Context) ([]domain.PlayerRecord, error) {
	var rows []playerRow
	if err := r.db.gorm.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		return nil, domain.NewStoreError(domain.DatasetPlayers, "query records", err)
	}

	records := make([]domain.PlayerRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}

// Count returns the number of stored player records
func (r *playerRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.gorm.WithContext(ctx).Model(&playerRow{}).Count(&count).Error; err != nil {
		return 0, domain.NewStoreError(domain.DatasetPlayers, "count records", err)
	}
	return int(count), nil
}
