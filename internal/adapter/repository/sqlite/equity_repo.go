package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
)

// equityRepository implements domain.EquityRepository
type equityRepository struct {
	db *DB
}

// OpenEquities opens the equity database file and provisions stock_stats
func OpenEquities(ctx context.Context, path string, batchSize int, log *logger.Logger) (*DB, error) {
	return Open(ctx, path, batchSize, log, &equityRow{})
}

// NewEquityRepository creates a new equity repository
func NewEquityRepository(db *DB) domain.EquityRepository {
	return &equityRepository{db: db}
}

// InsertAll writes every record in batches inside one transaction
func (r *equityRepository) InsertAll(ctx context.Context, records []domain.EquityRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]equityRow, len(records))
	for i, record := range records {
		rows[i] = newEquityRow(record)
	}

	err := r.db.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, r.db.batchSize).Error
	})
	return domain.NewStoreError(domain.DatasetEquities, "insert records", err)
}

// SelectAll retrieves every equity record
func (r *equityRepository) SelectAll(ctx context.Context) ([]domain.EquityRecord, error) {
	var rows []equityRow
	if err := r.db.gorm.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		return nil, domain.NewStoreError(domain.DatasetEquities, "query records", err)
	}

	records := make([]domain.EquityRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}

// Count returns the number of stored equity records
func (r *equityRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.gorm.WithContext(ctx).Model(&equityRow{}).Count(&count).Error; err != nil {
		return 0, domain.NewStoreError(domain.DatasetEquities, "count records", err)
	}
	return int(count), nil
}
