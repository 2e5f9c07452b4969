package postgres

import (
	"context"

	"github.com/lib/pq"

	"github.com/simaogato/statflow-etl/internal/domain"
)

// playerRepository implements domain.PlayerRepository
type playerRepository struct {
	db *DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *DB) domain.PlayerRepository {
	return &playerRepository{db: db}
}

// InsertAll copies every record into baseball_stats inside one transaction
func (r *playerRepository) InsertAll(ctx context.Context, records []domain.PlayerRecord) error {
	if len(records) == 0 {
		return nil
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStoreError(domain.DatasetPlayers, "begin transaction", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, pq.CopyIn(playerTable,
		"player_name", "salary", "games_played", "average"))
	if err != nil {
		return domain.NewStoreError(domain.DatasetPlayers, "prepare copy", err)
	}

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.Name,
			record.Salary,
			record.GamesPlayed,
			record.BattingAverage,
		)
		if err != nil {
			stmt.Close()
			return domain.NewStoreError(domain.DatasetPlayers, "insert record", err)
		}
	}

	// Flush buffered rows
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return domain.NewStoreError(domain.DatasetPlayers, "flush copy", err)
	}
	if err := stmt.Close(); err != nil {
		return domain.NewStoreError(domain.DatasetPlayers, "close copy", err)
	}

	if err := dbTx.Commit(); err != nil {
		return domain.NewStoreError(domain.DatasetPlayers, "commit transaction", err)
	}

	return nil
}

// SelectAll retrieves every player record
func (r *playerRepository) SelectAll(ctx context.Context) ([]domain.PlayerRecord, error) {
	query := `
		SELECT player_name, salary, games_played, average
		FROM baseball_stats
		ORDER BY ctid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewStoreError(domain.DatasetPlayers, "query records", err)
	}
	defer rows.Close()

	records := []domain.PlayerRecord{}
	for rows.Next() {
		var record domain.PlayerRecord
		err := rows.Scan(
			&record.Name,
			&record.Salary,
			&record.GamesPlayed,
			&record.BattingAverage,
		)
		if err != nil {
			return nil, domain.NewStoreError(domain.DatasetPlayers, "scan record", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError(domain.DatasetPlayers, "iterate records", err)
	}

	return records, nil
}

// Count returns the number of stored player records
func (r *playerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM baseball_stats`).Scan(&count); err != nil {
		return 0, domain.NewStoreError(domain.DatasetPlayers, "count records", err)
	}
	return count, nil
}
