package postgres

import (
	"context"

	"github.com/lib/pq"

	"github.com/simaogato/statflow-etl/internal/domain"
)

// equityRepository implements domain.EquityRepository
type equityRepository struct {
	db *DB
}

// NewEquityRepository creates a new equity repository
func NewEquityRepository(db *DB) domain.EquityRepository {
	return &equityRepository{db: db}
}

// InsertAll copies every record into stock_stats inside one transaction
// market_value_usd and pe_ratio are computed from the record at write time
func (r *equityRepository) InsertAll(ctx context.Context, records []domain.EquityRecord) error {
	if len(records) == 0 {
		return nil
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStoreError(domain.DatasetEquities, "begin transaction", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, pq.CopyIn(equityTable,
		"company_name", "ticker", "exchange_country", "price", "exchange_rate",
		"shares_outstanding", "net_income", "market_value_usd", "pe_ratio"))
	if err != nil {
		return domain.NewStoreError(domain.DatasetEquities, "prepare copy", err)
	}

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			record.CompanyName,
			record.Ticker,
			record.ExchangeCountry,
			record.Price,
			record.ExchangeRate,
			record.SharesOutstanding,
			record.NetIncome,
			record.MarketValueUSD(),
			record.PERatio(),
		)
		if err != nil {
			stmt.Close()
			return domain.NewStoreError(domain.DatasetEquities, "insert record", err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return domain.NewStoreError(domain.DatasetEquities, "flush copy", err)
	}
	if err := stmt.Close(); err != nil {
		return domain.NewStoreError(domain.DatasetEquities, "close copy", err)
	}

	if err := dbTx.Commit(); err != nil {
		return domain.NewStoreError(domain.DatasetEquities, "commit transaction", err)
	}

	return nil
}

// SelectAll retrieves every equity record
// Only the input columns are read back; derived values come from the record itself.
func (r *equityRepository) SelectAll(ctx context.Context) ([]domain.EquityRecord, error) {
	query := `
		SELECT company_name, ticker, exchange_country, price, exchange_rate, shares_outstanding, net_income
		FROM stock_stats
		ORDER BY ctid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.NewStoreError(domain.DatasetEquities, "query records", err)
	}
	defer rows.Close()

	records := []domain.EquityRecord{}
	for rows.Next() {
		var record domain.EquityRecord
		err := rows.Scan(
			&record.CompanyName,
			&record.Ticker,
			&record.ExchangeCountry,
			&record.Price,
			&record.ExchangeRate,
			&record.SharesOutstanding,
			&record.NetIncome,
		)
		if err != nil {
			return nil, domain.NewStoreError(domain.DatasetEquities, "scan record", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError(domain.DatasetEquities, "iterate records", err)
	}

	return records, nil
}

// Count returns the number of stored equity records
func (r *equityRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_stats`).Scan(&count); err != nil {
		return 0, domain.NewStoreError(domain.DatasetEquities, "count records", err)
	}
	return count, nil
}
