package domain

import "context"

// PlayerRepository defines the interface for player record persistence operations
type PlayerRepository interface {
	// InsertAll persists a batch of records atomically
	InsertAll(ctx context.Context, records []PlayerRecord) error

	// SelectAll returns every persisted record, in storage order
	SelectAll(ctx context.Context) ([]PlayerRecord, error)

	// Count returns the number of persisted records
	Count(ctx context.Context) (int, error)
}

// EquityRepository defines the interface for equity record persistence operations
type EquityRepository interface {
	// InsertAll persists a batch of records atomically
	// Derived fields are written from the records' current inputs
	InsertAll(ctx context.Context, records []EquityRecord) error

	// SelectAll returns every persisted record, in storage order
	SelectAll(ctx context.Context) ([]EquityRecord, error)

	// Count returns the number of persisted records
	Count(ctx context.Context) (int, error)
}
