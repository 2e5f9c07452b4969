package domain

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when an input dataset path does not exist
var ErrSourceNotFound = errors.New("source not found")

// Dataset names used in logs and store errors
const (
	DatasetPlayers  = "players"
	DatasetEquities = "equities"
)

// StoreError is returned by repositories when persistence or retrieval fails
type StoreError struct {
	Dataset string
	Op      string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: failed to %s: %v", e.Dataset, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError, returning nil when err is nil
func NewStoreError(dataset, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Dataset: dataset, Op: op, Err: err}
}
