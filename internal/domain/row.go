package domain

import "fmt"

// RawRow is one header-keyed row read from a source, before validation
type RawRow map[string]string

// Rejection describes why a raw row was dropped
// Field is the first field that failed, Identity the player or company name of the row
type Rejection struct {
	Field    string
	Identity string
	Value    string
	Reason   string
}

// Error implements error so a rejection can be logged or wrapped like any other failure
func (r Rejection) Error() string {
	return fmt.Sprintf("bad data in %s for %s: %s", r.Field, r.Identity, r.Reason)
}

// Outcome is the result of validating one raw row: either an accepted record or a rejection,
// never both and never a partially filled record
type Outcome[T any] struct {
	record    T
	rejection *Rejection
}

// Accepted wraps a fully validated record
func Accepted[T any](record T) Outcome[T] {
	return Outcome[T]{record: record}
}

// Rejected wraps the reason a row was dropped
func Rejected[T any](rejection Rejection) Outcome[T] {
	return Outcome[T]{rejection: &rejection}
}

// Record returns the validated record and true, or the zero value and false when rejected
func (o Outcome[T]) Record() (T, bool) {
	if o.rejection != nil {
		var zero T
		return zero, false
	}
	return o.record, true
}

// Rejection returns the rejection reason and true when the row was dropped
func (o Outcome[T]) Rejection() (Rejection, bool) {
	if o.rejection == nil {
		return Rejection{}, false
	}
	return *o.rejection, true
}

// IsAccepted reports whether the row produced a record
func (o Outcome[T]) IsAccepted() bool {
	return o.rejection == nil
}
