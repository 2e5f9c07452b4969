// Package validation turns raw source rows into validated domain records.
//
// Each domain has one row validator. Fields are checked in a fixed order by
// column name, so the column order of the source does not matter. The first
// failing field rejects the whole row and no further fields are checked.
package validation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simaogato/statflow-etl/internal/domain"
)

// RowValidator converts one raw row into an accepted record or a rejection
type RowValidator[T any] func(row domain.RawRow) domain.Outcome[T]

// Bound is the allowed range of a numeric field
type Bound int

const (
	// NonNegative accepts zero and above
	NonNegative Bound = iota
	// StrictlyPositive accepts values above zero only
	StrictlyPositive
)

// unnamedIdentity stands in for an empty player or company name in diagnostics
const unnamedIdentity = "unnamed row"

// sentinels are spreadsheet error tokens that must be treated like an empty cell
var sentinels = map[string]struct{}{
	"#DIV/0!": {},
	"#N/A":    {},
	"#VALUE!": {},
	"#REF!":   {},
	"#NAME?":  {},
	"#NUM!":   {},
	"#NULL!":  {},
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// IsSentinel reports whether value is a known non-numeric spreadsheet token
func IsSentinel(value string) bool {
	_, ok := sentinels[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}

// fieldChecker walks the fields of one row and remembers the first failure.
// Once a field has failed every later check is a no-op.
type fieldChecker struct {
	row       domain.RawRow
	identity  string
	rejection *domain.Rejection
}

func newFieldChecker(row domain.RawRow, identityColumn string) *fieldChecker {
	identity := strings.TrimSpace(row[identityColumn])
	if identity == "" {
		identity = unnamedIdentity
	}
	return &fieldChecker{row: row, identity: identity}
}

func (c *fieldChecker) reject(field, value, reason string) {
	c.rejection = &domain.Rejection{
		Field:    field,
		Identity: c.identity,
		Value:    value,
		Reason:   reason,
	}
}

// text returns the trimmed value of a textual field
func (c *fieldChecker) text(field string) string {
	if c.rejection != nil {
		return ""
	}
	raw := c.row[field]
	value := strings.TrimSpace(raw)
	if value == "" {
		c.reject(field, raw, "empty value")
		return ""
	}
	return value
}

// number parses a numeric field and enforces its bound
func (c *fieldChecker) number(field string, bound Bound) (decimal.Decimal, bool) {
	if c.rejection != nil {
		return decimal.Zero, false
	}
	raw := c.row[field]
	value := strings.TrimSpace(raw)

	switch {
	case value == "":
		c.reject(field, raw, "empty value")
		return decimal.Zero, false
	case IsSentinel(value):
		c.reject(field, raw, "non-numeric sentinel "+value)
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		c.reject(field, raw, "not a number")
		return decimal.Zero, false
	}

	switch bound {
	case StrictlyPositive:
		if !d.IsPositive() {
			c.reject(field, raw, "value must be positive")
			return decimal.Zero, false
		}
	default:
		if d.IsNegative() {
			c.reject(field, raw, "value must not be negative")
			return decimal.Zero, false
		}
	}
	return d, true
}

// integer parses a whole-number field
func (c *fieldChecker) integer(field string, bound Bound) int64 {
	d, ok := c.number(field, bound)
	if !ok {
		return 0
	}
	if !d.IsInteger() {
		c.reject(field, c.row[field], "not a whole number")
		return 0
	}
	if d.GreaterThan(maxInt64) {
		c.reject(field, c.row[field], "value out of range")
		return 0
	}
	return d.IntPart()
}

// float parses a floating-point field
func (c *fieldChecker) float(field string, bound Bound) float64 {
	d, ok := c.number(field, bound)
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || (bound == StrictlyPositive && f == 0) {
		c.reject(field, c.row[field], "value out of range")
		return 0
	}
	return f
}
