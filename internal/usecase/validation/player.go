package validation

import "github.com/simaogato/statflow-etl/internal/domain"

// Player validates one player performance row
// Salary and games played must be non-negative whole numbers, the batting average a non-negative real.
func Player(row domain.RawRow) domain.Outcome[domain.PlayerRecord] {
	c := newFieldChecker(row, domain.PlayerColumnName)

	record := domain.PlayerRecord{
		Name:           c.text(domain.PlayerColumnName),
		Salary:         c.integer(domain.PlayerColumnSalary, NonNegative),
		GamesPlayed:    c.integer(domain.PlayerColumnGamesPlayed, NonNegative),
		BattingAverage: c.float(domain.PlayerColumnBattingAverage, NonNegative),
	}

	if c.rejection != nil {
		return domain.Rejected[domain.PlayerRecord](*c.rejection)
	}
	return domain.Accepted(record)
}
