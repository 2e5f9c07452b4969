package validation

import "github.com/simaogato/statflow-etl/internal/domain"

// Equity validates one equity valuation row
// The four numeric inputs must be strictly positive; zero is rejected.
func Equity(row domain.RawRow) domain.Outcome[domain.EquityRecord] {
	c := newFieldChecker(row, domain.EquityColumnCompanyName)

	record := domain.EquityRecord{
		CompanyName:       c.text(domain.EquityColumnCompanyName),
		Ticker:            c.text(domain.EquityColumnTicker),
		ExchangeCountry:   c.text(domain.EquityColumnExchangeCountry),
		Price:             c.float(domain.EquityColumnPrice, StrictlyPositive),
		ExchangeRate:      c.float(domain.EquityColumnExchangeRate, StrictlyPositive),
		SharesOutstanding: c.float(domain.EquityColumnSharesOutstanding, StrictlyPositive),
		NetIncome:         c.float(domain.EquityColumnNetIncome, StrictlyPositive),
	}

	if c.rejection != nil {
		return domain.Rejected[domain.EquityRecord](*c.rejection)
	}
	return domain.Accepted(record)
}
