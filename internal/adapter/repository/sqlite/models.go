package sqlite

import "github.com/simaogato/statflow-etl/internal/domain"

// playerRow maps the baseball_stats relation
type playerRow struct {
	PlayerName  string  `gorm:"column:player_name;type:text;not null"`
	Salary      int64   `gorm:"column:salary;type:integer;not null"`
	GamesPlayed int64   `gorm:"column:games_played;type:integer;not null"`
	Average     float64 `gorm:"column:average;type:real;not null"`
}

func (playerRow) TableName() string { return "baseball_stats" }

func newPlayerRow(r domain.PlayerRecord) playerRow {
	return playerRow{
		PlayerName:  r.Name,
		Salary:      r.Salary,
		GamesPlayed: r.GamesPlayed,
		Average:     r.BattingAverage,
	}
}

func (p playerRow) record() domain.PlayerRecord {
	return domain.PlayerRecord{
		Name:           p.PlayerName,
		Salary:         p.Salary,
		GamesPlayed:    p.GamesPlayed,
		BattingAverage: p.Average,
	}
}

// equityRow maps the stock_stats relation
// MarketValueUSD and PERatio are filled from the record on every write.
type equityRow struct {
	CompanyName       string  `gorm:"column:company_name;type:text;not null"`
	Ticker            string  `gorm:"column:ticker;type:text;not null"`
	ExchangeCountry   string  `gorm:"column:exchange_country;type:text;not null"`
	Price             float64 `gorm:"column:price;type:real;not null"`
	ExchangeRate      float64 `gorm:"column:exchange_rate;type:real;not null"`
	SharesOutstanding float64 `gorm:"column:shares_outstanding;type:real;not null"`
	NetIncome         float64 `gorm:"column:net_income;type:real;not null"`
	MarketValueUSD    float64 `gorm:"column:market_value_usd;type:real;not null"`
	PERatio           float64 `gorm:"column:pe_ratio;type:real;not null"`
}

func (equityRow) TableName() string { return "stock_stats" }

func newEquityRow(r domain.EquityRecord) equityRow {
	return equityRow{
		CompanyName:       r.CompanyName,
		Ticker:            r.Ticker,
		ExchangeCountry:   r.ExchangeCountry,
		Price:             r.Price,
		ExchangeRate:      r.ExchangeRate,
		SharesOutstanding: r.SharesOutstanding,
		NetIncome:         r.NetIncome,
		MarketValueUSD:    r.MarketValueUSD(),
		PERatio:           r.PERatio(),
	}
}

func (e equityRow) record() domain.EquityRecord {
	return domain.EquityRecord{
		CompanyName:       e.CompanyName,
		Ticker:            e.Ticker,
		ExchangeCountry:   e.ExchangeCountry,
		Price:             e.Price,
		ExchangeRate:      e.ExchangeRate,
		SharesOutstanding: e.SharesOutstanding,
		NetIncome:         e.NetIncome,
	}
}
