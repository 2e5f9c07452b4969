package domain

// Equity source columns
const (
	EquityColumnCompanyName       = "company_name"
	EquityColumnTicker            = "ticker"
	EquityColumnExchangeCountry   = "exchange_country"
	EquityColumnPrice             = "price"
	EquityColumnExchangeRate      = "exchange_rate"
	EquityColumnSharesOutstanding = "shares_outstanding"
	EquityColumnNetIncome         = "net_income"
)

// EquityRecord represents one validated equity valuation row
// Price, ExchangeRate, SharesOutstanding and NetIncome are strictly positive.
// The market value and P/E ratio are derived on every read, so they can never
// disagree with the inputs.
type EquityRecord struct {
	CompanyName       string
	Ticker            string
	ExchangeCountry   string
	Price             float64
	ExchangeRate      float64
	SharesOutstanding float64
	NetIncome         float64
}

// MarketValueUSD returns price * exchange rate * shares outstanding
func (e EquityRecord) MarketValueUSD() float64 {
	return e.Price * e.ExchangeRate * e.SharesOutstanding
}

// PERatio returns price * (shares outstanding / net income)
// This is not the textbook price/EPS ratio; the formula is kept as the reports have always used it.
func (e EquityRecord) PERatio() float64 {
	return e.Price * (e.SharesOutstanding / e.NetIncome)
}
