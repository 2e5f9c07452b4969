package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquityRecord_DerivedFields(t *testing.T) {
	tests := []struct {
		name        string
		record      EquityRecord
		wantMarket  float64
		wantPERatio float64
	}{
		{
			name: "unit exchange rate",
			record: EquityRecord{
				CompanyName:       "Acme Corp",
				Ticker:            "ACME",
				ExchangeCountry:   "United States",
				Price:             10,
				ExchangeRate:      1,
				SharesOutstanding: 1000,
				NetIncome:         500,
			},
			wantMarket:  10000,
			wantPERatio: 20,
		},
		{
			name: "foreign listing",
			record: EquityRecord{
				CompanyName:       "Nordic Shipping",
				Ticker:            "NSH",
				ExchangeCountry:   "Norway",
				Price:             4,
				ExchangeRate:      0.5,
				SharesOutstanding: 200,
				NetIncome:         8,
			},
			wantMarket:  400,
			wantPERatio: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMarket, tt.record.MarketValueUSD(), 1e-9)
			assert.InDelta(t, tt.wantPERatio, tt.record.PERatio(), 1e-9)
		})
	}
}

func TestEquityRecord_DerivedFieldsFollowInputs(t *testing.T) {
	record := EquityRecord{Price: 2, ExchangeRate: 3, SharesOutstanding: 5, NetIncome: 10}
	assert.InDelta(t, 30.0, record.MarketValueUSD(), 1e-9)

	record.Price = 4
	assert.InDelta(t, 60.0, record.MarketValueUSD(), 1e-9)
	assert.InDelta(t, 2.0, record.PERatio(), 1e-9)
}
