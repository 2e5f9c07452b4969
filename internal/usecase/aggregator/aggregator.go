package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/statflow-etl/internal/domain"
)

// CountryCount is the number of equity tickers listed in one exchange country
type CountryCount struct {
	Country string
	Count   int
}

// SalaryByAverage is the salary paid at one distinct batting average
// Salary is the single salary when one player has that average, otherwise the mean
// of every salary sharing it. Players is the number of salaries merged into the entry.
type SalaryByAverage struct {
	BattingAverage float64
	Salary         decimal.Decimal
	Players        int
}

// CountByCountry counts equity records per exchange country
// Logic:
//  1. Count occurrences per distinct country in a single pass
//  2. Sort by count descending; equal counts keep first-seen order
//
// The counts always sum to len(records).
func CountByCountry(records []domain.EquityRecord) []CountryCount {
	counts := make([]CountryCount, 0)
	index := make(map[string]int)

	for _, record := range records {
		i, ok := index[record.ExchangeCountry]
		if !ok {
			i = len(counts)
			index[record.ExchangeCountry] = i
			counts = append(counts, CountryCount{Country: record.ExchangeCountry})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// AverageSalaryByBattingAverage groups player salaries by batting average
// Logic:
//  1. Project records to (salary, average) pairs and sort by average descending
//  2. Scan once, grouping consecutive entries whose averages are exactly equal
//  3. Emit one entry per group: the lone salary, or the mean of the group
//
// Averages are compared with exact floating-point equality, no tolerance.
func AverageSalaryByBattingAverage(records []domain.PlayerRecord) []SalaryByAverage {
	type pair struct {
		salary  int64
		average float64
	}

	pairs := make([]pair, len(records))
	for i, record := range records {
		pairs[i] = pair{salary: record.Salary, average: record.BattingAverage}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].average > pairs[j].average
	})

	result := make([]SalaryByAverage, 0)
	for start := 0; start < len(pairs); {
		end := start + 1
		total := decimal.NewFromInt(pairs[start].salary)
		for end < len(pairs) && pairs[end].average == pairs[start].average {
			total = total.Add(decimal.NewFromInt(pairs[end].salary))
			end++
		}

		size := end - start
		result = append(result, SalaryByAverage{
			BattingAverage: pairs[start].average,
			Salary:         total.Div(decimal.NewFromInt(int64(size))),
			Players:        size,
		})
		start = end
	}

	return result
}
