// Package console renders the aggregate reports as plain text.
package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/simaogato/statflow-etl/internal/usecase/aggregator"
)

const (
	tickersHeading  = "Stocks (Number of stock tickers by country)"
	salariesHeading = "Baseball (Average salary by Batting Average):"
)

// Printer writes report blocks to an output stream
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// TickersByCountry writes one "country : count" line per entry, in the given order
func (p *Printer) TickersByCountry(counts []aggregator.CountryCount) error {
	lines := make([]string, len(counts))
	for i, c := range counts {
		lines[i] = fmt.Sprintf("%s : %d", c.Country, c.Count)
	}
	return p.block(tickersHeading, lines)
}

// SalaryByBattingAverage writes one "average : salary" line per entry, in the given order
// The average is printed in its shortest exact form and the salary with two decimals.
func (p *Printer) SalaryByBattingAverage(entries []aggregator.SalaryByAverage) error {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s : %s",
			strconv.FormatFloat(e.BattingAverage, 'f', -1, 64),
			e.Salary.StringFixed(2),
		)
	}
	return p.block(salariesHeading, lines)
}

func (p *Printer) block(heading string, lines []string) error {
	if _, err := fmt.Fprintf(p.out, "%s\n\n", heading); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if _, err := fmt.Fprintln(p.out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
