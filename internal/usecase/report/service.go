package report

import (
	"context"
	"fmt"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/usecase/aggregator"
)

// ReportService builds the aggregate reports from the persisted datasets
type ReportService struct {
	PlayerRepo domain.PlayerRepository
	EquityRepo domain.EquityRepository
}

// NewReportService creates a new ReportService instance
func NewReportService(playerRepo domain.PlayerRepository, equityRepo domain.EquityRepository) *ReportService {
	return &ReportService{
		PlayerRepo: playerRepo,
		EquityRepo: equityRepo,
	}
}

// TickersByCountry counts stored equity records per exchange country,
// most frequent first
func (s *ReportService) TickersByCountry(ctx context.Context) ([]aggregator.CountryCount, error) {
	equities, err := s.EquityRepo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read equities: %w", err)
	}
	return aggregator.CountByCountry(equities), nil
}

// SalaryByBattingAverage averages stored player salaries per batting
// average, highest average first
func (s *ReportService) SalaryByBattingAverage(ctx context.Context) ([]aggregator.SalaryByAverage, error) {
	players, err := s.PlayerRepo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return aggregator.AverageSalaryByBattingAverage(players), nil
}
