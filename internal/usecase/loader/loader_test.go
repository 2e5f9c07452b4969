package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/simaogato/statflow-etl/internal/domain"
	"github.com/simaogato/statflow-etl/internal/logger"
	"github.com/simaogato/statflow-etl/internal/usecase/validation"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestLoad_PlayersKeepsOrderAndDropsRejects(t *testing.T) {
	path := writeSource(t, "MLB2008.csv", "PLAYER,SALARY,G,AVG\n"+
		"Alpha,100,50,0.300\n"+
		"Bravo,-1,60,0.300\n"+
		"Charlie,50,40,0.250\n"+
		"Delta,75,,0.275\n"+
		"Alpha,100,50,0.300\n")
	log, logs := observedLogger()

	dataset, err := Load(path, validation.Player, log)
	require.NoError(t, err)

	names := make([]string, 0, len(dataset.Records))
	for _, r := range dataset.Records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Alpha", "Charlie", "Alpha"}, names)
	assert.Equal(t, Summary{Source: path, Processed: 5, Accepted: 3, Rejected: 2}, dataset.Summary)

	warnings := logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warnings, 2)
	assert.Equal(t, "bad data in SALARY for Bravo", warnings[0].Message)
	assert.Equal(t, "bad data in G for Delta", warnings[1].Message)
	assert.Equal(t, "Delta", warnings[1].ContextMap()["identity"])
}

func TestLoad_ColumnOrderDoesNotMatter(t *testing.T) {
	path := writeSource(t, "players.csv", "AVG,G,SALARY,PLAYER\n0.300,50,100,Alpha\n")

	dataset, err := Load(path, validation.Player, logger.NewNop())
	require.NoError(t, err)
	require.Len(t, dataset.Records, 1)
	assert.Equal(t, domain.PlayerRecord{Name: "Alpha", Salary: 100, GamesPlayed: 50, BattingAverage: 0.3}, dataset.Records[0])
}

func TestLoad_EquitySentinelRowIsDropped(t *testing.T) {
	path := writeSource(t, "StockValuations.csv", "\ufeffcompany_name, ticker ,exchange_country,price,exchange_rate,shares_outstanding,net_income\n"+
		"Acme Corp,ACME,United States,10,1,1000,500\n"+
		"Broken Ltd,BRK,United Kingdom,5,1.3,200,#DIV/0!\n"+
		"\n"+
		"Nordic Shipping,NSH,Norway,4,0.5,200,8\n")
	log, logs := observedLogger()

	dataset, err := Load(path, validation.Equity, log)
	require.NoError(t, err)

	require.Len(t, dataset.Records, 2)
	assert.Equal(t, "ACME", dataset.Records[0].Ticker)
	assert.Equal(t, "NSH", dataset.Records[1].Ticker)
	assert.Equal(t, 1, dataset.Summary.Rejected)

	warnings := logs.FilterMessage("bad data in net_income for Broken Ltd").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "#DIV/0!", warnings[0].ContextMap()["value"])
}

func TestLoad_ShortRowReadsMissingCellsAsEmpty(t *testing.T) {
	path := writeSource(t, "players.csv", "PLAYER,SALARY,G,AVG\nAlpha,100\n")

	dataset, err := Load(path, validation.Player, logger.NewNop())
	require.NoError(t, err)
	assert.Empty(t, dataset.Records)
	assert.Equal(t, 1, dataset.Summary.Rejected)
}

func TestLoad_EmptySources(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no bytes", content: ""},
		{name: "header only", content: "PLAYER,SALARY,G,AVG\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, "players.csv", tt.content)

			dataset, err := Load(path, validation.Player, logger.NewNop())
			require.NoError(t, err)
			assert.NotNil(t, dataset.Records)
			assert.Empty(t, dataset.Records)
			assert.Zero(t, dataset.Summary.Processed)
		})
	}
}

func TestLoad_SourceNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), validation.Player, logger.NewNop())
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)

	_, err = Load(t.TempDir(), validation.Player, logger.NewNop())
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
}

func TestLoad_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"PLAYER", "SALARY", "G", "AVG"},
		{"Alpha", "100", "50", "0.300"},
		{"Bravo", "200", "60", "#DIV/0!"},
		{"Charlie", "50", "40", "0.250"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "MLB2008.xlsx")
	require.NoError(t, f.SaveAs(path))

	dataset, err := Load(path, validation.Player, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, dataset.Records, 2)
	assert.Equal(t, "Alpha", dataset.Records[0].Name)
	assert.Equal(t, "Charlie", dataset.Records[1].Name)
	assert.Equal(t, 1, dataset.Summary.Rejected)
}

func TestLoad_SpreadsheetReadsRawNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"PLAYER", "SALARY", "G", "AVG"},
		{"Alpha", 1500000, 162, 0.275},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	// "#,##0" would display 1,500,000 and "0.00" would round the average to 0.28
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", thousands))
	twoDecimals, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "D2", "D2", twoDecimals))

	path := filepath.Join(t.TempDir(), "MLB2008.xlsx")
	require.NoError(t, f.SaveAs(path))

	dataset, err := Load(path, validation.Player, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, dataset.Records, 1)
	assert.Equal(t, domain.PlayerRecord{Name: "Alpha", Salary: 1500000, GamesPlayed: 162, BattingAverage: 0.275}, dataset.Records[0])
	assert.Zero(t, dataset.Summary.Rejected)
}
