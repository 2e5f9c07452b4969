package domain

// Player source columns
const (
	PlayerColumnName           = "PLAYER"
	PlayerColumnSalary         = "SALARY"
	PlayerColumnGamesPlayed    = "G"
	PlayerColumnBattingAverage = "AVG"
)

// PlayerRecord represents one validated player performance row
// Salary and GamesPlayed are non-negative integers, BattingAverage is a non-negative real
type PlayerRecord struct {
	Name           string
	Salary         int64
	GamesPlayed    int64
	BattingAverage float64
}
