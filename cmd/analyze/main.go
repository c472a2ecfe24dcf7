// Command analyze prints quick, human-readable heuristics about the board
// configurations in the configs directory. It summarizes board size, GO
// payout and rent spread, the cost of buying the whole board, and how many
// laps of GO payout a player would need to afford it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wricardo/realestate-game/game/config"
	"github.com/wricardo/realestate-game/game/engine"
)

// BoardAnalysis holds the figures printed for one board.
type BoardAnalysis struct {
	Name            string
	BoardSize       int
	GoPayout        int
	StartingBalance int
	RentLow         int
	RentHigh        int
	AverageRent     float64
	TotalCost       int
	Affordable      int // spaces a fresh player can buy outright
	LapsToBuyAll    int // -1 when the board can never be bought
}

func main() {
	loadEnv(os.Stderr)

	configDir := "configs"
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		configDir = dir
	}
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	if err := run(os.Stdout, configDir, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadEnv loads .env files, warning on anything but a missing file
func loadEnv(errOut io.Writer, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(errOut, "Warning: error loading .env file: %v\n", err)
	}
}

func run(out io.Writer, configDir string, logger zerolog.Logger) error {
	manager, err := config.NewManager(configDir, config.WithLogger(logger))
	if err != nil {
		return err
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Fprintf(out, "No board configurations found in %s\n", configDir)
		return nil
	}

	for _, info := range configs {
		fmt.Fprintf(out, "\n=== Analyzing %s ===\n", info.Filename)
		board, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Fprintf(out, "Error loading board: %v\n", err)
			continue
		}
		analysis, err := analyzeBoard(board)
		if err != nil {
			fmt.Fprintf(out, "Error analyzing board: %v\n", err)
			continue
		}
		printAnalysis(out, analysis)
	}
	return nil
}

func analyzeBoard(board *engine.BoardConfig) (*BoardAnalysis, error) {
	eng, err := engine.NewEngine(board)
	if err != nil {
		return nil, err
	}

	balance := board.StartingBalance
	if balance == 0 {
		balance = engine.DefaultStartingBalance
	}

	spaces := eng.Spaces()
	low, high := engine.RentRange(spaces)
	a := &BoardAnalysis{
		Name:            board.Name,
		BoardSize:       eng.BoardSize(),
		GoPayout:        eng.GoPayout(),
		StartingBalance: balance,
		RentLow:         low,
		RentHigh:        high,
		TotalCost:       engine.TotalBoardCost(spaces),
	}

	totalRent := 0
	for _, space := range spaces {
		if space.IsGo() {
			continue
		}
		totalRent += space.Rent
		if space.PurchasePrice() <= balance {
			a.Affordable++
		}
	}
	a.AverageRent = float64(totalRent) / float64(len(spaces)-1)
	a.LapsToBuyAll = lapsNeeded(a.TotalCost-balance, a.GoPayout)
	return a, nil
}

// lapsNeeded returns how many GO payouts cover shortfall, or -1 if none can
func lapsNeeded(shortfall, payout int) int {
	if shortfall <= 0 {
		return 0
	}
	if payout <= 0 {
		return -1
	}
	return (shortfall + payout - 1) / payout
}

func printAnalysis(out io.Writer, a *BoardAnalysis) {
	fmt.Fprintf(out, "Name: %s\n", a.Name)
	fmt.Fprintf(out, "Spaces: %d (GO + %d properties)\n", a.BoardSize, a.BoardSize-1)
	fmt.Fprintf(out, "GO Payout: %d\n", a.GoPayout)
	fmt.Fprintf(out, "Starting Balance: %d\n", a.StartingBalance)
	fmt.Fprintf(out, "Rent Range: %d - %d (average %.1f)\n", a.RentLow, a.RentHigh, a.AverageRent)
	fmt.Fprintf(out, "Whole Board Cost: %d\n", a.TotalCost)
	fmt.Fprintf(out, "Affordable At Start: %d of %d\n", a.Affordable, a.BoardSize-1)

	switch {
	case a.LapsToBuyAll < 0:
		fmt.Fprintf(out, "⚠️  WARNING: GO pays nothing and the starting balance cannot buy the whole board\n")
	case a.LapsToBuyAll == 0:
		fmt.Fprintf(out, "✅ A single player can buy the whole board without passing GO\n")
	default:
		fmt.Fprintf(out, "Laps Of GO Payout To Buy Everything: %d\n", a.LapsToBuyAll)
	}

	if a.Affordable == 0 {
		fmt.Fprintf(out, "⚠️  CRITICAL: no space is affordable with the starting balance\n")
	}
	if a.RentHigh >= a.StartingBalance {
		fmt.Fprintf(out, "⚠️  WARNING: a single rent of %d can bankrupt a fresh player\n", a.RentHigh)
	}
}
