package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/realestate-game/game/engine"
)

var errInvalidConfigs = errors.New("some configurations have errors")

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational notes; otherwise it
// lists the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// validateBoardFile loads a board configuration and reports on it. Beyond
// structural validation it notes the rent range, the cost of the whole board
// and whether the suggested starting balance can buy anything.
func validateBoardFile(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	board, err := engine.LoadBoardConfig(path)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	eng, err := engine.NewEngine(board)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	spaces := eng.Spaces()
	low, high := engine.RentRange(spaces)
	result.Messages = append(result.Messages,
		fmt.Sprintf("✓ %d spaces, GO payout %d", len(spaces), board.GoPayout),
		fmt.Sprintf("✓ Rents %d-%d, whole board costs %d", low, high, engine.TotalBoardCost(spaces)),
	)

	balance := board.StartingBalance
	if balance == 0 {
		balance = engine.DefaultStartingBalance
	}
	if cheapest := engine.PurchasePrice(low); cheapest > balance {
		result.Messages = append(result.Messages,
			fmt.Sprintf("⚠ Starting balance %d cannot buy the cheapest space (%d)", balance, cheapest))
	}
	return result
}

// boardFiles returns the config files in dir, sorted
func boardFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// validate checks the given files, or every config in the config directory,
// and fails if any of them is invalid
func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		var err error
		files, err = boardFiles(a.configDir)
		if err != nil {
			return fmt.Errorf("error finding config files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no board configurations found in %s", a.configDir)
		}
	}

	allValid := true
	for _, file := range files {
		result := validateBoardFile(file)
		a.logger.Debug().Str("file", file).Bool("valid", result.Valid).Msg("validated board config")

		fmt.Fprintf(a.out, "\n%s %s\n", strings.Repeat("=", 20), result.File)
		if result.Valid {
			fmt.Fprintln(a.out, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(a.out, "  "+info)
			}
			continue
		}

		allValid = false
		fmt.Fprintln(a.out, "❌ INVALID")
		for _, msg := range result.Messages {
			fmt.Fprintln(a.out, "  ❌ "+msg)
		}
	}

	fmt.Fprintf(a.out, "\n%s\n", strings.Repeat("=", 40))
	if !allValid {
		fmt.Fprintln(a.out, "❌ Some configurations have errors")
		return errInvalidConfigs
	}
	fmt.Fprintln(a.out, "✅ All configurations are valid!")
	return nil
}
