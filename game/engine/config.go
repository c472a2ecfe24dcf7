package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// classicRents is the rent schedule of the 25-space board.
var classicRents = []int{
	50, 50, 50, 75, 75, 75, 100, 100, 100, 150, 150, 150,
	200, 200, 200, 250, 250, 250, 300, 300, 300, 350, 350, 350,
}

// DefaultBoardConfig returns the classic 25-space board
func DefaultBoardConfig() *BoardConfig {
	rents := make([]int, len(classicRents))
	copy(rents, classicRents)
	return &BoardConfig{
		Name:            "classic",
		Description:     "Classic 25-space board: GO plus 24 properties",
		BoardSize:       DefaultBoardSize,
		GoPayout:        DefaultGoPayout,
		Rents:           rents,
		StartingBalance: DefaultStartingBalance,
	}
}

// ValidateBoardConfig validates a board configuration for correctness
func ValidateBoardConfig(config *BoardConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfiguration)
	}

	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfiguration)
	}

	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board_size must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinBoardSize, MaxBoardSize, config.BoardSize)
	}

	if config.GoPayout < 0 {
		return fmt.Errorf("%w: go_payout must be non-negative, got %d", ErrInvalidConfiguration, config.GoPayout)
	}

	if len(config.Rents) != config.BoardSize-1 {
		return fmt.Errorf("%w: rents must have %d entries to match board_size, got %d",
			ErrInvalidConfiguration, config.BoardSize-1, len(config.Rents))
	}
	for i, rent := range config.Rents {
		if rent < 0 {
			return fmt.Errorf("%w: rent for space %d must be non-negative, got %d",
				ErrInvalidConfiguration, i+1, rent)
		}
	}

	if len(config.SpaceNames) > 0 {
		if len(config.SpaceNames) != config.BoardSize {
			return fmt.Errorf("%w: space_names must have %d entries to match board_size, got %d",
				ErrInvalidConfiguration, config.BoardSize, len(config.SpaceNames))
		}
		if config.SpaceNames[GoIndex] != GoName {
			return fmt.Errorf("%w: space_names[0] must be %q, got %q",
				ErrInvalidConfiguration, GoName, config.SpaceNames[GoIndex])
		}
		seen := make(map[string]int, len(config.SpaceNames))
		for i, name := range config.SpaceNames {
			if name == "" {
				return fmt.Errorf("%w: space_names[%d] is empty", ErrInvalidConfiguration, i)
			}
			if prev, dup := seen[name]; dup {
				return fmt.Errorf("%w: space name %q used at %d and %d", ErrInvalidConfiguration, name, prev, i)
			}
			seen[name] = i
		}
	}

	if config.StartingBalance < 0 {
		return fmt.Errorf("%w: starting_balance must be non-negative, got %d",
			ErrInvalidConfiguration, config.StartingBalance)
	}

	return nil
}

// ParseBoardConfig decodes a board configuration. format is "json" or "yaml".
func ParseBoardConfig(data []byte, format string) (*BoardConfig, error) {
	var config BoardConfig
	switch format {
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse json config: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := ValidateBoardConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadBoardConfig loads a board configuration from a .json, .yaml or .yml file
func LoadBoardConfig(filename string) (*BoardConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseBoardConfig(data, FormatFromPath(filename))
}

// FormatFromPath maps a file extension to a config format, defaulting to json
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
