// Package config provides board configuration management for the Real Estate Game.
//
// The config package handles:
//   - Loading board configurations from JSON or YAML files
//   - Configuration validation (delegated to engine.ValidateBoardConfig)
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Boards are stored in the configs directory, one file per board. Each
// configuration defines the board size, the GO payout, the rent of every
// space after GO, optional space names and a suggested starting balance.
//
//	name: classic
//	board_size: 25
//	go_payout: 50
//	rents: [50, 50, 50, 75, ...]
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	boardConfig, err := manager.LoadConfig("classic")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
package config
