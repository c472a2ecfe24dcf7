// Package engine provides the core game logic for the Real Estate Game.
//
// The engine package implements the game mechanics including:
//   - A circular board of spaces with GO at index 0
//   - Player registration, balances and positions
//   - Buying spaces at a fixed multiple of their rent
//   - Turn resolution: movement, GO payout, rent and bankruptcy
//   - Detection of the last solvent player
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Space is a single board location and Player an
// account holder; callers only ever see copies (Space, PlayerView) so board
// state can change solely through engine operations. BoardConfig describes a
// board loaded from JSON or YAML files.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults()
//	_ = gameEngine.RegisterPlayer("P1", 1000)
//	_ = gameEngine.RegisterPlayer("P2", 1000)
//
//	turn, err := gameEngine.AdvancePlayer("P1", 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//	bought, _ := gameEngine.BuySpace("P1")
//	winner, over := gameEngine.CheckWinner()
//
// Game Rules:
//
// A player moving past or onto GO collects the GO payout. Landing on a space
// owned by someone else costs its rent. A player whose balance does not
// strictly exceed the rent pays everything they have, loses all their spaces
// back to the bank and never moves again. The game is over when exactly one
// player still has money.
package engine
