// Package scenario drives the game engine from a script.
//
// A scenario names a board, registers a roster of players and lists the
// actions to perform in order. Dice are never rolled here: every movement
// amount comes from the script, so a scenario always replays identically.
//
//	name: two player duel
//	board: classic
//	players:
//	  - name: Alice
//	  - name: Bob
//	    balance: 300
//	actions:
//	  - {player: Alice, move: 3}
//	  - {player: Alice, buy: true}
//	  - {player: Bob, move: 3}
//	  - {check: true}
//
// Runner.Run executes the script against a fresh engine and returns a
// Report with one result per action and the final standings.
package scenario
