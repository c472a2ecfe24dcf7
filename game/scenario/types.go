package scenario

import (
	"errors"
	"fmt"

	"github.com/wricardo/realestate-game/game/engine"
)

var (
	ErrInvalidScenario    = errors.New("invalid scenario")
	ErrInvariantViolation = errors.New("invariant violation")
)

// ActionKind identifies what a scripted action does
type ActionKind string

const (
	ActionMove  ActionKind = "move"
	ActionBuy   ActionKind = "buy"
	ActionCheck ActionKind = "check"
)

// Scenario is a scripted game: a board, a roster and an ordered list of actions
type Scenario struct {
	Name         string        `json:"name" yaml:"name"`
	Board        string        `json:"board,omitempty" yaml:"board,omitempty"`
	Players      []PlayerSetup `json:"players" yaml:"players"`
	Actions      []Action      `json:"actions" yaml:"actions"`
	StopOnWinner bool          `json:"stop_on_winner,omitempty" yaml:"stop_on_winner,omitempty"`
	Strict       bool          `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// PlayerSetup registers one player. A nil Balance uses the board's starting balance.
type PlayerSetup struct {
	Name    string `json:"name" yaml:"name"`
	Balance *int   `json:"balance,omitempty" yaml:"balance,omitempty"`
}

// Action is one scripted step. Exactly one of Move, Buy or Check is set.
type Action struct {
	Player string `json:"player,omitempty" yaml:"player,omitempty"`
	Move   *int   `json:"move,omitempty" yaml:"move,omitempty"`
	Buy    bool   `json:"buy,omitempty" yaml:"buy,omitempty"`
	Check  bool   `json:"check,omitempty" yaml:"check,omitempty"`
}

// Kind reports which operation the action performs
func (a Action) Kind() ActionKind {
	switch {
	case a.Move != nil:
		return ActionMove
	case a.Buy:
		return ActionBuy
	default:
		return ActionCheck
	}
}

func (a Action) validate(roster map[string]bool) error {
	set := 0
	if a.Move != nil {
		set++
	}
	if a.Buy {
		set++
	}
	if a.Check {
		set++
	}
	if set != 1 {
		return errors.New("exactly one of move, buy or check must be set")
	}

	if a.Kind() == ActionCheck {
		return nil
	}
	if a.Move != nil && *a.Move <= 0 {
		return fmt.Errorf("move must be positive, got %d", *a.Move)
	}
	if a.Player == "" {
		return fmt.Errorf("%s requires a player", a.Kind())
	}
	if !roster[a.Player] {
		return fmt.Errorf("unknown player %q", a.Player)
	}
	return nil
}

// Validate checks the roster and every action before anything is executed
func (s *Scenario) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: scenario is nil", ErrInvalidScenario)
	}
	if len(s.Players) == 0 {
		return fmt.Errorf("%w: at least one player is required", ErrInvalidScenario)
	}

	roster := make(map[string]bool, len(s.Players))
	for i, p := range s.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidScenario, i)
		}
		if roster[p.Name] {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidScenario, p.Name)
		}
		if p.Balance != nil && *p.Balance < 0 {
			return fmt.Errorf("%w: player %q has negative balance", ErrInvalidScenario, p.Name)
		}
		roster[p.Name] = true
	}

	for i, a := range s.Actions {
		if err := a.validate(roster); err != nil {
			return fmt.Errorf("%w: action %d: %v", ErrInvalidScenario, i, err)
		}
	}
	return nil
}

// ActionResult is the outcome of a single executed action
type ActionResult struct {
	Index  int        `json:"index"`
	Kind   ActionKind `json:"kind"`
	Player string     `json:"player,omitempty"`

	// move
	Turn *engine.TurnResult `json:"turn,omitempty"`

	// buy
	Purchased bool `json:"purchased,omitempty"`
	Space     int  `json:"space,omitempty"`
	Price     int  `json:"price,omitempty"`

	// check
	Winner   string `json:"winner,omitempty"`
	GameOver bool   `json:"game_over,omitempty"`
}

// Standing is a player's final placement
type Standing struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Balance     int    `json:"balance"`
	NetWorth    int    `json:"net_worth"`
	Position    int    `json:"position"`
	OwnedSpaces []int  `json:"owned_spaces"`
	Bankrupt    bool   `json:"bankrupt"`
}

// Report summarises a scenario run
type Report struct {
	GameID    string         `json:"game_id"`
	Scenario  string         `json:"scenario"`
	Board     string         `json:"board"`
	Actions   []ActionResult `json:"actions"`
	Stopped   bool           `json:"stopped_early,omitempty"`
	Winner    string         `json:"winner,omitempty"`
	GameOver  bool           `json:"game_over"`
	Standings []Standing     `json:"standings"`
}
