package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Board
	ConfigureBoard(goPayout int, rents []int) error
	BoardSize() int
	GoPayout() int
	SpaceAt(index int) (Space, error)
	Spaces() []Space
	OwnerOf(index int) (string, bool)

	// Roster
	RegisterPlayer(name string, balance int) error
	BalanceOf(name string) (int, error)
	PositionOf(name string) (int, error)
	Player(name string) (PlayerView, error)
	Players() []PlayerView

	// Turn operations
	BuySpace(name string) (bool, error)
	AdvancePlayer(name string, steps int) (*TurnResult, error)
	CheckWinner() (string, bool)

	// History
	History() []HistoryEntry
	LastTurn() *TurnResult
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; a single driver is expected to call it sequentially.
type GameEngine struct {
	id       string
	spaces   []Space
	players  []*Player
	byName   map[string]*Player
	goPayout int
	config   *BoardConfig
	history  []HistoryEntry
	logger   zerolog.Logger
}

// NewGameEngine creates an unconfigured board of boardSize spaces named GO, 1, 2, ...
func NewGameEngine(boardSize int) (*GameEngine, error) {
	if boardSize < MinBoardSize || boardSize > MaxBoardSize {
		return nil, fmt.Errorf("%w: board size must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinBoardSize, MaxBoardSize, boardSize)
	}

	spaces := make([]Space, boardSize)
	for i := range spaces {
		spaces[i] = Space{Name: defaultSpaceName(i), Index: i}
	}

	e := &GameEngine{
		id:      uuid.NewString(),
		spaces:  spaces,
		byName:  make(map[string]*Player),
		history: []HistoryEntry{},
	}
	e.SetLogger(zerolog.Nop())
	return e, nil
}

// NewEngine creates a configured game engine from a board configuration
func NewEngine(config *BoardConfig) (*GameEngine, error) {
	if err := ValidateBoardConfig(config); err != nil {
		return nil, err
	}

	e, err := NewGameEngine(config.BoardSize)
	if err != nil {
		return nil, err
	}
	for i, name := range config.SpaceNames {
		e.spaces[i].Name = name
	}
	if err := e.ConfigureBoard(config.GoPayout, config.Rents); err != nil {
		return nil, err
	}
	e.config = config
	return e, nil
}

// NewEngineWithDefaults creates a game engine on the classic 25-space board
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultBoardConfig())
	if err != nil {
		// the built-in board is always valid
		panic(err)
	}
	return e
}

// SetLogger attaches a logger; the engine adds its own component and game fields.
func (e *GameEngine) SetLogger(logger zerolog.Logger) {
	e.logger = logger.With().
		Str("component", "engine").
		Str("game_id", e.id).
		Logger()
}

// ID returns the unique identifier of this game
func (e *GameEngine) ID() string {
	return e.id
}

// Config returns the board configuration the engine was built from, or nil.
func (e *GameEngine) Config() *BoardConfig {
	return e.config
}

// ConfigureBoard sets the GO payout and assigns rents[i-1] to space i.
func (e *GameEngine) ConfigureBoard(goPayout int, rents []int) error {
	if goPayout < 0 {
		return fmt.Errorf("%w: go payout must be non-negative, got %d", ErrInvalidConfiguration, goPayout)
	}
	if len(rents) != len(e.spaces)-1 {
		return fmt.Errorf("%w: expected %d rents for a board of %d spaces, got %d",
			ErrInvalidConfiguration, len(e.spaces)-1, len(e.spaces), len(rents))
	}
	for i, rent := range rents {
		if rent < 0 {
			return fmt.Errorf("%w: rent for space %d must be non-negative, got %d",
				ErrInvalidConfiguration, i+1, rent)
		}
	}

	e.goPayout = goPayout
	for i, rent := range rents {
		e.spaces[i+1].Rent = rent
	}

	e.logger.Debug().Int("go_payout", goPayout).Int("spaces", len(e.spaces)).Msg("board configured")
	return nil
}

// BoardSize returns the number of spaces on the board
func (e *GameEngine) BoardSize() int {
	return len(e.spaces)
}

// GoPayout returns the amount credited for passing or landing on GO
func (e *GameEngine) GoPayout() int {
	return e.goPayout
}

// SpaceAt returns a copy of the space at index
func (e *GameEngine) SpaceAt(index int) (Space, error) {
	if index < 0 || index >= len(e.spaces) {
		return Space{}, fmt.Errorf("space %d: %w", index, ErrNotFound)
	}
	return e.spaces[index], nil
}

// Spaces returns a copy of the whole board
func (e *GameEngine) Spaces() []Space {
	out := make([]Space, len(e.spaces))
	copy(out, e.spaces)
	return out
}

// OwnerOf returns the name of the player holding the space at index
func (e *GameEngine) OwnerOf(index int) (string, bool) {
	owner := e.ownerOf(index)
	if owner == nil {
		return "", false
	}
	return owner.Name, true
}

// RegisterPlayer adds a player at GO with the given starting balance
func (e *GameEngine) RegisterPlayer(name string, balance int) error {
	if name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidConfiguration)
	}
	if balance < 0 {
		return fmt.Errorf("%w: starting balance for %q must be non-negative, got %d",
			ErrInvalidConfiguration, name, balance)
	}
	if _, exists := e.byName[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicatePlayer)
	}

	p := newPlayer(name, balance)
	e.players = append(e.players, p)
	e.byName[name] = p

	e.logger.Debug().Str("player", name).Int("balance", balance).Msg("player registered")
	return nil
}

// BalanceOf returns the account balance of the named player
func (e *GameEngine) BalanceOf(name string) (int, error) {
	p, err := e.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.Balance, nil
}

// PositionOf returns the board index the named player stands on
func (e *GameEngine) PositionOf(name string) (int, error) {
	p, err := e.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.Position, nil
}

// Player returns a snapshot of the named player
func (e *GameEngine) Player(name string) (PlayerView, error) {
	p, err := e.lookup(name)
	if err != nil {
		return PlayerView{}, err
	}
	return p.view(), nil
}

// Players returns snapshots of all players in registration order
func (e *GameEngine) Players() []PlayerView {
	views := make([]PlayerView, 0, len(e.players))
	for _, p := range e.players {
		views = append(views, p.view())
	}
	return views
}

// BuySpace attempts to buy the space the player stands on. A false result
// with a nil error means one of the purchase preconditions failed.
func (e *GameEngine) BuySpace(name string) (bool, error) {
	p, err := e.lookup(name)
	if err != nil {
		return false, err
	}

	if p.Position == GoIndex {
		return false, nil
	}
	space := &e.spaces[p.Position]
	if space.IsOwned {
		return false, nil
	}
	price := space.PurchasePrice()
	if p.Balance < price {
		return false, nil
	}

	p.Balance -= price
	p.addOwned(space.Index)
	space.markOwned()

	e.record(HistoryEntry{Kind: HistoryPurchase, Player: p.Name, Space: space.Index, Amount: price})
	e.logger.Info().
		Str("player", p.Name).
		Int("space", space.Index).
		Int("price", price).
		Int("balance", p.Balance).
		Msg("space purchased")
	return true, nil
}

// AdvancePlayer moves the player steps spaces and settles the landing.
// See resolveTurn for the state machine.
func (e *GameEngine) AdvancePlayer(name string, steps int) (*TurnResult, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidMove, steps)
	}
	p, err := e.lookup(name)
	if err != nil {
		return nil, err
	}

	result := e.resolveTurn(p, steps)
	e.record(HistoryEntry{Kind: HistoryMove, Player: p.Name, Space: result.To, Amount: result.RentPaid, Turn: result.clone()})
	return result, nil
}

// CheckWinner returns the only player with a positive balance. It reports
// false when zero or several players are still solvent.
func (e *GameEngine) CheckWinner() (string, bool) {
	solvent := 0
	winner := ""
	for _, p := range e.players {
		if p.Balance > 0 {
			solvent++
			winner = p.Name
		}
	}
	if solvent != 1 {
		return "", false
	}
	return winner, true
}

// History returns the state-changing actions applied so far
func (e *GameEngine) History() []HistoryEntry {
	out := make([]HistoryEntry, len(e.history))
	for i, entry := range e.history {
		entry.Turn = entry.Turn.clone()
		out[i] = entry
	}
	return out
}

// LastTurn returns the last resolved movement, or nil if no player has moved
func (e *GameEngine) LastTurn() *TurnResult {
	for i := len(e.history) - 1; i >= 0; i-- {
		if e.history[i].Turn != nil {
			return e.history[i].Turn.clone()
		}
	}
	return nil
}

func (e *GameEngine) lookup(name string) (*Player, error) {
	p, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	return p, nil
}

func (e *GameEngine) ownerOf(index int) *Player {
	for _, p := range e.players {
		if p.Owns(index) {
			return p
		}
	}
	return nil
}

func (e *GameEngine) record(entry HistoryEntry) {
	entry.Sequence = len(e.history) + 1
	e.history = append(e.history, entry)
}
