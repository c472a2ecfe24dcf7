package engine

import "errors"

const (
	// GoIndex is the board index of the GO space.
	GoIndex = 0
	GoName  = "GO"

	// PurchaseMultiplier is the game-wide factor applied to rent to get a space's price.
	PurchaseMultiplier = 5

	// Validation constants
	MinBoardSize           = 2
	MaxBoardSize           = 200
	DefaultBoardSize       = 25
	DefaultGoPayout        = 50
	DefaultStartingBalance = 1000
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidMove          = errors.New("invalid move")
	ErrDuplicatePlayer      = errors.New("player already registered")
)

// Space is a single board location. Index never changes after the board is built.
type Space struct {
	Name    string `json:"name" yaml:"name"`
	Index   int    `json:"index" yaml:"index"`
	Rent    int    `json:"rent" yaml:"rent"`
	IsOwned bool   `json:"is_owned" yaml:"is_owned"`
}

// IsGo reports whether the space is the GO space.
func (s Space) IsGo() bool {
	return s.Index == GoIndex
}

// PurchasePrice returns what a player pays to buy the space.
func (s Space) PurchasePrice() int {
	return PurchasePrice(s.Rent)
}

func (s *Space) markOwned() {
	s.IsOwned = true
}

func (s *Space) markUnowned() {
	s.IsOwned = false
}

// PurchasePrice converts a rent value into a purchase price.
func PurchasePrice(rent int) int {
	return PurchaseMultiplier * rent
}

// Player is an account holder on the board. Owned spaces are stored by index
// and always resolved through the board.
type Player struct {
	Name     string
	Balance  int
	Position int
	owned    map[int]struct{}
}

func newPlayer(name string, balance int) *Player {
	return &Player{
		Name:     name,
		Balance:  balance,
		Position: GoIndex,
		owned:    make(map[int]struct{}),
	}
}

// IsBankrupt reports whether the player has run out of money.
func (p *Player) IsBankrupt() bool {
	return p.Balance == 0
}

// Owns reports whether the player holds the space at index.
func (p *Player) Owns(index int) bool {
	_, ok := p.owned[index]
	return ok
}

// OwnedSpaces returns the owned indices in ascending order.
func (p *Player) OwnedSpaces() []int {
	return sortedIndices(p.owned)
}

func (p *Player) addOwned(index int) {
	p.owned[index] = struct{}{}
}

func (p *Player) removeOwned(index int) {
	delete(p.owned, index)
}

// PlayerView is a read-only snapshot of a player.
type PlayerView struct {
	Name        string `json:"name"`
	Balance     int    `json:"balance"`
	Position    int    `json:"position"`
	OwnedSpaces []int  `json:"owned_spaces"`
	Bankrupt    bool   `json:"bankrupt"`
}

func (p *Player) view() PlayerView {
	return PlayerView{
		Name:        p.Name,
		Balance:     p.Balance,
		Position:    p.Position,
		OwnedSpaces: p.OwnedSpaces(),
		Bankrupt:    p.IsBankrupt(),
	}
}

// BoardConfig describes a board loaded from a JSON or YAML file
type BoardConfig struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	BoardSize       int      `json:"board_size" yaml:"board_size"`
	GoPayout        int      `json:"go_payout" yaml:"go_payout"`
	Rents           []int    `json:"rents" yaml:"rents"`
	SpaceNames      []string `json:"space_names,omitempty" yaml:"space_names,omitempty"`
	StartingBalance int      `json:"starting_balance,omitempty" yaml:"starting_balance,omitempty"`
}

// TurnOutcome names how a call to AdvancePlayer resolved.
type TurnOutcome string

const (
	OutcomeBankruptSkip TurnOutcome = "bankrupt_skip"
	OutcomeLandedGo     TurnOutcome = "landed_go"
	OutcomeUnowned      TurnOutcome = "unowned"
	OutcomeOwnSpace     TurnOutcome = "own_space"
	OutcomeRentPaid     TurnOutcome = "rent_paid"
	OutcomeBankrupt     TurnOutcome = "bankrupt"
)

// TurnResult records a single resolved movement.
type TurnResult struct {
	Player       string      `json:"player"`
	Steps        int         `json:"steps"`
	From         int         `json:"from"`
	To           int         `json:"to"`
	PassedGo     bool        `json:"passed_go"`
	GoPayout     int         `json:"go_payout,omitempty"`
	Outcome      TurnOutcome `json:"outcome"`
	Owner        string      `json:"owner,omitempty"`
	RentOwed     int         `json:"rent_owed,omitempty"`
	RentPaid     int         `json:"rent_paid,omitempty"`
	Liquidated   []int       `json:"liquidated,omitempty"`
	BalanceAfter int         `json:"balance_after"`
}

// clone returns a deep copy; nil stays nil
func (t *TurnResult) clone() *TurnResult {
	if t == nil {
		return nil
	}
	out := *t
	if t.Liquidated != nil {
		out.Liquidated = append([]int(nil), t.Liquidated...)
	}
	return &out
}

// HistoryKind distinguishes entries in the game history.
type HistoryKind string

const (
	HistoryMove     HistoryKind = "move"
	HistoryPurchase HistoryKind = "purchase"
)

// HistoryEntry represents a single state-changing action in the game history
type HistoryEntry struct {
	Sequence int         `json:"sequence"`
	Kind     HistoryKind `json:"kind"`
	Player   string      `json:"player"`
	Space    int         `json:"space"`
	Amount   int         `json:"amount"`
	Turn     *TurnResult `json:"turn,omitempty"`
}
