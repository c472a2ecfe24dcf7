package scenario

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/wricardo/realestate-game/game/engine"
)

// ConfigSource resolves board configurations by name
type ConfigSource interface {
	LoadConfig(name string) (*engine.BoardConfig, error)
	GetDefault() *engine.BoardConfig
}

// Runner executes scenarios against fresh engines
type Runner struct {
	configs    ConfigSource
	baseLogger zerolog.Logger
	logger     zerolog.Logger
}

// NewRunner creates a runner. A nil source limits scenarios to the built-in board.
func NewRunner(configs ConfigSource, logger zerolog.Logger) *Runner {
	return &Runner{
		configs:    configs,
		baseLogger: logger,
		logger:     logger.With().Str("component", "scenario").Logger(),
	}
}

// Run plays every action of sc in order and returns the resulting report.
// Cancellation of ctx is honoured between actions.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	board, err := r.resolveBoard(sc.Board)
	if err != nil {
		return nil, err
	}

	eng, err := engine.NewEngine(board)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	eng.SetLogger(r.baseLogger)

	logger := r.logger.With().Str("scenario", sc.Name).Str("game_id", eng.ID()).Logger()

	for _, p := range sc.Players {
		balance := startingBalance(board)
		if p.Balance != nil {
			balance = *p.Balance
		}
		if err := eng.RegisterPlayer(p.Name, balance); err != nil {
			return nil, fmt.Errorf("failed to register player %q: %w", p.Name, err)
		}
	}
	logger.Info().Str("board", board.Name).Int("players", len(sc.Players)).Int("actions", len(sc.Actions)).Msg("scenario started")

	report := &Report{
		GameID:   eng.ID(),
		Scenario: sc.Name,
		Board:    board.Name,
		Actions:  make([]ActionResult, 0, len(sc.Actions)),
	}

	for i, action := range sc.Actions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario interrupted before action %d: %w", i, err)
		}

		result, err := apply(eng, i, action)
		if err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, action.Kind(), err)
		}
		report.Actions = append(report.Actions, result)

		if sc.Strict {
			if err := eng.CheckInvariants(); err != nil {
				return nil, fmt.Errorf("action %d (%s): %w: %v", i, action.Kind(), ErrInvariantViolation, err)
			}
		}

		if sc.StopOnWinner {
			if winner, over := eng.CheckWinner(); over {
				logger.Debug().Int("action", i).Str("winner", winner).Msg("stopping on winner")
				report.Stopped = i < len(sc.Actions)-1
				break
			}
		}
	}

	report.Winner, report.GameOver = eng.CheckWinner()
	report.Standings = standings(eng)

	logger.Info().Bool("game_over", report.GameOver).Str("winner", report.Winner).Int("executed", len(report.Actions)).Msg("scenario finished")
	return report, nil
}

func (r *Runner) resolveBoard(name string) (*engine.BoardConfig, error) {
	if r.configs == nil {
		if name != "" && name != engine.DefaultBoardConfig().Name {
			return nil, fmt.Errorf("board %q: no board configurations available", name)
		}
		return engine.DefaultBoardConfig(), nil
	}

	if name == "" {
		return r.configs.GetDefault(), nil
	}
	board, err := r.configs.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("board %q: %w", name, err)
	}
	return board, nil
}

func apply(eng *engine.GameEngine, index int, action Action) (ActionResult, error) {
	result := ActionResult{
		Index:  index,
		Kind:   action.Kind(),
		Player: action.Player,
	}

	switch result.Kind {
	case ActionMove:
		turn, err := eng.AdvancePlayer(action.Player, *action.Move)
		if err != nil {
			return result, err
		}
		result.Turn = turn

	case ActionBuy:
		position, err := eng.PositionOf(action.Player)
		if err != nil {
			return result, err
		}
		space, err := eng.SpaceAt(position)
		if err != nil {
			return result, err
		}
		bought, err := eng.BuySpace(action.Player)
		if err != nil {
			return result, err
		}
		result.Space = space.Index
		result.Purchased = bought
		if bought {
			result.Price = space.PurchasePrice()
		}

	case ActionCheck:
		result.Winner, result.GameOver = eng.CheckWinner()
	}
	return result, nil
}

func startingBalance(board *engine.BoardConfig) int {
	if board.StartingBalance > 0 {
		return board.StartingBalance
	}
	return engine.DefaultStartingBalance
}

// standings orders players by balance, ties keep registration order
func standings(eng *engine.GameEngine) []Standing {
	players := eng.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Balance > players[j].Balance
	})

	out := make([]Standing, 0, len(players))
	for i, p := range players {
		worth, _ := eng.NetWorth(p.Name)
		out = append(out, Standing{
			Rank:        i + 1,
			Name:        p.Name,
			Balance:     p.Balance,
			NetWorth:    worth,
			Position:    p.Position,
			OwnedSpaces: p.OwnedSpaces,
			Bankrupt:    p.Bankrupt,
		})
	}
	return out
}
