package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buyAt moves name by steps and buys the space landed on.
func buyAt(t *testing.T, engine *GameEngine, name string, steps int) {
	t.Helper()
	_, err := engine.AdvancePlayer(name, steps)
	require.NoError(t, err)
	bought, err := engine.BuySpace(name)
	require.NoError(t, err)
	require.True(t, bought, "%s should be able to buy", name)
}

func balanceOf(t *testing.T, engine *GameEngine, name string) int {
	t.Helper()
	balance, err := engine.BalanceOf(name)
	require.NoError(t, err)
	return balance
}

func TestAdvancePlayer_InvalidSteps(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000})

	for _, steps := range []int{0, -1, -30} {
		_, err := engine.AdvancePlayer("P1", steps)
		require.ErrorIs(t, err, ErrInvalidMove, "steps %d", steps)
	}

	position, _ := engine.PositionOf("P1")
	assert.Equal(t, 0, position)
	assert.Empty(t, engine.History())
}

func TestAdvancePlayer_UnownedSpace(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000})

	turn, err := engine.AdvancePlayer("P1", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, turn.To)

	turn, err = engine.AdvancePlayer("P1", 4)
	require.NoError(t, err)
	assert.Equal(t, 20, turn.From)
	assert.Equal(t, 24, turn.To)
	assert.False(t, turn.PassedGo)
	assert.Equal(t, OutcomeUnowned, turn.Outcome)
	assert.Equal(t, 1000, turn.BalanceAfter)
	assert.Equal(t, 1000, balanceOf(t, engine, "P1"))
}

func TestAdvancePlayer_PassingGo(t *testing.T) {
	t.Run("wrap pays and still charges rent", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 1000}, playerSeed{"P2", 1000})
		buyAt(t, engine, "P2", 1) // P2: 1000 - 250

		_, err := engine.AdvancePlayer("P1", 23)
		require.NoError(t, err)

		turn, err := engine.AdvancePlayer("P1", 3)
		require.NoError(t, err)
		assert.Equal(t, 1, turn.To)
		assert.True(t, turn.PassedGo)
		assert.Equal(t, 50, turn.GoPayout)
		assert.Equal(t, OutcomeRentPaid, turn.Outcome)
		assert.Equal(t, "P2", turn.Owner)
		assert.Equal(t, 50, turn.RentPaid)

		assert.Equal(t, 1000+50-50, balanceOf(t, engine, "P1"))
		assert.Equal(t, 750+50, balanceOf(t, engine, "P2"))
	})

	t.Run("landing exactly on GO pays and ends the turn", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 1000})
		_, _ = engine.AdvancePlayer("P1", 24)

		turn, err := engine.AdvancePlayer("P1", 1)
		require.NoError(t, err)
		assert.Equal(t, 0, turn.To)
		assert.True(t, turn.PassedGo)
		assert.Equal(t, OutcomeLandedGo, turn.Outcome)
		assert.Equal(t, 1050, balanceOf(t, engine, "P1"))
	})

	t.Run("multi-lap move wraps once", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 1000})
		_, _ = engine.AdvancePlayer("P1", 10)

		turn, err := engine.AdvancePlayer("P1", 60)
		require.NoError(t, err)
		assert.Equal(t, 20, turn.To)
		assert.False(t, turn.PassedGo, "10 -> 20 does not decrease the position")
		assert.Equal(t, 1000, balanceOf(t, engine, "P1"))
	})

	t.Run("full lap returns to the same space without payout", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 1000})
		buyAt(t, engine, "P1", 5)

		turn, err := engine.AdvancePlayer("P1", 25)
		require.NoError(t, err)
		assert.Equal(t, 5, turn.To)
		assert.False(t, turn.PassedGo)
		assert.Equal(t, OutcomeOwnSpace, turn.Outcome)
		assert.Equal(t, 1000-375, balanceOf(t, engine, "P1"))
	})

	t.Run("zero payout board", func(t *testing.T) {
		engine, err := NewGameEngine(4)
		require.NoError(t, err)
		require.NoError(t, engine.ConfigureBoard(0, []int{1, 2, 3}))
		require.NoError(t, engine.RegisterPlayer("P1", 10))

		_, err = engine.AdvancePlayer("P1", 2)
		require.NoError(t, err)
		turn, err := engine.AdvancePlayer("P1", 3)
		require.NoError(t, err)
		assert.Equal(t, 1, turn.To)
		assert.True(t, turn.PassedGo)
		assert.Equal(t, 0, turn.GoPayout)
		assert.Equal(t, 10, balanceOf(t, engine, "P1"))
	})
}

func TestAdvancePlayer_OwnSpace(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000})
	buyAt(t, engine, "P1", 2)
	_, _ = engine.AdvancePlayer("P1", 23) // lands on GO

	turn, err := engine.AdvancePlayer("P1", 2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOwnSpace, turn.Outcome)
	assert.Empty(t, turn.Owner)
	assert.Equal(t, 1000-250+50, balanceOf(t, engine, "P1"))
}

func TestAdvancePlayer_RentPaid(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000}, playerSeed{"P2", 1000})
	buyAt(t, engine, "P2", 5) // P2: 1000 - 375

	turn, err := engine.AdvancePlayer("P1", 5)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRentPaid, turn.Outcome)
	assert.Equal(t, 75, turn.RentOwed)
	assert.Equal(t, 75, turn.RentPaid)
	assert.Empty(t, turn.Liquidated)

	assert.Equal(t, 925, balanceOf(t, engine, "P1"))
	assert.Equal(t, 625+75, balanceOf(t, engine, "P2"))
	require.NoError(t, engine.CheckInvariants())
}

func TestAdvancePlayer_Bankruptcy(t *testing.T) {
	t.Run("insufficient balance liquidates the mover", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 300}, playerSeed{"P2", 1000})
		buyAt(t, engine, "P2", 5) // P2: 625
		buyAt(t, engine, "P1", 2) // P1: 300 - 250 = 50

		turn, err := engine.AdvancePlayer("P1", 3)
		require.NoError(t, err)
		assert.Equal(t, 5, turn.To)
		assert.Equal(t, OutcomeBankrupt, turn.Outcome)
		assert.Equal(t, "P2", turn.Owner)
		assert.Equal(t, 75, turn.RentOwed)
		assert.Equal(t, 50, turn.RentPaid)
		assert.Equal(t, []int{2}, turn.Liquidated)
		assert.Equal(t, 0, turn.BalanceAfter)

		assert.Equal(t, 0, balanceOf(t, engine, "P1"))
		assert.Equal(t, 675, balanceOf(t, engine, "P2"))

		view, _ := engine.Player("P1")
		assert.Empty(t, view.OwnedSpaces)
		assert.True(t, view.Bankrupt)

		released, _ := engine.SpaceAt(2)
		assert.False(t, released.IsOwned, "liquidated spaces return to the bank")
		_, held := engine.OwnerOf(2)
		assert.False(t, held)

		kept, _ := engine.SpaceAt(5)
		assert.True(t, kept.IsOwned)
		require.NoError(t, engine.CheckInvariants())
	})

	t.Run("balance equal to rent is bankruptcy", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 75}, playerSeed{"P2", 1000})
		buyAt(t, engine, "P2", 5)

		turn, err := engine.AdvancePlayer("P1", 5)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBankrupt, turn.Outcome)
		assert.Equal(t, 75, turn.RentPaid)
		assert.Equal(t, 0, balanceOf(t, engine, "P1"))
		assert.Equal(t, 625+75, balanceOf(t, engine, "P2"))
	})

	t.Run("balance one above rent survives", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 76}, playerSeed{"P2", 1000})
		buyAt(t, engine, "P2", 5)

		turn, err := engine.AdvancePlayer("P1", 5)
		require.NoError(t, err)
		assert.Equal(t, OutcomeRentPaid, turn.Outcome)
		assert.Equal(t, 1, balanceOf(t, engine, "P1"))
	})

	t.Run("bankrupt player never moves again", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 50}, playerSeed{"P2", 1000})
		buyAt(t, engine, "P2", 5)
		_, _ = engine.AdvancePlayer("P1", 5)
		require.Equal(t, 0, balanceOf(t, engine, "P1"))

		turn, err := engine.AdvancePlayer("P1", 20)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBankruptSkip, turn.Outcome)
		assert.Equal(t, 5, turn.From)
		assert.Equal(t, 5, turn.To)
		assert.False(t, turn.PassedGo)

		position, _ := engine.PositionOf("P1")
		assert.Equal(t, 5, position)
		assert.Equal(t, 0, balanceOf(t, engine, "P1"), "no GO payout for a bankrupt player")

		winner, over := engine.CheckWinner()
		assert.True(t, over)
		assert.Equal(t, "P2", winner)
	})

	t.Run("player registered with zero balance does not move", func(t *testing.T) {
		engine := newTestEngine(t, playerSeed{"P1", 0})

		turn, err := engine.AdvancePlayer("P1", 3)
		require.NoError(t, err)
		assert.Equal(t, OutcomeBankruptSkip, turn.Outcome)
		position, _ := engine.PositionOf("P1")
		assert.Equal(t, 0, position)
	})

	t.Run("free space never bankrupts", func(t *testing.T) {
		engine, err := NewGameEngine(3)
		require.NoError(t, err)
		require.NoError(t, engine.ConfigureBoard(0, []int{0, 0}))
		require.NoError(t, engine.RegisterPlayer("Owner", 0))
		require.NoError(t, engine.RegisterPlayer("Mover", 10))

		// a zero-rent space costs nothing, so a broke player can still own it
		engine.byName["Owner"].Position = 1
		bought, err := engine.BuySpace("Owner")
		require.NoError(t, err)
		require.True(t, bought)

		turn, err := engine.AdvancePlayer("Mover", 1)
		require.NoError(t, err)
		assert.Equal(t, OutcomeRentPaid, turn.Outcome)
		assert.Equal(t, 10, balanceOf(t, engine, "Mover"))
	})
}

func TestAdvancePlayer_PositionWraparound(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000})

	position := 0
	for _, steps := range []int{1, 6, 3, 24, 25, 26, 7, 49, 2, 100, math.MaxInt, math.MaxInt - 1} {
		turn, err := engine.AdvancePlayer("P1", steps)
		require.NoError(t, err)

		want := (position + steps%25) % 25
		assert.Equal(t, want, turn.To, "from %d by %d", position, steps)
		got, _ := engine.PositionOf("P1")
		assert.Equal(t, want, got)
		position = want
	}
}

func TestAdvancePlayer_HugeSteps(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000})
	_, err := engine.AdvancePlayer("P1", 3)
	require.NoError(t, err)

	// MaxInt is 7 more than a multiple of 25
	turn, err := engine.AdvancePlayer("P1", math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 3, turn.From)
	assert.Equal(t, 10, turn.To)
	assert.False(t, turn.PassedGo)
	assert.Equal(t, OutcomeUnowned, turn.Outcome)
	assert.Equal(t, 1000, balanceOf(t, engine, "P1"))

	// 20 + (MaxInt-2)%25 = 25 wraps onto GO
	_, err = engine.AdvancePlayer("P1", 10)
	require.NoError(t, err)
	turn, err = engine.AdvancePlayer("P1", math.MaxInt-2)
	require.NoError(t, err)
	assert.Equal(t, 0, turn.To)
	assert.True(t, turn.PassedGo)
	assert.Equal(t, OutcomeLandedGo, turn.Outcome)
	assert.Equal(t, 1000+DefaultGoPayout, balanceOf(t, engine, "P1"))
	require.NoError(t, engine.CheckInvariants())
}
