package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEngine_RandomPlayInvariants drives seeded random games and checks the
// ownership and balance invariants after every operation.
func TestEngine_RandomPlayInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		engine := newTestEngine(t,
			playerSeed{"A", 1500},
			playerSeed{"B", 1000},
			playerSeed{"C", 600},
			playerSeed{"D", 300},
		)
		names := []string{"A", "B", "C", "D"}

		for step := 0; step < 400; step++ {
			name := names[rng.Intn(len(names))]
			before, err := engine.Player(name)
			require.NoError(t, err)

			steps := rng.Intn(6) + 1
			turn, err := engine.AdvancePlayer(name, steps)
			require.NoError(t, err)

			if before.Balance == 0 {
				assert.Equal(t, before.Position, turn.To, "seed %d: bankrupt player moved", seed)
			} else {
				assert.Equal(t, (before.Position+steps)%engine.BoardSize(), turn.To, "seed %d", seed)
			}
			require.NoError(t, engine.CheckInvariants(), "seed %d step %d after move", seed, step)

			if rng.Intn(2) == 0 {
				_, err := engine.BuySpace(name)
				require.NoError(t, err)
				require.NoError(t, engine.CheckInvariants(), "seed %d step %d after buy", seed, step)
			}

			if _, over := engine.CheckWinner(); over {
				break
			}
		}
	}
}

func TestEngine_MoneyIsConserved(t *testing.T) {
	// with no GO payout, rent only moves money between players once purchases are done
	engine, err := NewGameEngine(DefaultBoardSize)
	require.NoError(t, err)
	require.NoError(t, engine.ConfigureBoard(0, classicRents))
	require.NoError(t, engine.RegisterPlayer("Owner", 5000))
	require.NoError(t, engine.RegisterPlayer("Mover", 200))

	for _, steps := range []int{1, 1, 1, 1, 1, 1} {
		buyAt(t, engine, "Owner", steps)
	}
	total := balanceOf(t, engine, "Owner") + balanceOf(t, engine, "Mover")

	for i := 0; i < 10; i++ {
		_, err := engine.AdvancePlayer("Mover", 1)
		require.NoError(t, err)
		assert.Equal(t, total, balanceOf(t, engine, "Owner")+balanceOf(t, engine, "Mover"))
	}

	winner, over := engine.CheckWinner()
	require.True(t, over)
	assert.Equal(t, "Owner", winner)
}

func TestEngine_QueriesDoNotMutate(t *testing.T) {
	engine := newTestEngine(t, playerSeed{"P1", 1000}, playerSeed{"P2", 1000})
	buyAt(t, engine, "P2", 5)
	_, _ = engine.AdvancePlayer("P1", 7)

	snapshot := func() (int, int, Space, string, bool, []PlayerView) {
		balance, _ := engine.BalanceOf("P1")
		position, _ := engine.PositionOf("P1")
		space, _ := engine.SpaceAt(5)
		winner, over := engine.CheckWinner()
		return balance, position, space, winner, over, engine.Players()
	}

	b1, p1, s1, w1, o1, v1 := snapshot()
	b2, p2, s2, w2, o2, v2 := snapshot()
	assert.Equal(t, b1, b2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, w1, w2)
	assert.Equal(t, o1, o2)
	assert.Equal(t, v1, v2)
	assert.Len(t, engine.History(), 3)
}

func TestEngine_EliminationScenario(t *testing.T) {
	engine := newTestEngine(t,
		playerSeed{"Player 1", 1000},
		playerSeed{"Player 2", 1000},
		playerSeed{"Player 3", 200},
	)

	buyAt(t, engine, "Player 2", 12) // rent 150, price 750

	turn, err := engine.AdvancePlayer("Player 1", 12)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRentPaid, turn.Outcome)

	turn, err = engine.AdvancePlayer("Player 3", 12)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRentPaid, turn.Outcome)
	assert.Equal(t, 50, turn.BalanceAfter)

	turn, err = engine.AdvancePlayer("Player 3", 25)
	require.NoError(t, err)
	assert.Equal(t, 12, turn.To)
	assert.Equal(t, OutcomeBankrupt, turn.Outcome)

	assert.Equal(t, 850, balanceOf(t, engine, "Player 1"))
	assert.Equal(t, 250+150+150+50, balanceOf(t, engine, "Player 2"))
	assert.Equal(t, 0, balanceOf(t, engine, "Player 3"))

	_, over := engine.CheckWinner()
	assert.False(t, over, "two players are still solvent")
	require.NoError(t, engine.CheckInvariants())
}
