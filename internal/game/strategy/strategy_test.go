package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewars/internal/game/core"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// strip builds a 1xN board wired as a line, with owners and dice set
// position by position.
func strip(t *testing.T, owners []*core.Player, dice []int) *core.Board {
	t.Helper()
	require.Equal(t, len(owners), len(dice))

	b := core.NewBoard(1, len(owners), 8)
	for i := 0; i < len(owners)-1; i++ {
		b.Graph().AddEdge(i, i+1)
	}
	for i, terr := range b.Territories() {
		terr.SetOwner(owners[i])
		terr.SetDice(dice[i])
	}
	return b
}

func TestRandomStrategyEvaluate(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	t.Run("SingleDieAttackerHasNothing", func(t *testing.T) {
		// A lone die may not attack even a weaker neighbor.
		b := strip(t, []*core.Player{red, blue}, []int{1, 0})
		s := NewRandomStrategy(newTestRNG())

		assert.False(t, s.Evaluate(b, red))
		assert.Nil(t, s.ChooseAttacker())
	})

	t.Run("TiedDiceQualify", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue}, []int{2, 2})
		s := NewRandomStrategy(newTestRNG())

		assert.True(t, s.Evaluate(b, red))
	})

	t.Run("ReEvaluateSeesOwnershipChanges", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue}, []int{3, 1})
		s := NewRandomStrategy(newTestRNG())
		require.True(t, s.Evaluate(b, red))

		// Red takes the last enemy territory; nothing is left to hit.
		b.Territories()[1].SetOwner(red)
		assert.False(t, s.Evaluate(b, red))
	})
}

func TestRandomStrategyChooseAttacker(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	t.Run("NilBeforeEvaluate", func(t *testing.T) {
		s := NewRandomStrategy(newTestRNG())
		assert.Nil(t, s.ChooseAttacker())
		assert.Nil(t, s.ChooseDefender())
	})

	t.Run("ReturnsALegalAttacker", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue, red}, []int{3, 2, 2})
		s := NewRandomStrategy(newTestRNG())
		require.True(t, s.Evaluate(b, red))

		attacker := s.ChooseAttacker()
		require.NotNil(t, attacker)
		assert.Same(t, red, attacker.Owner())
		assert.Greater(t, attacker.Dice(), 1)
	})

	t.Run("EveryCandidateReachable", func(t *testing.T) {
		// Three separate attackers; 100 uniform draws must hit each.
		b := strip(t,
			[]*core.Player{red, blue, red, blue, red},
			[]int{3, 1, 3, 1, 3})
		s := NewRandomStrategy(newTestRNG())

		seen := make(map[int]bool)
		for i := 0; i < 100; i++ {
			require.True(t, s.Evaluate(b, red))
			attacker := s.ChooseAttacker()
			require.NotNil(t, attacker)
			seen[attacker.ID()] = true
		}
		assert.Equal(t, map[int]bool{0: true, 2: true, 4: true}, seen)
	})
}

func TestRandomStrategyChooseDefender(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	t.Run("FirstPairInCandidateOrderWins", func(t *testing.T) {
		// The center territory can hit both ends; the defender must be the
		// first pair recorded for it, not a random one.
		b := strip(t, []*core.Player{blue, red, blue}, []int{2, 5, 2})
		s := NewRandomStrategy(newTestRNG())
		require.True(t, s.Evaluate(b, red))

		attacker := s.ChooseAttacker()
		require.NotNil(t, attacker)
		assert.Equal(t, 1, attacker.ID())

		defender := s.ChooseDefender()
		require.NotNil(t, defender)
		assert.Equal(t, 0, defender.ID(), "defender should come from the first matching pair")
	})

	t.Run("DefenderIsEnemyNeighborOfAttacker", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue, red, blue}, []int{4, 2, 3, 3})
		s := NewRandomStrategy(newTestRNG())

		for i := 0; i < 20; i++ {
			require.True(t, s.Evaluate(b, red))
			attacker := s.ChooseAttacker()
			defender := s.ChooseDefender()
			require.NotNil(t, attacker)
			require.NotNil(t, defender)

			assert.NotSame(t, attacker.Owner(), defender.Owner())
			assert.Contains(t, b.NeighborsOf(attacker), defender)
			assert.GreaterOrEqual(t, attacker.Dice(), defender.Dice())
		}
	})

	t.Run("RememberedAttackerSurvivesReEvaluate", func(t *testing.T) {
		b := strip(t, []*core.Player{blue, red, blue}, []int{2, 5, 2})
		s := NewRandomStrategy(newTestRNG())
		require.True(t, s.Evaluate(b, red))
		require.NotNil(t, s.ChooseAttacker())

		require.True(t, s.Evaluate(b, red))
		defender := s.ChooseDefender()
		require.NotNil(t, defender)
		assert.Equal(t, 0, defender.ID())
	})
}

func TestGreedyStrategy(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	t.Run("PicksLargestAdvantage", func(t *testing.T) {
		// Center attacker: advantage 3 against the left end, 4 against the
		// right. Greedy must commit to the right pair, not the first one.
		b := strip(t, []*core.Player{blue, red, blue}, []int{2, 5, 1})
		s := NewGreedyStrategy()
		require.True(t, s.Evaluate(b, red))

		attacker := s.ChooseAttacker()
		require.NotNil(t, attacker)
		assert.Equal(t, 1, attacker.ID())

		defender := s.ChooseDefender()
		require.NotNil(t, defender)
		assert.Equal(t, 2, defender.ID())
	})

	t.Run("TieGoesToFirstEncountered", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue, red, blue}, []int{4, 2, 4, 2})
		s := NewGreedyStrategy()
		require.True(t, s.Evaluate(b, red))

		attacker := s.ChooseAttacker()
		defender := s.ChooseDefender()
		require.NotNil(t, attacker)
		require.NotNil(t, defender)
		assert.Equal(t, 0, attacker.ID())
		assert.Equal(t, 1, defender.ID())
	})

	t.Run("NothingToOffer", func(t *testing.T) {
		b := strip(t, []*core.Player{red, blue}, []int{1, 5})
		s := NewGreedyStrategy()

		assert.False(t, s.Evaluate(b, red))
		assert.Nil(t, s.ChooseAttacker())
		assert.Nil(t, s.ChooseDefender())
	})
}

func TestNewFactory(t *testing.T) {
	s, err := New("random", newTestRNG())
	require.NoError(t, err)
	assert.IsType(t, &RandomStrategy{}, s)

	s, err = New("greedy", nil)
	require.NoError(t, err)
	assert.IsType(t, &GreedyStrategy{}, s)

	_, err = New("psychic", newTestRNG())
	assert.Error(t, err)
}
