package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(3, 4, 8)

	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Columns())
	assert.Equal(t, 12, b.Size())
	assert.Equal(t, 8, b.MaxDice())
	require.NotNil(t, b.Graph())
	assert.Equal(t, 12, b.Graph().NumVertices())

	// Ids run row-major and agree with the grid position.
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			terr, err := b.GetTerritory(row, col)
			require.NoError(t, err)
			assert.Equal(t, row*4+col, terr.ID())
			assert.Equal(t, row, terr.Row())
			assert.Equal(t, col, terr.Col())
			assert.True(t, terr.Playable())
			assert.Nil(t, terr.Owner())
		}
	}
}

func TestBoardLookupBounds(t *testing.T) {
	b := NewBoard(2, 3, 8)

	tests := []struct {
		name string
		row  int
		col  int
	}{
		{"NegativeRow", -1, 0},
		{"NegativeCol", 0, -1},
		{"RowTooLarge", 2, 0},
		{"ColTooLarge", 0, 3},
		{"BothTooLarge", 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.GetTerritory(tt.row, tt.col)
			assert.ErrorIs(t, err, ErrOutOfBounds)

			_, err = b.GetTerritoryID(tt.row, tt.col)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}

	id, err := b.GetTerritoryID(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestTerritoryByID(t *testing.T) {
	b := NewBoard(2, 2, 8)

	terr, err := b.TerritoryByID(3)
	require.NoError(t, err)
	assert.Equal(t, 3, terr.ID())

	_, err = b.TerritoryByID(-1)
	assert.ErrorIs(t, err, ErrInvalidTerritory)
	_, err = b.TerritoryByID(4)
	assert.ErrorIs(t, err, ErrInvalidTerritory)
}

func TestTerritoriesOwnedBy(t *testing.T) {
	b := NewBoard(2, 2, 8)
	red := NewPlayer(0, "Red")
	blue := NewPlayer(1, "Blue")
	impostor := NewPlayer(0, "Red") // equal fields, different identity

	b.Territories()[0].SetOwner(red)
	b.Territories()[1].SetOwner(blue)
	b.Territories()[2].SetOwner(red)

	owned := b.TerritoriesOwnedBy(red)
	require.Len(t, owned, 2)
	assert.Equal(t, 0, owned[0].ID())
	assert.Equal(t, 2, owned[1].ID())

	assert.Empty(t, b.TerritoriesOwnedBy(impostor), "ownership is pointer identity, not field equality")

	unowned := b.TerritoriesOwnedBy(nil)
	require.Len(t, unowned, 1)
	assert.Equal(t, 3, unowned[0].ID())
}

func TestDiceCountOf(t *testing.T) {
	b := NewBoard(2, 2, 8)
	red := NewPlayer(0, "Red")
	blue := NewPlayer(1, "Blue")

	b.Territories()[0].SetOwner(red)
	b.Territories()[0].SetDice(3)
	b.Territories()[1].SetOwner(red)
	b.Territories()[1].SetDice(1)
	b.Territories()[2].SetOwner(blue)
	b.Territories()[2].SetDice(5)

	assert.Equal(t, 4, b.DiceCountOf(red))
	assert.Equal(t, 5, b.DiceCountOf(blue))
	assert.Equal(t, 0, b.DiceCountOf(NewPlayer(9, "Ghost")))
}

func TestNeighborsOf(t *testing.T) {
	// 2x2 grid wired like generation would: (0,1),(0,2),(1,3),(2,3).
	b := NewBoard(2, 2, 8)
	g := b.Graph()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)

	terr, err := b.GetTerritory(0, 0)
	require.NoError(t, err)

	neighbors := b.NeighborsOf(terr)
	require.Len(t, neighbors, 2)
	assert.Equal(t, 1, neighbors[0].ID())
	assert.Equal(t, 2, neighbors[1].ID())
}

func TestEnemyNeighborsOf(t *testing.T) {
	b := NewBoard(2, 2, 8)
	g := b.Graph()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)

	red := NewPlayer(0, "Red")
	blue := NewPlayer(1, "Blue")

	t.Run("DifferentOwnersAreEnemies", func(t *testing.T) {
		b.Territories()[0].SetOwner(red)
		b.Territories()[1].SetOwner(blue)
		b.Territories()[2].SetOwner(red)
		b.Territories()[3].SetOwner(blue)

		enemies := b.EnemyNeighborsOf(b.Territories()[0])
		require.Len(t, enemies, 1)
		assert.Equal(t, 1, enemies[0].ID())

		neighbors := b.NeighborsOf(b.Territories()[0])
		for _, e := range enemies {
			assert.Contains(t, neighbors, e, "enemy neighbors must be a subset of neighbors")
		}
	})

	t.Run("UnownedNeighborsAreNotMutualEnemies", func(t *testing.T) {
		for _, terr := range b.Territories() {
			terr.SetOwner(nil)
		}

		assert.Empty(t, b.EnemyNeighborsOf(b.Territories()[0]),
			"two nil owners compare equal, so neither side is an enemy")
	})

	t.Run("UnownedNeighborIsEnemyOfOwned", func(t *testing.T) {
		for _, terr := range b.Territories() {
			terr.SetOwner(nil)
		}
		b.Territories()[0].SetOwner(red)

		enemies := b.EnemyNeighborsOf(b.Territories()[0])
		assert.Len(t, enemies, 2)
	})
}

func TestLargestClusterSizeFor(t *testing.T) {
	// 3x3 grid, full generation wiring.
	b := NewBoard(3, 3, 8)
	g := b.Graph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := r*3 + c
			if c+1 < 3 {
				g.AddEdge(id, id+1)
			}
			if r+1 < 3 {
				g.AddEdge(id, id+3)
			}
		}
	}

	red := NewPlayer(0, "Red")
	blue := NewPlayer(1, "Blue")

	t.Run("NoTerritoriesOwned", func(t *testing.T) {
		for _, terr := range b.Territories() {
			terr.SetOwner(blue)
		}
		assert.Equal(t, 0, b.LargestClusterSizeFor(red))
	})

	t.Run("SplitHoldings", func(t *testing.T) {
		// Red: corner 0 plus the L of 5,7,8. Blue: everything else.
		for _, terr := range b.Territories() {
			terr.SetOwner(blue)
		}
		for _, id := range []int{0, 5, 7, 8} {
			b.Territories()[id].SetOwner(red)
		}

		assert.Equal(t, 3, b.LargestClusterSizeFor(red))
		assert.Equal(t, 5, b.LargestClusterSizeFor(blue))
	})

	t.Run("WholeBoardOwned", func(t *testing.T) {
		for _, terr := range b.Territories() {
			terr.SetOwner(red)
		}
		assert.Equal(t, 9, b.LargestClusterSizeFor(red))
	})

	t.Run("OwnershipChangeReflectsImmediately", func(t *testing.T) {
		for _, terr := range b.Territories() {
			terr.SetOwner(blue)
		}
		b.Territories()[4].SetOwner(red)
		require.Equal(t, 1, b.LargestClusterSizeFor(red))

		b.Territories()[5].SetOwner(red)
		assert.Equal(t, 2, b.LargestClusterSizeFor(red), "queries must see live ownership, not a cache")
	})
}

func TestPlayableCount(t *testing.T) {
	b := NewBoard(2, 3, 8)
	assert.Equal(t, 6, b.PlayableCount())

	b.Territories()[1].SetPlayable(false)
	b.Territories()[4].SetPlayable(false)
	assert.Equal(t, 4, b.PlayableCount())
}

func TestBoardErrorsWrapSentinels(t *testing.T) {
	b := NewBoard(1, 1, 8)

	_, err := b.GetTerritory(5, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Contains(t, err.Error(), "row 5")
}
