package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTerritoryDefaults(t *testing.T) {
	terr := NewTerritory(8)

	assert.Equal(t, -1, terr.ID(), "id should stay -1 until the board assigns it")
	assert.Equal(t, -1, terr.Dice(), "dice should stay -1 until distribution")
	assert.Nil(t, terr.Owner())
	assert.True(t, terr.Playable())
}

func TestTerritoryRowCol(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		columns int
		row     int
		col     int
	}{
		{"Origin", 0, 8, 0, 0},
		{"EndOfFirstRow", 7, 8, 0, 7},
		{"StartOfSecondRow", 8, 8, 1, 0},
		{"MidGrid", 27, 8, 3, 3},
		{"SingleColumn", 5, 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terr := NewTerritory(tt.columns)
			terr.SetID(tt.id)

			assert.Equal(t, tt.row, terr.Row())
			assert.Equal(t, tt.col, terr.Col())
		})
	}
}

func TestTerritoryMutators(t *testing.T) {
	terr := NewTerritory(4)
	p := NewPlayer(0, "Red")

	terr.SetID(9)
	terr.SetOwner(p)
	terr.SetDice(3)
	terr.SetPlayable(false)

	assert.Equal(t, 9, terr.ID())
	assert.Same(t, p, terr.Owner())
	assert.Equal(t, 3, terr.Dice())
	assert.False(t, terr.Playable())

	terr.SetOwner(nil)
	assert.Nil(t, terr.Owner(), "owner can be cleared back to unowned")
}
