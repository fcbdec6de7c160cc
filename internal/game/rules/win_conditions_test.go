package rules

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"dicewars/internal/game/core"
)

func TestIsEliminated(t *testing.T) {
	b := core.NewBoard(2, 2, 8)
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	for _, terr := range b.Territories() {
		terr.SetOwner(red)
	}

	assert.False(t, IsEliminated(b, red))
	assert.True(t, IsEliminated(b, blue))

	b.Territories()[3].SetOwner(blue)
	assert.False(t, IsEliminated(b, blue))
}

func TestCheckGameOver(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")
	players := []*core.Player{red, blue}

	t.Run("ContestedMatch", func(t *testing.T) {
		b := core.NewBoard(2, 2, 8)
		b.Territories()[0].SetOwner(red)
		b.Territories()[1].SetOwner(blue)

		wc := NewWinConditionChecker(zerolog.Nop(), len(players))
		over, winner := wc.CheckGameOver(b, players)
		assert.False(t, over)
		assert.Nil(t, winner)
	})

	t.Run("LastHolderWins", func(t *testing.T) {
		b := core.NewBoard(2, 2, 8)
		for _, terr := range b.Territories() {
			terr.SetOwner(blue)
		}

		wc := NewWinConditionChecker(zerolog.Nop(), len(players))
		over, winner := wc.CheckGameOver(b, players)
		assert.True(t, over)
		assert.Same(t, blue, winner)
	})

	t.Run("SinglePlayerMatchRunsAlone", func(t *testing.T) {
		b := core.NewBoard(2, 2, 8)
		for _, terr := range b.Territories() {
			terr.SetOwner(red)
		}

		wc := NewWinConditionChecker(zerolog.Nop(), 1)
		over, winner := wc.CheckGameOver(b, []*core.Player{red})
		assert.False(t, over, "a solo match does not end while its player holds territory")
		assert.Nil(t, winner)
	})
}
