package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
)

func newTestReinforcements() (*ReinforcementManager, *events.EventBus) {
	bus := events.NewEventBus()
	return NewReinforcementManager(bus, "test-match", zerolog.Nop()), bus
}

func TestGrantEndOfTurnPlacesClusterDice(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	// Red's largest cluster is the pair, not the lone territory at the end.
	b := strip(t, []*core.Player{red, red, blue, red}, []int{1, 1, 2, 1})
	rm, bus := newTestReinforcements()

	var granted *events.ReinforcementsGrantedEvent
	bus.SubscribeFunc(events.TypeReinforcementsGranted, func(ev events.Event) {
		granted = ev.(*events.ReinforcementsGrantedEvent)
	})

	got, discarded := rm.GrantEndOfTurn(b, red, rand.New(rand.NewSource(5)), 3)

	assert.Equal(t, 2, got)
	assert.Zero(t, discarded)
	assert.Equal(t, 5, b.DiceCountOf(red), "two new dice on top of the three dealt")
	for _, terr := range b.TerritoriesOwnedBy(red) {
		assert.LessOrEqual(t, terr.Dice(), b.MaxDice())
	}

	require.NotNil(t, granted)
	assert.Equal(t, red.ID, granted.PlayerID)
	assert.Equal(t, 2, granted.ClusterSize)
	assert.Equal(t, 2, granted.Granted)
	assert.Zero(t, granted.Discarded)
}

func TestGrantEndOfTurnSurplusDiscarded(t *testing.T) {
	red := core.NewPlayer(0, "Red")

	// Every territory already at the cap: the whole grant is surplus.
	b := strip(t, []*core.Player{red, red, red}, []int{8, 8, 8})
	rm, bus := newTestReinforcements()

	var granted *events.ReinforcementsGrantedEvent
	bus.SubscribeFunc(events.TypeReinforcementsGranted, func(ev events.Event) {
		granted = ev.(*events.ReinforcementsGrantedEvent)
	})

	got, discarded := rm.GrantEndOfTurn(b, red, rand.New(rand.NewSource(5)), 3)

	assert.Zero(t, got)
	assert.Equal(t, 3, discarded, "the full cluster-sized grant is dropped, not stocked")
	assert.Equal(t, 24, b.DiceCountOf(red), "capped territories must stay capped")

	require.NotNil(t, granted)
	assert.Zero(t, granted.Granted)
	assert.Equal(t, 3, granted.Discarded)
}

func TestGrantEndOfTurnStopsWhenCapacityRunsOut(t *testing.T) {
	red := core.NewPlayer(0, "Red")

	// Cluster of two but room for only one die: the second is discarded.
	b := strip(t, []*core.Player{red, red}, []int{8, 7})
	rm, _ := newTestReinforcements()

	got, discarded := rm.GrantEndOfTurn(b, red, rand.New(rand.NewSource(5)), 3)

	assert.Equal(t, 1, got)
	assert.Equal(t, 1, discarded)
	assert.Equal(t, 8, b.Territories()[0].Dice())
	assert.Equal(t, 8, b.Territories()[1].Dice())
}

func TestGrantEndOfTurnNothingOwned(t *testing.T) {
	red := core.NewPlayer(0, "Red")
	blue := core.NewPlayer(1, "Blue")

	b := strip(t, []*core.Player{blue, blue}, []int{2, 2})
	rm, bus := newTestReinforcements()

	published := false
	bus.SubscribeFunc(events.TypeReinforcementsGranted, func(events.Event) { published = true })

	got, discarded := rm.GrantEndOfTurn(b, red, rand.New(rand.NewSource(5)), 3)

	assert.Zero(t, got)
	assert.Zero(t, discarded)
	assert.False(t, published, "an empty grant publishes nothing")
}
