package testutil

import (
	"math/rand"
	"testing"

	"dicewars/internal/game/core"
	"dicewars/internal/game/mapgen"
)

// CreateTestPlayers creates a roster of test players
func CreateTestPlayers(count int) []*core.Player {
	names := []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}
	players := make([]*core.Player, count)
	for i := 0; i < count; i++ {
		name := names[i%len(names)]
		players[i] = core.NewPlayer(i, name)
	}
	return players
}

// GenerateTestBoard runs the full generation pipeline with the given rng
// and fails the test if generation rejects the configuration.
func GenerateTestBoard(t *testing.T, cfg mapgen.Config, rng *rand.Rand) *core.Board {
	t.Helper()
	board, err := mapgen.NewGenerator(cfg, rng).Generate()
	if err != nil {
		t.Fatalf("board generation failed: %v", err)
	}
	return board
}

// CreateSplitBoard builds a 2x2 board without victims, the left column
// owned by players[0] and the right by players[1], every territory on
// two dice. A minimal deterministic fixture for attack and cluster tests.
func CreateSplitBoard(players []*core.Player) *core.Board {
	board := core.NewBoard(2, 2, 8)
	board.Graph().AddEdge(0, 1)
	board.Graph().AddEdge(0, 2)
	board.Graph().AddEdge(1, 3)
	board.Graph().AddEdge(2, 3)
	for id, t := range board.Territories() {
		t.SetOwner(players[id%2])
		t.SetDice(2)
	}
	return board
}
