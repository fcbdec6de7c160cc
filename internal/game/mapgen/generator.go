package mapgen

import (
	"fmt"
	"math/rand"

	"dicewars/internal/game/core"
)

// Config holds the parameters for board generation.
type Config struct {
	Rows    int
	Columns int
	Victims int // cells struck from play before edges are wired
	MaxDice int
	Players []*core.Player
}

// DefaultConfig returns the classic setup: an 8x8 grid with 8 victims and
// dice capped at 8 per territory.
func DefaultConfig(players []*core.Player) Config {
	return Config{
		Rows:    8,
		Columns: 8,
		Victims: 8,
		MaxDice: 8,
		Players: players,
	}
}

// Validate rejects configurations generation cannot complete. The dice pass
// deals every player three dice per territory, so the per-territory cap must
// admit at least three or the top-up loop would never drain its budget.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%w: extent %dx%d", core.ErrInvalidConfiguration, c.Rows, c.Columns)
	}
	if len(c.Players) == 0 {
		return core.ErrNoPlayers
	}
	if c.Victims < 0 || c.Victims >= c.Rows*c.Columns {
		return fmt.Errorf("%w: %d victims on a %d-cell board", core.ErrInvalidConfiguration, c.Victims, c.Rows*c.Columns)
	}
	if c.MaxDice < 3 {
		return fmt.Errorf("%w: max dice %d, need at least 3", core.ErrInvalidConfiguration, c.MaxDice)
	}
	return nil
}

// Generator builds boards from a Config and an injected random source.
// Victim draws, the partition shuffle and dice placement all go through rng,
// so a fixed seed reproduces the entire board.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a board generator.
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate runs the construction pipeline: allocate territories, strike
// victims, wire edges, partition ownership among the players, deal dice.
func (g *Generator) Generate() (*core.Board, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	board := core.NewBoard(g.config.Rows, g.config.Columns, g.config.MaxDice)
	g.markVictims(board)
	g.wireEdges(board)
	g.partitionTerritories(board)
	g.distributeDice(board)

	return board, nil
}

// markVictims strikes the configured number of cells from play and retires
// their graph vertices. Draws are made with replacement: a repeat draw lands
// on an already-struck cell, so the effective victim count can fall short of
// the request.
func (g *Generator) markVictims(b *core.Board) {
	for i := 0; i < g.config.Victims; i++ {
		row := g.rng.Intn(g.config.Rows)
		col := g.rng.Intn(g.config.Columns)
		id := row*g.config.Columns + col
		b.Territories()[id].SetPlayable(false)
		b.Graph().DeactivateVertex(id)
	}
}

// wireEdges connects every playable cell to its playable orthogonal
// neighbors. Each undirected edge is added once, from its lower-id side.
func (g *Generator) wireEdges(b *core.Board) {
	territories := b.Territories()
	for row := 0; row < g.config.Rows; row++ {
		for col := 0; col < g.config.Columns; col++ {
			id := row*g.config.Columns + col
			if !territories[id].Playable() {
				continue
			}
			if col+1 < g.config.Columns && territories[id+1].Playable() {
				b.Graph().AddEdge(id, id+1)
			}
			if row+1 < g.config.Rows && territories[id+g.config.Columns].Playable() {
				b.Graph().AddEdge(id, id+g.config.Columns)
			}
		}
	}
}

// partitionTerritories shuffles the playable cells and deals them
// round-robin over the player list, so any two holdings differ by at most
// one territory.
func (g *Generator) partitionTerritories(b *core.Board) {
	playable := make([]*core.Territory, 0, b.Size())
	for _, t := range b.Territories() {
		if t.Playable() {
			playable = append(playable, t)
		}
	}

	g.rng.Shuffle(len(playable), func(i, j int) {
		playable[i], playable[j] = playable[j], playable[i]
	})

	for i, t := range playable {
		t.SetOwner(g.config.Players[i%len(g.config.Players)])
	}
}

// distributeDice deals each player three dice per owned territory: one die
// everywhere up front, then the remainder one at a time onto random owned
// territories still below the cap. Validate guarantees the cap leaves room,
// so the rejection loop always drains the budget.
func (g *Generator) distributeDice(b *core.Board) {
	for _, p := range g.config.Players {
		owned := b.TerritoriesOwnedBy(p)
		budget := 3 * len(owned)

		for _, t := range owned {
			t.SetDice(1)
			budget--
		}

		for budget > 0 {
			t := owned[g.rng.Intn(len(owned))]
			if t.Dice() < g.config.MaxDice {
				t.SetDice(t.Dice() + 1)
				budget--
			}
		}
	}
}
