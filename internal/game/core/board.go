package core

import "fmt"

// Board owns the territory grid and its adjacency graph. NewBoard allocates
// the grid with row-major ids and an all-active graph; the mapgen package
// marks victims, wires edges, partitions ownership and deals dice. The board
// caches no derived state, so every query reflects current ownership.
type Board struct {
	rows    int
	columns int
	maxDice int

	grid  []*Territory // row-major; index == territory id
	graph *Graph
}

// NewBoard allocates a rows by columns board with the given per-territory
// dice cap. Every territory starts playable, unowned and without dice; ids
// run 0..rows*columns-1 in row-major order.
func NewBoard(rows, columns, maxDice int) *Board {
	b := &Board{
		rows:    rows,
		columns: columns,
		maxDice: maxDice,
		grid:    make([]*Territory, rows*columns),
		graph:   NewGraph(rows * columns),
	}
	for id := range b.grid {
		t := NewTerritory(columns)
		t.SetID(id)
		b.grid[id] = t
	}
	return b
}

func (b *Board) Rows() int     { return b.rows }
func (b *Board) Columns() int  { return b.columns }
func (b *Board) Size() int     { return len(b.grid) }
func (b *Board) MaxDice() int  { return b.maxDice }
func (b *Board) Graph() *Graph { return b.graph }

// Territories returns the full row-major grid. The slice is the board's own
// storage; callers must not reorder it.
func (b *Board) Territories() []*Territory { return b.grid }

// InBounds reports whether row/col lie inside the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// GetTerritory returns the territory at row/col. Positions outside the grid
// yield ErrOutOfBounds; they are never clamped.
func (b *Board) GetTerritory(row, col int) (*Territory, error) {
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}
	return b.grid[row*b.columns+col], nil
}

// GetTerritoryID returns the id of the territory at row/col, or
// ErrOutOfBounds for positions outside the grid.
func (b *Board) GetTerritoryID(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return -1, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}
	return row*b.columns + col, nil
}

// TerritoryByID returns the territory carrying the given id.
func (b *Board) TerritoryByID(id int) (*Territory, error) {
	if id < 0 || id >= len(b.grid) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerritory, id)
	}
	return b.grid[id], nil
}

// PlayableCount returns the number of territories still in play. Victims are
// struck permanently during generation, so the count is constant afterwards.
func (b *Board) PlayableCount() int {
	count := 0
	for _, t := range b.grid {
		if t.Playable() {
			count++
		}
	}
	return count
}

// TerritoriesOwnedBy returns every territory whose owner is p. Ownership is
// pointer identity, so players with equal fields never alias.
func (b *Board) TerritoriesOwnedBy(p *Player) []*Territory {
	owned := make([]*Territory, 0)
	for _, t := range b.grid {
		if t.Owner() == p {
			owned = append(owned, t)
		}
	}
	return owned
}

// DiceCountOf sums the dice on p's territories.
func (b *Board) DiceCountOf(p *Player) int {
	total := 0
	for _, t := range b.grid {
		if t.Owner() == p {
			total += t.Dice()
		}
	}
	return total
}

// NeighborsOf returns the territories adjacent to t in the graph.
func (b *Board) NeighborsOf(t *Territory) []*Territory {
	ids := b.graph.NeighborsOf(t.ID())
	neighbors := make([]*Territory, 0, len(ids))
	for _, id := range ids {
		neighbors = append(neighbors, b.grid[id])
	}
	return neighbors
}

// EnemyNeighborsOf returns the neighbors of t held by a different owner.
// Two unowned territories share the nil owner and are not enemies.
func (b *Board) EnemyNeighborsOf(t *Territory) []*Territory {
	enemies := make([]*Territory, 0)
	for _, n := range b.NeighborsOf(t) {
		if n.Owner() != t.Owner() {
			enemies = append(enemies, n)
		}
	}
	return enemies
}

// LargestClusterSizeFor returns the size of p's largest connected group of
// territories, recomputed from live ownership on every call.
func (b *Board) LargestClusterSizeFor(p *Player) int {
	return b.graph.LargestClusterSize(func(v int) bool {
		return b.grid[v].Owner() == p
	})
}
