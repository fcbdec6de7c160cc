package core

// Territory is a single cell on the board. The board assigns id, owner and
// dice during setup; turn logic mutates owner and dice afterwards through the
// setters. The id doubles as the territory's graph vertex and encodes its
// grid position: id = row*columns + col.
type Territory struct {
	id       int
	owner    *Player
	dice     int
	playable bool
	columns  int
}

// NewTerritory returns an unowned, playable territory. Id and dice hold -1
// until the board sets them.
func NewTerritory(columns int) *Territory {
	return &Territory{id: -1, dice: -1, playable: true, columns: columns}
}

func (t *Territory) ID() int        { return t.id }
func (t *Territory) SetID(id int)   { t.id = id }
func (t *Territory) Owner() *Player { return t.owner }

// SetOwner reassigns the territory. Passing nil returns it to unowned.
func (t *Territory) SetOwner(p *Player) { t.owner = p }

func (t *Territory) Dice() int       { return t.dice }
func (t *Territory) SetDice(n int)   { t.dice = n }
func (t *Territory) Playable() bool  { return t.playable }
func (t *Territory) SetPlayable(ok bool) { t.playable = ok }

// Row derives the grid row from the id and the board's column count.
func (t *Territory) Row() int { return t.id / t.columns }

// Col derives the grid column from the id.
func (t *Territory) Col() int { return t.id % t.columns }
