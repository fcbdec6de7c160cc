package core

// Player identifies a participant in a match. Players are compared by
// pointer: two territories share an owner iff they hold the same *Player,
// and a nil owner marks an unassigned territory.
type Player struct {
	ID   int
	Name string
}

// NewPlayer creates a player with the given id and display name.
func NewPlayer(id int, name string) *Player {
	return &Player{ID: id, Name: name}
}

func (p *Player) String() string {
	if p == nil {
		return "nobody"
	}
	return p.Name
}
