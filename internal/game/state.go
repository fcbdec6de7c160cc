package game

import (
	"dicewars/internal/game/core"
)

// PlayerState tracks a single player's standing within a match.
type PlayerState struct {
	Player         *core.Player
	Alive          bool
	TerritoryCount int // cached every turn
	DiceCount      int // cached every turn
	ClusterSize    int // cached every turn
}

// MatchState is the complete mutable state of a running match.
type MatchState struct {
	Turn    int
	Board   *core.Board
	Players []PlayerState
}

// AliveCount returns the number of players still holding territory.
func (ms *MatchState) AliveCount() int {
	alive := 0
	for i := range ms.Players {
		if ms.Players[i].Alive {
			alive++
		}
	}
	return alive
}
