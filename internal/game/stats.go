package game

import (
	"dicewars/internal/game/core"
)

// This file contains all player statistics management for the game engine.

// updatePlayerStats recalculates player statistics from the board.
// Alive status follows territory possession, so elimination is detected
// here and logged once at the transition.
func (e *Engine) updatePlayerStats() {
	for i := range e.ms.Players {
		e.ms.Players[i].TerritoryCount = 0
		e.ms.Players[i].DiceCount = 0
		e.ms.Players[i].ClusterSize = 0
	}

	for _, t := range e.ms.Board.Territories() {
		owner := t.Owner()
		if !t.Playable() || owner == nil {
			continue
		}
		ps := e.playerState(owner)
		if ps == nil {
			continue
		}
		ps.TerritoryCount++
		ps.DiceCount += t.Dice()
	}

	for i := range e.ms.Players {
		ps := &e.ms.Players[i]
		wasAlive := ps.Alive
		ps.Alive = ps.TerritoryCount > 0
		if ps.Alive {
			ps.ClusterSize = e.ms.Board.LargestClusterSizeFor(ps.Player)
		}
		if wasAlive && !ps.Alive {
			e.logger.Info().
				Int("player_id", ps.Player.ID).
				Int("turn", e.ms.Turn).
				Msg("Player marked as dead")
		}
	}
}

// playerState returns the state entry for the given player, nil if the
// player is not part of this match.
func (e *Engine) playerState(p *core.Player) *PlayerState {
	for i := range e.ms.Players {
		if e.ms.Players[i].Player == p {
			return &e.ms.Players[i]
		}
	}
	return nil
}
