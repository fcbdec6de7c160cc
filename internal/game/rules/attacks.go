package rules

import (
	"errors"
	"fmt"

	"dicewars/internal/game/core"
)

var (
	ErrNotAdjacent    = errors.New("territories are not adjacent")
	ErrFriendlyTarget = errors.New("target has the same owner")
	ErrTooFewDice     = errors.New("attacker needs more dice")
)

// CanAttack reports whether the dice heuristic allows the assault: the
// attacker needs more than one die and at least as many as the defender.
// A tie qualifies; adjacency and ownership are checked elsewhere.
func CanAttack(attacker, defender *core.Territory) bool {
	return attacker.Dice() > 1 && attacker.Dice() >= defender.Dice()
}

// ValidateAttack checks a full attack order: the defender must be a graph
// neighbor of the attacker, held by a different owner, and the dice
// heuristic must allow it.
func ValidateAttack(b *core.Board, attacker, defender *core.Territory) error {
	adjacent := false
	for _, n := range b.NeighborsOf(attacker) {
		if n == defender {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return fmt.Errorf("%w: %d -> %d", ErrNotAdjacent, attacker.ID(), defender.ID())
	}
	if defender.Owner() == attacker.Owner() {
		return fmt.Errorf("%w: %d -> %d", ErrFriendlyTarget, attacker.ID(), defender.ID())
	}
	if !CanAttack(attacker, defender) {
		return fmt.Errorf("%w: %d vs %d", ErrTooFewDice, attacker.Dice(), defender.Dice())
	}
	return nil
}
