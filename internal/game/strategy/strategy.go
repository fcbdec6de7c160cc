package strategy

import (
	"fmt"
	"math/rand"

	"dicewars/internal/game/core"
	"dicewars/internal/game/rules"
)

// Strategy decides a player's attacks. Evaluate recomputes the candidate
// pairs against live board state and reports whether any legal attack
// exists; ChooseAttacker and ChooseDefender then expose one assault.
// Implementations recompute at every decision point and never cache across
// ownership changes.
type Strategy interface {
	Evaluate(b *core.Board, p *core.Player) bool
	ChooseAttacker() *core.Territory
	ChooseDefender() *core.Territory
}

// attackPair couples an attacker with one enemy neighbor it may assault.
type attackPair struct {
	attacker *core.Territory
	defender *core.Territory
}

func (p attackPair) advantage() int { return p.attacker.Dice() - p.defender.Dice() }

// legalPairs appends every legal attacker/defender pair for p to dst.
// Attackers are visited in grid order, defenders in adjacency order, so the
// result is stable for a given board state.
func legalPairs(b *core.Board, p *core.Player, dst []attackPair) []attackPair {
	for _, attacker := range b.TerritoriesOwnedBy(p) {
		for _, defender := range b.EnemyNeighborsOf(attacker) {
			if rules.CanAttack(attacker, defender) {
				dst = append(dst, attackPair{attacker: attacker, defender: defender})
			}
		}
	}
	return dst
}

// New returns the strategy registered under name. Randomized strategies draw
// from rng; deterministic ones ignore it.
func New(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "random":
		return NewRandomStrategy(rng), nil
	case "greedy":
		return NewGreedyStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
