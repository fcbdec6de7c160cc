package strategy

import (
	"math/rand"

	"dicewars/internal/game/core"
)

// RandomStrategy is the classic computer opponent: it gathers every legal
// attacker/defender pair and commits to one picked uniformly at random.
type RandomStrategy struct {
	rng      *rand.Rand
	pairs    []attackPair
	attacker *core.Territory
}

// NewRandomStrategy creates the randomized opponent. Every pick goes through
// rng, so a fixed seed reproduces its decisions.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

// Evaluate rebuilds the candidate list for p and reports whether any legal
// attack exists.
func (s *RandomStrategy) Evaluate(b *core.Board, p *core.Player) bool {
	s.pairs = legalPairs(b, p, s.pairs[:0])
	return len(s.pairs) > 0
}

// ChooseAttacker picks a candidate pair uniformly at random, remembers its
// attacker for ChooseDefender and returns it. Nil when no candidates exist.
func (s *RandomStrategy) ChooseAttacker() *core.Territory {
	if len(s.pairs) == 0 {
		return nil
	}
	pair := s.pairs[s.rng.Intn(len(s.pairs))]
	s.attacker = pair.attacker
	return s.attacker
}

// ChooseDefender returns the defender of the first candidate pair carrying
// the remembered attacker, in candidate order. Nil when no attacker has been
// chosen.
func (s *RandomStrategy) ChooseDefender() *core.Territory {
	if s.attacker == nil {
		return nil
	}
	for _, pair := range s.pairs {
		if pair.attacker == s.attacker {
			return pair.defender
		}
	}
	return nil
}
