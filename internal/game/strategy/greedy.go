package strategy

import "dicewars/internal/game/core"

// GreedyStrategy presses the largest dice advantage on the board. It is
// deterministic for a given state: candidates are scanned in grid order and
// the first best pair wins ties.
type GreedyStrategy struct {
	pairs  []attackPair
	chosen int
}

// NewGreedyStrategy creates the deterministic opponent.
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{chosen: -1}
}

// Evaluate rebuilds the candidate list for p and reports whether any legal
// attack exists. Any previously chosen pair is forgotten.
func (s *GreedyStrategy) Evaluate(b *core.Board, p *core.Player) bool {
	s.pairs = legalPairs(b, p, s.pairs[:0])
	s.chosen = -1
	return len(s.pairs) > 0
}

// ChooseAttacker commits to the pair with the largest dice advantage and
// returns its attacker. Nil when no candidates exist.
func (s *GreedyStrategy) ChooseAttacker() *core.Territory {
	if len(s.pairs) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(s.pairs); i++ {
		if s.pairs[i].advantage() > s.pairs[best].advantage() {
			best = i
		}
	}
	s.chosen = best
	return s.pairs[best].attacker
}

// ChooseDefender returns the defender of the committed pair, nil when none
// has been chosen.
func (s *GreedyStrategy) ChooseDefender() *core.Territory {
	if s.chosen < 0 {
		return nil
	}
	return s.pairs[s.chosen].defender
}
