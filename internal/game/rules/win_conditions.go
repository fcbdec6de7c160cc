package rules

import (
	"github.com/rs/zerolog"

	"dicewars/internal/game/core"
)

// IsEliminated reports whether p holds no territories. Ownership only moves
// between players after setup, so an eliminated player never returns.
func IsEliminated(b *core.Board, p *core.Player) bool {
	for _, t := range b.Territories() {
		if t.Owner() == p {
			return false
		}
	}
	return true
}

// WinConditionChecker handles match-over detection and winner determination.
type WinConditionChecker struct {
	logger          zerolog.Logger
	originalPlayers int
}

// NewWinConditionChecker creates a win condition checker for a match that
// started with the given number of players.
func NewWinConditionChecker(logger zerolog.Logger, originalPlayers int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:          logger.With().Str("component", "WinConditionChecker").Logger(),
		originalPlayers: originalPlayers,
	}
}

// CheckGameOver reports whether the match has ended and who won. The match
// ends when at most one of the original players still holds territory; the
// winner is that surviving player, or nil if nobody survives.
func (wc *WinConditionChecker) CheckGameOver(b *core.Board, players []*core.Player) (bool, *core.Player) {
	var survivor *core.Player
	aliveCount := 0
	for _, p := range players {
		if !IsEliminated(b, p) {
			aliveCount++
			survivor = p
		}
	}

	var gameOver bool
	if wc.originalPlayers > 1 {
		gameOver = aliveCount <= 1
	} else {
		gameOver = aliveCount == 0
	}

	if !gameOver {
		wc.logger.Debug().Int("alive_player_count", aliveCount).Msg("Match still contested")
		return false, nil
	}

	if aliveCount == 1 {
		wc.logger.Info().Int("winner_player_id", survivor.ID).Str("winner", survivor.Name).Msg("Winner determined")
		return true, survivor
	}

	wc.logger.Info().Msg("Match over without a winner")
	return true, nil
}
