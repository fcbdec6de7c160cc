package game

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"

	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
	"dicewars/internal/game/rules"
	"dicewars/internal/game/states"
	"dicewars/internal/game/strategy"
)

// Engine drives a single match from board generation to a decided winner
// or the turn limit. Engines are single use.
type Engine struct {
	ms       *MatchState
	rng      *rand.Rand
	gameOver bool
	winner   *core.Player
	logger   zerolog.Logger

	roster     []*core.Player
	strategies []strategy.Strategy
	currentIdx int
	maxTurns   int

	winCondition   *rules.WinConditionChecker
	reinforcements *ReinforcementManager
	turnProcessor  *TurnProcessor
	eventBus       *events.EventBus
	matchID        string
	stateMachine   *states.StateMachine
}

// Step advances the match by one player turn
func (e *Engine) Step(ctx context.Context) error {
	return e.turnProcessor.ProcessTurn(ctx)
}

// MatchState exposes the live match state. Callers must treat it as
// read-only; the engine owns all mutation.
func (e *Engine) MatchState() *MatchState {
	return e.ms
}

// IsGameOver reports whether the match has been decided or stopped
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Winner returns the sole survivor, nil while running or after a
// turn-limit stop
func (e *Engine) Winner() *core.Player {
	return e.winner
}

// MatchID returns the unique identifier of this match
func (e *Engine) MatchID() string {
	return e.matchID
}

// EventBus returns the bus carrying this match's events
func (e *Engine) EventBus() *events.EventBus {
	return e.eventBus
}

// CurrentPhase returns the lifecycle phase of the match
func (e *Engine) CurrentPhase() states.MatchPhase {
	return e.stateMachine.CurrentPhase()
}

// Turn returns the number of the last processed turn
func (e *Engine) Turn() int {
	return e.ms.Turn
}

// strategyFor returns the strategy playing for the given player
func (e *Engine) strategyFor(p *core.Player) strategy.Strategy {
	for i, rp := range e.roster {
		if rp == p {
			return e.strategies[i]
		}
	}
	return nil
}

// advanceToNextPlayer increments the turn counter and rotates to the next
// player still holding territory. Returns nil when nobody is left.
func (e *Engine) advanceToNextPlayer() *core.Player {
	e.ms.Turn++

	n := len(e.ms.Players)
	for i := 0; i < n; i++ {
		e.currentIdx = (e.currentIdx + 1) % n
		ps := &e.ms.Players[e.currentIdx]
		if ps.Alive {
			return ps.Player
		}
	}
	return nil
}

// checkGameOver evaluates the win condition and the turn limit, ending
// the match when either fires
func (e *Engine) checkGameOver(logger zerolog.Logger) {
	over, winner := e.winCondition.CheckGameOver(e.ms.Board, e.roster)
	if over {
		e.endMatch(winner, "sole survivor")
		return
	}

	if e.maxTurns > 0 && e.ms.Turn >= e.maxTurns {
		logger.Info().
			Int("turn", e.ms.Turn).
			Int("max_turns", e.maxTurns).
			Msg("Turn limit reached, stopping match")
		e.endMatch(nil, "turn limit reached")
	}
}

// endMatch marks the match as over, walks the state machine to Ended and
// publishes the final event
func (e *Engine) endMatch(winner *core.Player, reason string) {
	if e.gameOver {
		return
	}
	e.gameOver = true
	e.winner = winner

	winnerID := -1
	if winner != nil {
		winnerID = winner.ID
	}

	matchContext := e.stateMachine.GetContext()
	matchContext.Winner = winnerID
	duration := matchContext.GetElapsedTime()

	if err := e.stateMachine.TransitionTo(states.PhaseEnding, reason); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to Ending state")
	}

	e.eventBus.Publish(events.NewMatchEndedEvent(e.matchID, winnerID, duration, e.ms.Turn))

	if err := e.stateMachine.TransitionTo(states.PhaseEnded, "results recorded"); err != nil {
		e.logger.Error().Err(err).Msg("Failed to transition to Ended state")
	}
}
