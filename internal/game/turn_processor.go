package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
)

// TurnProcessor handles the orchestration of a single player turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTurn executes a complete turn for the next player in rotation:
// the attack phase driven by the player's strategy, then end-of-turn
// reinforcements, then stats and win condition updates.
func (tp *TurnProcessor) ProcessTurn(ctx context.Context) error {
	// Check context at start
	if err := tp.checkContext(ctx, "before starting"); err != nil {
		return err
	}

	// Validate match state
	if err := tp.validateMatchState(); err != nil {
		return err
	}

	player := tp.engine.advanceToNextPlayer()
	if player == nil {
		return ErrMatchOver
	}

	// Create turn-scoped logger
	turnLogger := tp.logger.With().
		Int("turn", tp.engine.ms.Turn).
		Int("player_id", player.ID).
		Logger()
	turnLogger.Debug().Msg("Starting turn")

	turnStartTime := time.Now()
	tp.publishTurnStarted(player)

	// Attack phase
	attacks, captures, err := tp.processAttackPhase(ctx, player, turnLogger)
	if err != nil {
		return fmt.Errorf("attack phase failed on turn %d: %w", tp.engine.ms.Turn, err)
	}

	// Reinforcement phase
	if err := tp.processReinforcementPhase(ctx, player, turnLogger); err != nil {
		return fmt.Errorf("reinforcement phase failed on turn %d: %w", tp.engine.ms.Turn, err)
	}

	// End of turn phase
	if err := tp.processEndOfTurnPhase(ctx, turnLogger); err != nil {
		return fmt.Errorf("end of turn phase failed on turn %d: %w", tp.engine.ms.Turn, err)
	}

	tp.publishTurnEnded(player, attacks, captures)

	turnLogger.Debug().
		Dur("processed_in", time.Since(turnStartTime)).
		Msg("Turn finished")
	return nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.ms.Turn).
			Str("phase", phase).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateMatchState ensures the match can process another turn
func (tp *TurnProcessor) validateMatchState() error {
	currentPhase := tp.engine.stateMachine.CurrentPhase()
	if !currentPhase.CanAdvance() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Int("turn", tp.engine.ms.Turn).
			Msg("Attempted to step match in phase that cannot advance")
		return fmt.Errorf("match is in %s phase and cannot advance", currentPhase)
	}

	if tp.engine.gameOver {
		tp.logger.Warn().
			Int("turn", tp.engine.ms.Turn).
			Msg("Attempted to step match that is already over")
		return ErrMatchOver
	}

	return nil
}

// publishTurnStarted publishes the turn started event
func (tp *TurnProcessor) publishTurnStarted(player *core.Player) {
	tp.engine.eventBus.Publish(events.NewTurnStartedEvent(tp.engine.matchID, tp.engine.ms.Turn, player.ID))
}

// processAttackPhase runs the player's strategy until it finds no more
// attacks worth making. Every attack leaves the attacking territory on a
// single die, so the loop always terminates.
func (tp *TurnProcessor) processAttackPhase(ctx context.Context, player *core.Player, turnLogger zerolog.Logger) (attacks, captures int, err error) {
	strat := tp.engine.strategyFor(player)
	if strat == nil {
		return 0, 0, nil
	}

	board := tp.engine.ms.Board
	for strat.Evaluate(board, player) {
		if err := tp.checkContext(ctx, "during attack phase"); err != nil {
			return attacks, captures, err
		}

		attacker := strat.ChooseAttacker()
		defender := strat.ChooseDefender()
		if attacker == nil || defender == nil {
			break
		}

		result, err := tp.engine.executeAttack(player, attacker, defender)
		if err != nil {
			return attacks, captures, fmt.Errorf("strategy produced an illegal attack: %w", err)
		}
		attacks++
		if result.Captured {
			captures++
		}
	}

	turnLogger.Debug().
		Int("attacks", attacks).
		Int("captures", captures).
		Msg("Attack phase complete")
	return attacks, captures, nil
}

// processReinforcementPhase grants end-of-turn dice
func (tp *TurnProcessor) processReinforcementPhase(ctx context.Context, player *core.Player, turnLogger zerolog.Logger) error {
	if err := tp.checkContext(ctx, "before reinforcements"); err != nil {
		return err
	}

	granted, discarded := tp.engine.reinforcements.GrantEndOfTurn(
		tp.engine.ms.Board, player, tp.engine.rng, tp.engine.ms.Turn)
	turnLogger.Debug().
		Int("granted", granted).
		Int("discarded", discarded).
		Msg("Reinforcement phase complete")
	return nil
}

// processEndOfTurnPhase handles end of turn updates
func (tp *TurnProcessor) processEndOfTurnPhase(ctx context.Context, turnLogger zerolog.Logger) error {
	if err := tp.checkContext(ctx, "before updating stats"); err != nil {
		return err
	}

	tp.engine.updatePlayerStats()
	tp.engine.checkGameOver(turnLogger)
	return nil
}

// publishTurnEnded publishes the turn ended event
func (tp *TurnProcessor) publishTurnEnded(player *core.Player, attacks, captures int) {
	tp.engine.eventBus.Publish(events.NewTurnEndedEvent(
		tp.engine.matchID,
		tp.engine.ms.Turn,
		player.ID,
		attacks,
		captures,
	))
}
