package game

import (
	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
	"dicewars/internal/game/rules"
)

// This file contains dice combat resolution for the game engine.

// CombatResult captures the outcome of a single attack roll.
type CombatResult struct {
	AttackerRoll int
	DefenderRoll int
	Captured     bool
	DiceMoved    int
}

// rollDice returns the sum of n six-sided dice.
func (e *Engine) rollDice(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += e.rng.Intn(6) + 1
	}
	return total
}

// resolveAttack rolls both sides and applies the outcome to the board.
// A winning attacker moves all but one die onto the captured territory;
// either way the attacking territory is left with a single die. Ties go
// to the defender.
func (e *Engine) resolveAttack(attacker, defender *core.Territory) CombatResult {
	result := CombatResult{
		AttackerRoll: e.rollDice(attacker.Dice()),
		DefenderRoll: e.rollDice(defender.Dice()),
	}

	if result.AttackerRoll > result.DefenderRoll {
		result.Captured = true
		result.DiceMoved = attacker.Dice() - 1
		defender.SetOwner(attacker.Owner())
		defender.SetDice(result.DiceMoved)
	}
	attacker.SetDice(1)

	return result
}

// executeAttack validates one attack order, resolves it and publishes the
// resulting events. An order failing validation leaves the board untouched;
// strategies only emit legal pairs, so an error here means a broken strategy.
// The defender's previous owner is checked for elimination after a capture.
func (e *Engine) executeAttack(player *core.Player, attacker, defender *core.Territory) (CombatResult, error) {
	if err := rules.ValidateAttack(e.ms.Board, attacker, defender); err != nil {
		return CombatResult{}, err
	}

	defenderOwner := defender.Owner()
	attackerDice := attacker.Dice()
	defenderDice := defender.Dice()

	result := e.resolveAttack(attacker, defender)

	defenderID := -1
	if defenderOwner != nil {
		defenderID = defenderOwner.ID
	}

	e.eventBus.Publish(events.NewAttackResolvedEvent(
		e.matchID,
		player.ID,
		defenderID,
		attacker.ID(),
		defender.ID(),
		attackerDice,
		defenderDice,
		result.AttackerRoll,
		result.DefenderRoll,
		result.Captured,
		e.ms.Turn,
	))

	if result.Captured {
		e.eventBus.Publish(events.NewTerritoryCapturedEvent(
			e.matchID,
			defender.ID(),
			player.ID,
			defenderID,
			result.DiceMoved,
			e.ms.Turn,
		))

		if defenderOwner != nil && len(e.ms.Board.TerritoriesOwnedBy(defenderOwner)) == 0 {
			e.logger.Info().
				Int("player_id", defenderOwner.ID).
				Int("eliminated_by", player.ID).
				Msg("Player lost their last territory")
			e.eventBus.Publish(events.NewPlayerEliminatedEvent(e.matchID, defenderOwner.ID, player.ID, e.ms.Turn))
		}
	}

	return result, nil
}
