package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
)

// ReinforcementManager hands out end-of-turn dice based on connected territory
type ReinforcementManager struct {
	eventBus *events.EventBus
	matchID  string
	logger   zerolog.Logger
}

// NewReinforcementManager creates a new reinforcement manager
func NewReinforcementManager(eventBus *events.EventBus, matchID string, logger zerolog.Logger) *ReinforcementManager {
	return &ReinforcementManager{
		eventBus: eventBus,
		matchID:  matchID,
		logger:   logger.With().Str("component", "ReinforcementManager").Logger(),
	}
}

// GrantEndOfTurn awards the player one die per territory in their largest
// connected cluster. Each die lands on a random owned territory below the
// dice cap; dice that cannot be placed are discarded.
func (rm *ReinforcementManager) GrantEndOfTurn(board *core.Board, p *core.Player, rng *rand.Rand, turn int) (granted, discarded int) {
	grant := board.LargestClusterSizeFor(p)
	if grant == 0 {
		return 0, 0
	}

	maxDice := board.MaxDice()
	for i := 0; i < grant; i++ {
		eligible := eligibleTerritories(board, p, maxDice)
		if len(eligible) == 0 {
			discarded = grant - granted
			break
		}
		t := eligible[rng.Intn(len(eligible))]
		t.SetDice(t.Dice() + 1)
		granted++
	}

	rm.logger.Debug().
		Int("player_id", p.ID).
		Int("cluster_size", grant).
		Int("granted", granted).
		Int("discarded", discarded).
		Msg("End-of-turn reinforcements placed")

	rm.publishReinforcementsEvent(p.ID, grant, granted, discarded, turn)
	return granted, discarded
}

// eligibleTerritories lists the player's territories that can still take a die
func eligibleTerritories(board *core.Board, p *core.Player, maxDice int) []*core.Territory {
	var eligible []*core.Territory
	for _, t := range board.TerritoriesOwnedBy(p) {
		if t.Dice() < maxDice {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// publishReinforcementsEvent publishes a reinforcement event if any dice were handled
func (rm *ReinforcementManager) publishReinforcementsEvent(playerID, clusterSize, granted, discarded, turn int) {
	if granted > 0 || discarded > 0 {
		rm.eventBus.Publish(events.NewReinforcementsGrantedEvent(
			rm.matchID,
			playerID,
			clusterSize,
			granted,
			discarded,
			turn,
		))
	}
}
