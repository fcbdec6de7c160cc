package events

import (
	"time"
)

// Event type constants
const (
	TypeMatchStarted          = "match.started"
	TypeMatchEnded            = "match.ended"
	TypeTurnStarted           = "turn.started"
	TypeTurnEnded             = "turn.ended"
	TypeAttackResolved        = "attack.resolved"
	TypeTerritoryCaptured     = "territory.captured"
	TypeReinforcementsGranted = "reinforcements.granted"
	TypePlayerEliminated      = "player.eliminated"
	TypeStateTransition       = "state.transition"
)

// MatchStartedEvent is published when a new match begins
type MatchStartedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	NumPlayers  int
	Rows        int
	Columns     int
	Territories int
}

// NewMatchStartedEvent creates a new MatchStartedEvent
func NewMatchStartedEvent(matchID string, numPlayers, rows, columns, territories int) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchStarted,
			Time:      time.Now(),
			Match:     matchID,
		},
		NumPlayers:  numPlayers,
		Rows:        rows,
		Columns:     columns,
		Territories: territories,
	}
}

// MatchEndedEvent is published when a match ends. WinnerID is -1 when the
// match stopped without a sole survivor.
type MatchEndedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	WinnerID  int
	Duration  time.Duration
	FinalTurn int
}

// NewMatchEndedEvent creates a new MatchEndedEvent
func NewMatchEndedEvent(matchID string, winnerID int, duration time.Duration, finalTurn int) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMatchEnded,
			Time:      time.Now(),
			Match:     matchID,
		},
		WinnerID:  winnerID,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnStartedEvent is published at the beginning of a player's turn
type TurnStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
	PlayerID   int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(matchID string, turn, playerID int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnStarted,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		TurnNumber: turn,
		PlayerID:   playerID,
	}
}

// TurnEndedEvent is published at the end of a player's turn
type TurnEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
	PlayerID   int
	Attacks    int
	Captures   int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(matchID string, turn, playerID, attacks, captures int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnEnded,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		TurnNumber: turn,
		PlayerID:   playerID,
		Attacks:    attacks,
		Captures:   captures,
	}
}

// AttackResolvedEvent is published when an attack between two territories
// has been rolled and resolved
type AttackResolvedEvent struct {
	BaseEvent
	Metadata      EventMetadata
	AttackerID    int
	DefenderID    int
	FromTerritory int
	ToTerritory   int
	AttackerDice  int
	DefenderDice  int
	AttackerRoll  int
	DefenderRoll  int
	Captured      bool
}

// NewAttackResolvedEvent creates a new AttackResolvedEvent
func NewAttackResolvedEvent(matchID string, attackerID, defenderID, from, to,
	attackerDice, defenderDice, attackerRoll, defenderRoll int, captured bool, turn int) *AttackResolvedEvent {
	return &AttackResolvedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeAttackResolved,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: attackerID,
			Turn:     turn,
		},
		AttackerID:    attackerID,
		DefenderID:    defenderID,
		FromTerritory: from,
		ToTerritory:   to,
		AttackerDice:  attackerDice,
		DefenderDice:  defenderDice,
		AttackerRoll:  attackerRoll,
		DefenderRoll:  defenderRoll,
		Captured:      captured,
	}
}

// TerritoryCapturedEvent is published when a territory changes hands
type TerritoryCapturedEvent struct {
	BaseEvent
	Metadata        EventMetadata
	TerritoryID     int
	NewOwnerID      int
	PreviousOwnerID int
	DiceMoved       int
}

// NewTerritoryCapturedEvent creates a new TerritoryCapturedEvent
func NewTerritoryCapturedEvent(matchID string, territoryID, newOwner, previousOwner, diceMoved, turn int) *TerritoryCapturedEvent {
	return &TerritoryCapturedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTerritoryCaptured,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: newOwner,
			Turn:     turn,
		},
		TerritoryID:     territoryID,
		NewOwnerID:      newOwner,
		PreviousOwnerID: previousOwner,
		DiceMoved:       diceMoved,
	}
}

// ReinforcementsGrantedEvent is published after a player's end-of-turn
// reinforcements have been placed
type ReinforcementsGrantedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	PlayerID    int
	ClusterSize int
	Granted     int
	Discarded   int
}

// NewReinforcementsGrantedEvent creates a new ReinforcementsGrantedEvent
func NewReinforcementsGrantedEvent(matchID string, playerID, clusterSize, granted, discarded, turn int) *ReinforcementsGrantedEvent {
	return &ReinforcementsGrantedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeReinforcementsGranted,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID:    playerID,
		ClusterSize: clusterSize,
		Granted:     granted,
		Discarded:   discarded,
	}
}

// PlayerEliminatedEvent is published when a player loses their last territory
type PlayerEliminatedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	PlayerID     int
	EliminatedBy int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(matchID string, playerID, eliminatedBy, turn int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePlayerEliminated,
			Time:      time.Now(),
			Match:     matchID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID:     playerID,
		EliminatedBy: eliminatedBy,
	}
}

// StateTransitionEvent is published when the match state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(matchID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: BaseEvent{
			EventType: TypeStateTransition,
			Time:      time.Now(),
			Match:     matchID,
		},
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
