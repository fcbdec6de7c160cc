package states

import (
	"time"

	"github.com/rs/zerolog"
)

// MatchContext provides match-specific information to states for making decisions
type MatchContext struct {
	// MatchID uniquely identifies this match instance
	MatchID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the number of players in the match
	PlayerCount int

	// StartTime is when the match started (PhaseRunning entered)
	StartTime time.Time

	// Winner is the player ID of the winner, -1 while undecided or drawn
	Winner int

	// Error holds any error that caused transition to PhaseError
	Error error

	// Metadata for custom state data
	Metadata map[string]interface{}
}

// NewMatchContext creates a new match context
func NewMatchContext(matchID string, playerCount int, logger zerolog.Logger) *MatchContext {
	return &MatchContext{
		MatchID:     matchID,
		PlayerCount: playerCount,
		Logger:      logger.With().Str("match_id", matchID).Logger(),
		Metadata:    make(map[string]interface{}),
		Winner:      -1,
	}
}

// IsReady returns true if the match has enough players to start
func (mc *MatchContext) IsReady() bool {
	return mc.PlayerCount >= 1
}

// GetElapsedTime returns the time elapsed since the match started
func (mc *MatchContext) GetElapsedTime() time.Duration {
	if mc.StartTime.IsZero() {
		return 0
	}
	return time.Since(mc.StartTime)
}

// SetMetadata stores custom data for states
func (mc *MatchContext) SetMetadata(key string, value interface{}) {
	mc.Metadata[key] = value
}

// GetMetadata retrieves custom data stored by states
func (mc *MatchContext) GetMetadata(key string) (interface{}, bool) {
	val, exists := mc.Metadata[key]
	return val, exists
}
