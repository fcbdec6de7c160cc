package states

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunningStateEnterSetsStartTime(t *testing.T) {
	ctx := NewMatchContext("test-match", 2, zerolog.Nop())
	state := NewRunningState()

	require.True(t, ctx.StartTime.IsZero())
	require.NoError(t, state.Enter(ctx))

	assert.False(t, ctx.StartTime.IsZero())
	assert.WithinDuration(t, time.Now(), ctx.StartTime, time.Second)
	assert.GreaterOrEqual(t, ctx.GetElapsedTime(), time.Duration(0))
}

func TestStartingStateValidation(t *testing.T) {
	state := NewStartingState()

	empty := NewMatchContext("test-match", 0, zerolog.Nop())
	assert.Error(t, state.Validate(empty))

	ready := NewMatchContext("test-match", 1, zerolog.Nop())
	assert.NoError(t, state.Validate(ready))
}

func TestEndingStateValidation(t *testing.T) {
	state := NewEndingState()

	// A match that never ran cannot end
	ctx := NewMatchContext("test-match", 2, zerolog.Nop())
	assert.Error(t, state.Validate(ctx))

	ctx.StartTime = time.Now()
	assert.NoError(t, state.Validate(ctx))

	// Turn-limit stops leave Winner at -1 and are still valid
	ctx.Winner = -1
	assert.NoError(t, state.Validate(ctx))
}

func TestErrorStateValidation(t *testing.T) {
	state := NewErrorState()

	ctx := NewMatchContext("test-match", 2, zerolog.Nop())
	assert.Error(t, state.Validate(ctx))

	ctx.Error = errors.New("something broke")
	assert.NoError(t, state.Validate(ctx))
	assert.NoError(t, state.Enter(ctx))
}

func TestEachStateReportsItsPhase(t *testing.T) {
	tests := []struct {
		state State
		phase MatchPhase
	}{
		{NewInitializingState(), PhaseInitializing},
		{NewStartingState(), PhaseStarting},
		{NewRunningState(), PhaseRunning},
		{NewEndingState(), PhaseEnding},
		{NewEndedState(), PhaseEnded},
		{NewErrorState(), PhaseError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.phase, tt.state.Phase())
	}
}
