package states

import (
	"fmt"
	"time"
)

// InitializingState represents the engine initialization phase
type InitializingState struct{}

func NewInitializingState() State {
	return &InitializingState{}
}

func (s *InitializingState) Phase() MatchPhase {
	return PhaseInitializing
}

func (s *InitializingState) Enter(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Exiting Initializing state")
	return nil
}

func (s *InitializingState) Validate(ctx *MatchContext) error {
	return nil
}

// StartingState represents the match setup phase
type StartingState struct{}

func NewStartingState() State {
	return &StartingState{}
}

func (s *StartingState) Phase() MatchPhase {
	return PhaseStarting
}

func (s *StartingState) Enter(ctx *MatchContext) error {
	ctx.Logger.Info().Msg("Starting match setup")
	return nil
}

func (s *StartingState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Match setup complete")
	return nil
}

func (s *StartingState) Validate(ctx *MatchContext) error {
	if !ctx.IsReady() {
		return fmt.Errorf("not enough players to start: have %d, need at least 1", ctx.PlayerCount)
	}
	return nil
}

// RunningState represents active gameplay
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) Phase() MatchPhase {
	return PhaseRunning
}

func (s *RunningState) Enter(ctx *MatchContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Time("start_time", ctx.StartTime).
		Msg("Match started")
	return nil
}

func (s *RunningState) Exit(ctx *MatchContext) error {
	ctx.Logger.Info().
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Exiting running state")
	return nil
}

func (s *RunningState) Validate(ctx *MatchContext) error {
	if ctx.PlayerCount < 1 {
		return fmt.Errorf("cannot run match with no players")
	}
	return nil
}

// EndingState represents the match ending phase
type EndingState struct{}

func NewEndingState() State {
	return &EndingState{}
}

func (s *EndingState) Phase() MatchPhase {
	return PhaseEnding
}

func (s *EndingState) Enter(ctx *MatchContext) error {
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Msg("Match ending, determining final results")
	return nil
}

func (s *EndingState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Match ending phase complete")
	return nil
}

func (s *EndingState) Validate(ctx *MatchContext) error {
	// Winner may legitimately be -1 when the turn limit stopped the match
	if ctx.StartTime.IsZero() {
		return fmt.Errorf("cannot end a match that never started")
	}
	return nil
}

// EndedState represents a completed match
type EndedState struct{}

func NewEndedState() State {
	return &EndedState{}
}

func (s *EndedState) Phase() MatchPhase {
	return PhaseEnded
}

func (s *EndedState) Enter(ctx *MatchContext) error {
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Dur("match_duration", ctx.GetElapsedTime()).
		Msg("Match ended")
	return nil
}

func (s *EndedState) Exit(ctx *MatchContext) error {
	ctx.Logger.Debug().Msg("Exiting ended state")
	return nil
}

func (s *EndedState) Validate(ctx *MatchContext) error {
	return nil
}

// ErrorState represents an unrecoverable error condition
type ErrorState struct{}

func NewErrorState() State {
	return &ErrorState{}
}

func (s *ErrorState) Phase() MatchPhase {
	return PhaseError
}

func (s *ErrorState) Enter(ctx *MatchContext) error {
	ctx.Logger.Error().
		Err(ctx.Error).
		Msg("Match entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *MatchContext) error {
	return nil
}

func (s *ErrorState) Validate(ctx *MatchContext) error {
	if ctx.Error == nil {
		return fmt.Errorf("error state requires an error in context")
	}
	return nil
}
