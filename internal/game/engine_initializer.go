package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dicewars/internal/game/core"
	"dicewars/internal/game/events"
	"dicewars/internal/game/mapgen"
	"dicewars/internal/game/rules"
	"dicewars/internal/game/states"
	"dicewars/internal/game/strategy"
)

// GameConfig bundles everything needed to build a match engine. Zero board
// dimensions adopt the configured defaults, as do an empty roster, a zero
// turn limit, a nil Rng and an empty MatchID.
type GameConfig struct {
	Rows    int
	Columns int
	Victims int
	MaxDice int

	PlayerNames []string
	Strategies  []string

	MaxTurns int
	Rng      *rand.Rand
	Logger   zerolog.Logger
	MatchID  string
}

// EngineInitializer handles the staged construction of a match engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "MatchEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// NewEngine creates and initializes a new match engine
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Initialize creates and initializes a new match engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	// Check context early
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	// Setup configuration defaults
	ei.setupDefaults()

	// Build the roster
	players := ei.createPlayers()

	// Generate the board
	board, err := ei.generateBoard(players)
	if err != nil {
		return nil, fmt.Errorf("board generation failed: %w", err)
	}

	// Initialize match state
	ms := ei.initializeMatchState(board, players)

	// Create engine components
	engine, err := ei.createEngine(ms, players)
	if err != nil {
		return nil, err
	}

	// Perform initial stats pass
	ei.performInitialSetup(engine)

	// Initialize state machine
	if err := ei.initializeStateMachine(engine); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	// Publish match started event
	engine.eventBus.Publish(events.NewMatchStartedEvent(
		engine.matchID,
		len(players),
		ei.config.Rows,
		ei.config.Columns,
		board.PlayableCount(),
	))

	ei.logger.Info().
		Str("match_id", engine.matchID).
		Int("rows", ei.config.Rows).
		Int("columns", ei.config.Columns).
		Int("players", len(players)).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in default values for missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rows == 0 && ei.config.Columns == 0 {
		ei.config.Rows = BoardRows()
		ei.config.Columns = BoardColumns()
		ei.config.Victims = BoardVictims()
		ei.config.MaxDice = BoardMaxDice()
	}

	if ei.config.MaxDice == 0 {
		ei.config.MaxDice = BoardMaxDice()
	}

	if ei.config.MaxTurns == 0 {
		ei.config.MaxTurns = MaxTurns()
	}

	if len(ei.config.PlayerNames) == 0 {
		ei.config.PlayerNames = PlayerNames()
	}

	// Pad strategies with the default up to the roster size
	for len(ei.config.Strategies) < len(ei.config.PlayerNames) {
		ei.config.Strategies = append(ei.config.Strategies, "random")
	}

	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if ei.config.MatchID == "" {
		ei.config.MatchID = uuid.NewString()
	}
}

// createPlayers builds the player roster
func (ei *EngineInitializer) createPlayers() []*core.Player {
	players := make([]*core.Player, len(ei.config.PlayerNames))
	for i, name := range ei.config.PlayerNames {
		players[i] = core.NewPlayer(i, name)
	}
	return players
}

// generateBoard generates and partitions the board
func (ei *EngineInitializer) generateBoard(players []*core.Player) (*core.Board, error) {
	mapCfg := mapgen.Config{
		Rows:    ei.config.Rows,
		Columns: ei.config.Columns,
		Victims: ei.config.Victims,
		MaxDice: ei.config.MaxDice,
		Players: players,
	}
	generator := mapgen.NewGenerator(mapCfg, ei.config.Rng)
	return generator.Generate()
}

// initializeMatchState creates the initial match state
func (ei *EngineInitializer) initializeMatchState(board *core.Board, players []*core.Player) *MatchState {
	ms := &MatchState{
		Board:   board,
		Players: make([]PlayerState, len(players)),
		Turn:    0,
	}
	for i, p := range players {
		ms.Players[i] = PlayerState{
			Player: p,
			Alive:  true,
		}
	}
	return ms
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(ms *MatchState, players []*core.Player) (*Engine, error) {
	strategies := make([]strategy.Strategy, len(players))
	for i := range players {
		strat, err := strategy.New(ei.config.Strategies[i], ei.config.Rng)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
		strategies[i] = strat
	}

	eventBus := events.NewEventBus()

	matchContext := states.NewMatchContext(ei.config.MatchID, len(players), ei.logger)
	stateMachine := states.NewStateMachine(matchContext, eventBus)

	engine := &Engine{
		ms:           ms,
		rng:          ei.config.Rng,
		gameOver:     false,
		logger:       ei.logger,
		roster:       players,
		strategies:   strategies,
		currentIdx:   -1,
		maxTurns:     ei.config.MaxTurns,
		winCondition: rules.NewWinConditionChecker(ei.logger, len(players)),
		eventBus:     eventBus,
		matchID:      ei.config.MatchID,
		stateMachine: stateMachine,
	}

	// Create managers after engine is created
	engine.reinforcements = NewReinforcementManager(eventBus, ei.config.MatchID, ei.logger)
	engine.turnProcessor = NewTurnProcessor(engine)

	return engine, nil
}

// performInitialSetup runs the initial stats pass so territory and dice
// counts are populated before the first turn
func (ei *EngineInitializer) performInitialSetup(engine *Engine) {
	engine.updatePlayerStats()
}

// initializeStateMachine walks the state machine into the Running phase
func (ei *EngineInitializer) initializeStateMachine(engine *Engine) error {
	stateMachine := engine.stateMachine

	if err := stateMachine.TransitionTo(states.PhaseStarting, "Engine initialized"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Starting state")
		return err
	}

	if err := stateMachine.TransitionTo(states.PhaseRunning, "Board generated and partitioned"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return err
	}

	return nil
}
