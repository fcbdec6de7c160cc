package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dicewars/internal/config"
	"dicewars/internal/game"
	"dicewars/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	matches := flag.Int("matches", -1, "Number of matches to simulate (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Base RNG seed (0 to use config default, which derives one from the clock)")
	render := flag.Bool("render", false, "Render the board after every turn")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *matches == -1 {
		*matches = cfg.Sim.Matches
	}
	if *seed == 0 {
		*seed = cfg.Match.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if !flagPassed(flag.CommandLine, "render") {
		*render = cfg.Sim.Render
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	// Setup logging
	setupLogging(*logLevel)

	// Pick up edits to the config file between matches
	config.WatchConfig(func() {
		log.Info().Str("file", config.ConfigFilePath()).Msg("Configuration reloaded")
	})

	log.Info().
		Int("matches", *matches).
		Int64("seed", *seed).
		Int("rows", cfg.Game.Board.Rows).
		Int("columns", cfg.Game.Board.Columns).
		Int("players", cfg.Game.Players.Count).
		Msg("Starting dicewars simulation")

	ctx := context.Background()
	delay := time.Duration(cfg.Sim.DelayMs) * time.Millisecond
	wins := make(map[string]int)

	for i := 0; i < *matches; i++ {
		// Each match gets its own seed so runs stay reproducible while
		// matches stay independent
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		winner, err := runMatch(ctx, rng, *render, delay)
		if err != nil {
			log.Fatal().Err(err).Int("match", i+1).Msg("Match failed")
		}
		wins[winner]++
	}

	fmt.Printf("\nResults over %d match(es):\n", *matches)
	for name, count := range wins {
		fmt.Printf("  %-12s %d\n", name, count)
	}
}

// runMatch plays a single match to its decision and returns the winner's
// name, or "nobody" when the turn limit struck first.
func runMatch(ctx context.Context, rng *rand.Rand, render bool, delay time.Duration) (string, error) {
	engine, err := game.NewEngine(ctx, game.GameConfig{
		Strategies: game.PlayerStrategies(),
		Rng:        rng,
		Logger:     log.Logger,
	})
	if err != nil {
		return "", fmt.Errorf("engine creation failed: %w", err)
	}

	// Match events land in the debug log
	engine.EventBus().Subscribe(subscribers.NewLoggerSubscriber("match-events", log.Logger, zerolog.DebugLevel))

	if render {
		fmt.Printf("Match %s, initial board:\n%s\n", engine.MatchID(), engine.Board())
	}

	for !engine.IsGameOver() {
		if err := engine.Step(ctx); err != nil {
			return "", fmt.Errorf("turn %d failed: %w", engine.Turn(), err)
		}
		if render {
			fmt.Printf("Turn %d:\n%s\n", engine.Turn(), engine.Board())
			if delay > 0 {
				time.Sleep(delay)
			}
		}
	}

	winner := engine.Winner()
	if winner == nil {
		log.Info().Int("turns", engine.Turn()).Msg("Match ended without a winner")
		return "nobody", nil
	}
	log.Info().Str("winner", winner.Name).Int("turns", engine.Turn()).Msg("Match decided")
	return winner.Name, nil
}

// flagPassed reports whether the named flag was set on the command line, so
// config defaults only apply when the user left the flag alone. An explicit
// -render=false must win over sim.render in the config file.
func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func setupLogging(level string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Check if we're in production
	if os.Getenv("APP_ENV") == "production" {
		// JSON output for production
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
