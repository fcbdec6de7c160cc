package game

import (
	"fmt"

	"dicewars/internal/config"
)

// Board generation functions
func BoardRows() int {
	return config.Get().Game.Board.Rows
}

func BoardColumns() int {
	return config.Get().Game.Board.Columns
}

func BoardVictims() int {
	return config.Get().Game.Board.Victims
}

func BoardMaxDice() int {
	return config.Get().Game.Board.MaxDice
}

// Match flow functions
func MaxTurns() int {
	return config.Get().Match.MaxTurns
}

// PlayerNames returns the configured roster, padded with generated names
// up to the configured player count.
func PlayerNames() []string {
	players := config.Get().Game.Players
	names := make([]string, players.Count)
	for i := range names {
		if i < len(players.Names) && players.Names[i] != "" {
			names[i] = players.Names[i]
		} else {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}
	return names
}

// PlayerStrategies returns the configured strategy per seat, padded with
// the random strategy up to the configured player count.
func PlayerStrategies() []string {
	players := config.Get().Game.Players
	strategies := make([]string, players.Count)
	for i := range strategies {
		if i < len(players.Strategies) && players.Strategies[i] != "" {
			strategies[i] = players.Strategies[i]
		} else {
			strategies[i] = "random"
		}
	}
	return strategies
}
