package game

import (
	"fmt"
	"strings"

	"dicewars/internal/game/core"
)

// This file contains all board rendering functionality for the game engine.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

// Board returns a string representation of the board. Each playable cell
// shows its owner's letter and current dice count.
func (e *Engine) Board() string {
	board := e.ms.Board
	rows := board.Rows()
	columns := board.Columns()

	// Each cell takes roughly 2 display chars plus ANSI codes,
	// plus headers and legend
	estimatedSize := (columns*22+10)*(rows+3) + 100

	var sb strings.Builder
	sb.Grow(estimatedSize)

	// Header row
	sb.WriteString("    ")
	for c := 0; c < columns; c++ {
		fmt.Fprintf(&sb, "%2d ", c)
	}
	sb.WriteString("\n")

	// Board rows
	for r := 0; r < rows; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < columns; c++ {
			t, err := board.GetTerritory(r, c)
			if err != nil {
				continue
			}
			writeTerritoryCell(&sb, t)
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n·=unplayable A-H=players digits=dice\n")

	return sb.String()
}

// writeTerritoryCell writes one cell directly to the strings.Builder to
// avoid allocations
func writeTerritoryCell(sb *strings.Builder, t *core.Territory) {
	const (
		VictimSymbol  = "·"
		PlayerSymbols = "ABCDEFGH"
	)

	switch {
	case !t.Playable():
		sb.WriteString(ColorGray)
		sb.WriteString(" ")
		sb.WriteString(VictimSymbol)

	case t.Owner() == nil:
		// Playable but unowned, only seen before partitioning
		sb.WriteString(ColorWhite)
		sb.WriteString(" ?")

	default:
		owner := t.Owner()
		sb.WriteString(getPlayerColor(owner.ID))
		sb.WriteByte(PlayerSymbols[owner.ID%len(PlayerSymbols)])
		if t.Dice() > 9 {
			sb.WriteString("+")
		} else {
			fmt.Fprintf(sb, "%d", t.Dice())
		}
	}

	sb.WriteString(ColorReset)
	sb.WriteString(" ")
}

// getPlayerColor returns the color for the given player ID
func getPlayerColor(playerID int) string {
	if playerID < 0 || playerID >= len(playerColors) {
		return ColorWhite
	}
	return playerColors[playerID]
}
