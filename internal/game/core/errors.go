package core

import "errors"

var (
	ErrOutOfBounds          = errors.New("coordinates out of bounds")
	ErrInvalidTerritory     = errors.New("invalid territory id")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrNoPlayers            = errors.New("no players supplied")
)
