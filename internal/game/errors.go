package game

import "errors"

var (
	ErrMatchOver = errors.New("match is already over")
)
