// path: internal/game/errors.go
package game

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrEmptyMove   = errors.New("move has no destinations")
)
