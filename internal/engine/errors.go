package engine

import "errors"

var (
	ErrNoPlayer        = errors.New("no player created")
	ErrFleetDoesNotFit = errors.New("fleet does not fit the board")
	ErrBadRecord       = errors.New("malformed ship record")
)
