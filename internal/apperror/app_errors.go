package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrMoveNotAvailable    = errors.New("move is not available")
	ErrInvalidUserResponse = errors.New("invalid response")
	ErrInvalidBoardSize    = errors.New("invalid board size")
	ErrInvalidRunLength    = errors.New("invalid run length")
	ErrInvalidPlayMode     = errors.New("invalid play mode")
	ErrInvalidMoveName     = errors.New("invalid move name")
)
