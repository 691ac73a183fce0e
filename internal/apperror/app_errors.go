package apperror

import "errors"

var (
	ErrIllegalMove    = errors.New("cell is already occupied")
	ErrOutOfBoard     = errors.New("position is outside the board")
	ErrGameFinished   = errors.New("game is already finished")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownCommand = errors.New("unknown command")
)
