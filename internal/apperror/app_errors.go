package apperror

import "errors"

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell")
	ErrInvalidSearch   = errors.New("search requested on a finished board")
	ErrSessionNotFound = errors.New("session not found")
)
