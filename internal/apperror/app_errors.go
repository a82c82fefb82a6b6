package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidPosition = errors.New("invalid cell index")
	ErrInvalidMarks    = errors.New("player marks must be non-empty and distinct")
	ErrGameNotFound    = errors.New("game not found")
)
