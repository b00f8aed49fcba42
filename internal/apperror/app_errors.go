package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrInputClosed      = errors.New("input closed")
)
