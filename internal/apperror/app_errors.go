package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell index is out of range")
)
