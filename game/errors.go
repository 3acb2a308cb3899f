package game

import "errors"

var (
	// ErrOutOfBounds is returned when a move leaves the board.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrIllegalMove is returned when a move breaks a movement or capture rule.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidMove is returned when the source cell holds no piece to move.
	ErrInvalidMove = errors.New("invalid move: no piece at source")
	// ErrNoLegalMoves is returned when the acting side cannot move.
	ErrNoLegalMoves = errors.New("no legal moves available")
	// ErrInvalidSide is returned when a concrete side is required but None was given.
	ErrInvalidSide = errors.New("invalid side")
)
