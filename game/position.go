package game

import "fmt"

// Width is the side length of the square board.
const Width = 8

// Position is a cell coordinate on the board. Unset marks a position that was never assigned.
type Position struct {
	X int
	Y int
}

var Unset = Position{X: -1, Y: -1}

// Add offsets p by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Width
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
