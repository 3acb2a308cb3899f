package game

import (
	"fmt"
	"strings"
)

// State is a full board position. It is a plain value: assigning or passing a State copies the
// board, and NextState always returns a new value without touching the receiver.
type State struct {
	cells      [Width][Width]Side // indexed [y][x]
	piecesLeft [2]int             // indexed by Side
}

// NewState returns the starting position: each side fills the two rows nearest its home edge.
func NewState() State {
	var gs State
	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			gs.cells[y][x] = None
		}
	}
	for i := 0; i < 2; i++ {
		gs.piecesLeft[i] = Width * 2
		for x := 0; x < Width; x++ {
			gs.cells[i][x] = First
			gs.cells[Width-i-1][x] = Second
		}
	}
	return gs
}

// ParseState builds a position from rows of 'B', 'W' and '.', row 0 first. Missing rows are empty.
func ParseState(rows ...string) (State, error) {
	var gs State
	if len(rows) > Width {
		return gs, fmt.Errorf("got %d rows, board has %d", len(rows), Width)
	}
	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			gs.cells[y][x] = None
		}
	}
	for y, row := range rows {
		if len(row) != Width {
			return gs, fmt.Errorf("row %d has %d cells, want %d", y, len(row), Width)
		}
		for x, c := range row {
			switch c {
			case 'B', 'b':
				gs.cells[y][x] = First
				gs.piecesLeft[First]++
			case 'W', 'w':
				gs.cells[y][x] = Second
				gs.piecesLeft[Second]++
			case '.', ' ':
			default:
				return gs, fmt.Errorf("row %d: unexpected cell %q", y, c)
			}
		}
	}
	return gs, nil
}

// Cell returns the occupant of p, or None when p is off the board.
func (gs State) Cell(p Position) Side {
	if !p.InBounds() {
		return None
	}
	return gs.cells[p.Y][p.X]
}

// PiecesLeft returns the number of live pieces of side.
func (gs State) PiecesLeft(side Side) int {
	if !side.Valid() {
		return 0
	}
	return gs.piecesLeft[side]
}

// Count tallies the cells held by side by scanning the board.
func (gs State) Count(side Side) int {
	n := 0
	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			if gs.cells[y][x] == side {
				n++
			}
		}
	}
	return n
}

// Opponent returns the side playing against side.
func (gs State) Opponent(side Side) (Side, error) {
	if !side.Valid() {
		return None, ErrInvalidSide
	}
	return side.Opponent(), nil
}

// CheckMove reports why m cannot be played, or nil if it can. Only the placement rules are
// checked: the destination must be on the board and differ in occupant from the source, and a
// capture may not be sideways.
func (gs State) CheckMove(m Move) error {
	if !m.From.InBounds() || !m.To.InBounds() {
		return ErrOutOfBounds
	}
	if gs.cells[m.From.Y][m.From.X] == None {
		return ErrInvalidMove
	}
	if !gs.legal(m.From, m.To) {
		return ErrIllegalMove
	}
	return nil
}

func (gs State) IsLegalMove(m Move) bool {
	return gs.CheckMove(m) == nil
}

// legal assumes from is on the board and occupied.
func (gs State) legal(from, to Position) bool {
	if !to.InBounds() {
		return false
	}
	target := gs.cells[to.Y][to.X]
	if gs.cells[from.Y][from.X] == target {
		return false
	}
	// No sideways captures
	return target == None || from.Y != to.Y
}

// PossibleMoves lists the legal moves of side, sources in row-major order (y outer, x inner) and
// the three advancing directions left to right for each source. Search tie-breaking depends on
// this order.
func (gs State) PossibleMoves(side Side) []Move {
	if !side.Valid() {
		return nil
	}
	moves := make([]Move, 0, gs.piecesLeft[side]*3)
	for y := 0; y < Width; y++ {
		for x := 0; x < Width; x++ {
			if gs.cells[y][x] != side {
				continue
			}
			from := Position{X: x, Y: y}
			for _, d := range directions[side] {
				to := from.Add(d)
				if gs.legal(from, to) {
					moves = append(moves, Move{From: from, To: to})
				}
			}
		}
	}
	return moves
}

// NextState returns the position after m. m must be legal for this position; it is not
// validated here (use Play for untrusted moves).
func (gs State) NextState(m Move) State {
	next := gs
	captured := next.cells[m.To.Y][m.To.X]
	if captured.Valid() {
		next.piecesLeft[captured]--
	}
	next.cells[m.To.Y][m.To.X] = next.cells[m.From.Y][m.From.X]
	next.cells[m.From.Y][m.From.X] = None
	return next
}

// Play validates m and returns the resulting position. Unlike NextState it also requires m to be
// one of the mover's advancing steps.
func (gs State) Play(m Move) (State, error) {
	if err := gs.CheckMove(m); err != nil {
		return gs, fmt.Errorf("%v: %w", m, err)
	}
	mover := gs.cells[m.From.Y][m.From.X]
	for _, d := range directions[mover] {
		if m.From.Add(d) == m.To {
			return gs.NextState(m), nil
		}
	}
	return gs, fmt.Errorf("%v: not an advancing step for %s: %w", m, mover.Name(), ErrIllegalMove)
}

// Winner returns the side that has won, or None while the game continues. Elimination is checked
// for both sides before either side reaching its goal row.
func (gs State) Winner() Side {
	for _, side := range [...]Side{First, Second} {
		if gs.piecesLeft[side.Opponent()] == 0 {
			return side
		}
	}
	for x := 0; x < Width; x++ {
		if gs.cells[First.goalRow()][x] == First {
			return First
		}
		if gs.cells[Second.goalRow()][x] == Second {
			return Second
		}
	}
	return None
}

// String renders the board for display: a header of column indices, then one line per row
// prefixed by its index.
func (gs State) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for x := 0; x < Width; x++ {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteByte('\n')
	for y := 0; y < Width; y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < Width; x++ {
			sb.WriteString(gs.cells[y][x].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", 2*Width+3))
	return sb.String()
}
