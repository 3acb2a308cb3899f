package game

import (
	"fmt"
	"strings"
)

// Side identifies who occupies a cell. First plays from rows 0-1 towards the last row, Second from the
// last two rows towards row 0.
type Side uint8

const (
	First  Side = iota // black
	Second             // white
	None               // unoccupied
)

// Opponent returns the other concrete side. None has no opponent and maps to None.
func (s Side) Opponent() Side {
	if !s.Valid() {
		return None
	}
	return s ^ 1
}

func (s Side) Valid() bool {
	return s == First || s == Second
}

func (s Side) String() string {
	switch s {
	case First:
		return "B"
	case Second:
		return "W"
	default:
		return " "
	}
}

// Name is the long form used in logs and reports.
func (s Side) Name() string {
	switch s {
	case First:
		return "black"
	case Second:
		return "white"
	default:
		return "none"
	}
}

// homeRow is the edge row a side starts on; goalRow is the row it must reach.
func (s Side) homeRow() int {
	if s == First {
		return 0
	}
	return Width - 1
}

func (s Side) goalRow() int {
	return s.Opponent().homeRow()
}

// ParseSide accepts black/white, first/second or their initials.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "b", "black", "first", "0":
		return First, nil
	case "w", "white", "second", "1":
		return Second, nil
	default:
		return None, fmt.Errorf("unknown side %q: %w", value, ErrInvalidSide)
	}
}
