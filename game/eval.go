package game

import (
	"fmt"
	"strings"
)

// Heuristic scores a non-terminal position from the point of view of side. Higher is better for side.
type Heuristic func(State, Side) float64

// OffensiveCap is the reference count the offensive material heuristic subtracts remaining
// opponent pieces from.
const OffensiveCap = 30

// DefensiveMaterial values keeping own pieces: 2 * own pieces left.
func DefensiveMaterial(j Jitter) Heuristic {
	return func(gs State, side Side) float64 {
		return 2*float64(gs.PiecesLeft(side)) + j.Noise()
	}
}

// OffensiveMaterial values captures: 2 * (OffensiveCap - opponent pieces left).
func OffensiveMaterial(j Jitter) Heuristic {
	return func(gs State, side Side) float64 {
		return 2*float64(OffensiveCap-gs.PiecesLeft(side.Opponent())) + j.Noise()
	}
}

// DefensivePositional rewards own pieces on the two side columns and penalises opponent pieces
// that have crossed into the half of the board nearer side's home edge.
func DefensivePositional(j Jitter) Heuristic {
	return func(gs State, side Side) float64 {
		return 2*float64(gs.borderPieces(side)) - float64(gs.intruders(side)) + j.Noise()
	}
}

// OffensivePositional rewards advancing: 2 * rows between side's home edge and its most advanced piece.
func OffensivePositional(j Jitter) Heuristic {
	return func(gs State, side Side) float64 {
		return 2*float64(gs.farthest(side)) + j.Noise()
	}
}

func (gs State) borderPieces(side Side) int {
	n := 0
	for y := 0; y < Width; y++ {
		if gs.cells[y][0] == side {
			n++
		}
		if gs.cells[y][Width-1] == side {
			n++
		}
	}
	return n
}

func (gs State) intruders(side Side) int {
	start := 0
	if side == Second {
		start = Width / 2
	}
	opponent := side.Opponent()
	n := 0
	for y := start; y < start+Width/2; y++ {
		for x := 0; x < Width; x++ {
			if gs.cells[y][x] == opponent {
				n++
			}
		}
	}
	return n
}

// farthest is the distance of side's most advanced piece from its home row, -1 without pieces.
func (gs State) farthest(side Side) int {
	home := side.homeRow()
	step := 1
	if home != 0 {
		step = -1
	}
	for dist := Width - 1; dist >= 0; dist-- {
		y := home + step*dist
		for x := 0; x < Width; x++ {
			if gs.cells[y][x] == side {
				return dist
			}
		}
	}
	return -1
}

type heuristicEntry struct {
	names []string
	build func(Jitter) Heuristic
}

var heuristics = []heuristicEntry{
	{names: []string{"def1", "1", "defensive-material"}, build: DefensiveMaterial},
	{names: []string{"off1", "2", "offensive-material"}, build: OffensiveMaterial},
	{names: []string{"def2", "3", "defensive-positional"}, build: DefensivePositional},
	{names: []string{"off2", "4", "offensive-positional"}, build: OffensivePositional},
}

// HeuristicNames lists the primary name of every built-in heuristic.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for _, h := range heuristics {
		names = append(names, h.names[0])
	}
	return names
}

// LookupHeuristic builds the heuristic registered under name, bound to j.
func LookupHeuristic(name string, j Jitter) (Heuristic, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, h := range heuristics {
		for _, n := range h.names {
			if n == key {
				return h.build(j), nil
			}
		}
	}
	return nil, fmt.Errorf("unknown heuristic %q, want one of %s", name, strings.Join(HeuristicNames(), ", "))
}
