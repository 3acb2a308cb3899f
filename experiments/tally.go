package experiments

import (
	"breakthrough/engine"
	"breakthrough/game"
	"fmt"
	"io"
	"time"
)

// PlayerStats sums the search effort of one side over a match-up.
type PlayerStats struct {
	Searches   int
	TotalNodes int
	TotalTime  time.Duration
}

func (p PlayerStats) AverageNodes() float64 {
	if p.Searches == 0 {
		return 0
	}
	return float64(p.TotalNodes) / float64(p.Searches)
}

func (p PlayerStats) AverageTime() time.Duration {
	if p.Searches == 0 {
		return 0
	}
	return p.TotalTime / time.Duration(p.Searches)
}

// Tally aggregates the results of a match-up. Wins and Players are indexed by game.Side.
type Tally struct {
	Games      int
	Wins       [2]int
	Draws      int
	TotalMoves int
	Players    [2]PlayerStats
}

func NewTally(results []engine.Result) Tally {
	var t Tally
	for _, result := range results {
		t.Games++
		t.TotalMoves += result.TotalMoves
		if result.Winner.Valid() {
			t.Wins[result.Winner]++
		} else {
			t.Draws++
		}
		for _, mm := range result.Moves {
			stats := &t.Players[mm.Player]
			stats.Searches++
			stats.TotalNodes += mm.Nodes
			stats.TotalTime += mm.Duration
		}
	}
	return t
}

// Write prints the tally in the plain report format of the command line tool.
func (t Tally) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "games = %d, totalMoves = %d\n", t.Games, t.TotalMoves)
	if err != nil {
		return err
	}
	for _, side := range []game.Side{game.First, game.Second} {
		stats := t.Players[side]
		_, err = fmt.Fprintf(w, "%s:\nwins = %d\ntotalNodes = %d\naverage Nodes = %f\ntotalTime = %v\naverage time = %v\n\n",
			side.Name(), t.Wins[side], stats.TotalNodes, stats.AverageNodes(), stats.TotalTime, stats.AverageTime())
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%d:%d (draws %d)\n", t.Wins[game.First], t.Wins[game.Second], t.Draws)
	return err
}
