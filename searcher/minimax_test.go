package searcher

import (
	"breakthrough/game"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, rows ...string) game.State {
	t.Helper()
	gs, err := game.ParseState(rows...)
	require.NoError(t, err)
	return gs
}

func mustMinimax(t *testing.T, side game.Side, h game.Heuristic, options ...Option) *Minimax {
	t.Helper()
	m, err := NewMinimax(side, h, options...)
	require.NoError(t, err)
	return m
}

// find returns the position of the first piece of side.
func find(gs game.State, side game.Side) game.Position {
	for y := 0; y < game.Width; y++ {
		for x := 0; x < game.Width; x++ {
			p := game.Position{X: x, Y: y}
			if gs.Cell(p) == side {
				return p
			}
		}
	}
	return game.Unset
}

/*
Two-ply tree: black at (0,2) steps to (0,3) or (1,3), white at (7,5) replies with (6,4) or (7,4).
Leaves are scored from the columns of the two pieces.
*/
func twoPlyState(t *testing.T) game.State {
	return mustParse(t,
		"........",
		"........",
		"B.......",
		"........",
		"........",
		".......W",
	)
}

func TestNewMinimax(t *testing.T) {
	h := game.DefensiveMaterial(game.NoJitter)

	t.Run("rejects the empty side", func(t *testing.T) {
		_, err := NewMinimax(game.None, h)
		require.ErrorIs(t, err, game.ErrInvalidSide)
	})

	t.Run("requires a heuristic", func(t *testing.T) {
		_, err := NewMinimax(game.First, nil)
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		m := mustMinimax(t, game.Second, h)
		require.Equal(t, game.Second, m.Side())
		require.Equal(t, 3, m.Depth())
		require.Empty(t, m.Metrics())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		m := mustMinimax(t, game.First, h, WithDepth(0), WithDepth(-2))
		require.Equal(t, 3, m.Depth())
	})
}

func TestMinimaxTwoPly(t *testing.T) {
	state := twoPlyState(t)

	t.Run("plain minimax", func(t *testing.T) {
		// min(0+6, 0+7) = 6 for (0,3); min(10+6, 10+7) = 16 for (1,3)
		h := func(gs game.State, _ game.Side) float64 {
			return 10*float64(find(gs, game.First).X) + float64(find(gs, game.Second).X)
		}
		m := mustMinimax(t, game.First, h, WithDepth(2))

		move, err := m.NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{X: 0, Y: 2}, To: game.Position{X: 1, Y: 3}}, move)
		metric, ok := m.LastMetric()
		require.True(t, ok)
		require.Equal(t, 16.0, metric.Score)
		require.Equal(t, 6, metric.Nodes, "Two root moves with two replies each")
	})

	t.Run("alpha-beta prunes without changing the result", func(t *testing.T) {
		// min(0+6, 0+7) = 6 for (0,3); (1,3) is refuted by its first reply at -10+6
		h := func(gs game.State, _ game.Side) float64 {
			return -10*float64(find(gs, game.First).X) + float64(find(gs, game.Second).X)
		}
		plain := mustMinimax(t, game.First, h, WithDepth(2))
		pruned := mustMinimax(t, game.First, h, WithDepth(2), WithAlphaBeta())

		plainMove, err := plain.NextMove(context.Background(), state)
		require.NoError(t, err)
		prunedMove, err := pruned.NextMove(context.Background(), state)
		require.NoError(t, err)

		require.Equal(t, game.Move{From: game.Position{X: 0, Y: 2}, To: game.Position{X: 0, Y: 3}}, plainMove)
		require.Equal(t, plainMove, prunedMove)

		plainMetric, _ := plain.LastMetric()
		prunedMetric, _ := pruned.LastMetric()
		require.Equal(t, 6.0, plainMetric.Score)
		require.Equal(t, plainMetric.Score, prunedMetric.Score)
		require.Equal(t, 6, plainMetric.Nodes)
		require.Equal(t, 5, prunedMetric.Nodes, "Second reply of the refuted move should be pruned")
	})

	t.Run("first move wins ties", func(t *testing.T) {
		h := func(game.State, game.Side) float64 { return 1 }
		m := mustMinimax(t, game.First, h, WithDepth(2))

		move, err := m.NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, state.PossibleMoves(game.First)[0], move)
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := game.DefensivePositional(game.NoJitter)
	state := game.NewState()
	side := game.First

	for ply := 0; ply < 16 && state.Winner() == game.None; ply++ {
		plain := mustMinimax(t, side, h, WithDepth(3))
		pruned := mustMinimax(t, side, h, WithDepth(3), WithAlphaBeta())

		plainMove, err := plain.NextMove(context.Background(), state)
		require.NoError(t, err)
		prunedMove, err := pruned.NextMove(context.Background(), state)
		require.NoError(t, err)

		plainMetric, _ := plain.LastMetric()
		prunedMetric, _ := pruned.LastMetric()
		require.Equal(t, plainMove, prunedMove, "ply %d", ply)
		require.Equal(t, plainMetric.Score, prunedMetric.Score, "ply %d", ply)
		require.LessOrEqual(t, prunedMetric.Nodes, plainMetric.Nodes, "ply %d", ply)

		// Wander off the principal line to cover varied positions
		moves := state.PossibleMoves(side)
		state = state.NextState(moves[rng.Intn(len(moves))])
		side = side.Opponent()
	}
}

func TestMinimaxTerminal(t *testing.T) {
	t.Run("no legal moves", func(t *testing.T) {
		state := mustParse(t,
			"........",
			"........",
			"........",
			"........",
			"....W...",
			"........",
			"........",
			"..B.....",
		)
		m := mustMinimax(t, game.First, game.DefensiveMaterial(game.NoJitter))

		move, err := m.NextMove(context.Background(), state)

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
		require.Equal(t, game.Unset, move.From)
		require.Empty(t, m.Metrics(), "Failed calls are not logged")
	})

	t.Run("prefers an immediate win over heuristic ties", func(t *testing.T) {
		state := mustParse(t,
			"........",
			"........",
			"B.......",
			"........",
			".......W",
			"........",
			"...B....",
		)
		h := func(game.State, game.Side) float64 { return 0 }
		m := mustMinimax(t, game.First, h, WithDepth(2))

		move, err := m.NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{X: 3, Y: 6}, To: game.Position{X: 2, Y: 7}}, move)
		metric, _ := m.LastMetric()
		require.Equal(t, WinScore+1, metric.Score)
	})

	t.Run("sees the opponent's winning reply", func(t *testing.T) {
		// Black must capture the runner on (1,1); stepping to (0,1) lets white reach row 0
		state := mustParse(t,
			"B.......",
			".W......",
			"........",
			"........",
			"........",
			"........",
			"......W.",
		)
		h := func(game.State, game.Side) float64 { return 0 }
		m := mustMinimax(t, game.First, h, WithDepth(3))

		move, err := m.NextMove(context.Background(), state)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{X: 0, Y: 0}, To: game.Position{X: 1, Y: 1}}, move)
	})
}

func TestMinimaxPerspective(t *testing.T) {
	state := game.NewState()
	var seen []game.Side
	h := func(_ game.State, side game.Side) float64 {
		seen = append(seen, side)
		return 0
	}

	m := mustMinimax(t, game.First, h, WithDepth(1))
	_, err := m.NextMove(context.Background(), state)
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for _, side := range seen {
		require.Equal(t, game.Second, side, "Horizon is scored for the side to move")
	}

	seen = nil
	m = mustMinimax(t, game.First, h, WithDepth(1), WithOwnPerspective())
	_, err = m.NextMove(context.Background(), state)
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for _, side := range seen {
		require.Equal(t, game.First, side, "Horizon is scored for the searcher")
	}
}

func TestMinimaxDeadline(t *testing.T) {
	state := game.NewState()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := mustMinimax(t, game.First, game.DefensiveMaterial(game.NoJitter), WithDepth(4))

	move, err := m.NextMove(ctx, state)

	require.NoError(t, err, "An expired budget still yields a move")
	require.Equal(t, state.PossibleMoves(game.First)[0], move)
	metric, ok := m.LastMetric()
	require.True(t, ok)
	require.True(t, metric.TimedOut)
}

func TestMinimaxMetrics(t *testing.T) {
	state := game.NewState()
	m := mustMinimax(t, game.First, game.OffensiveMaterial(game.NewSeededJitter(1)), WithDepth(2))

	_, err := m.NextMove(context.Background(), state)
	require.NoError(t, err)
	_, err = m.NextMove(context.Background(), state)
	require.NoError(t, err)

	logged := m.Metrics()
	require.Len(t, logged, 2)
	require.Len(t, m.Durations(), 2)
	nodes := m.ExpandedNodes()
	require.Equal(t, []int{logged[0].Nodes, logged[1].Nodes}, nodes)
	// 22 black moves, each answered by 22 white moves
	require.Equal(t, 22+22*22, nodes[0])
	require.Equal(t, nodes[0], nodes[1], "Counters restart on every call")
	require.Equal(t, 2, logged[0].Depth)
	require.False(t, logged[0].AlphaBeta)

	logged[0].Nodes = -1
	require.NotEqual(t, -1, m.Metrics()[0].Nodes, "Metrics returns a copy")
}
