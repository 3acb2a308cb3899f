package searcher

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(m *Minimax)

// Minimax picks moves for one side by a fixed-depth minimax search, optionally with alpha-beta
// pruning. It keeps a log of every search it ran. A Minimax is not safe for concurrent use.
type Minimax struct {
	side           game.Side
	depth          int
	alphaBeta      bool
	ownPerspective bool
	duration       time.Duration
	heuristic      game.Heuristic
	logger         zerolog.Logger
	metrics        metrics.Collector
	log            []metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithAlphaBeta() Option {
	return func(m *Minimax) {
		m.alphaBeta = true
	}
}

// WithDuration bounds the wall time of each NextMove call. When it runs out the best move among
// the fully searched root moves is returned.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithOwnPerspective scores horizon positions from the searcher's side rather than the side to move.
func WithOwnPerspective() Option {
	return func(m *Minimax) {
		m.ownPerspective = true
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *Minimax) {
		m.logger = logger
	}
}

func NewMinimax(side game.Side, heuristic game.Heuristic, options ...Option) (*Minimax, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("searcher for side %s: %w", side.Name(), game.ErrInvalidSide)
	}
	if heuristic == nil {
		return nil, errors.New("searcher needs a heuristic")
	}
	m := &Minimax{ // Default values
		side:      side,
		depth:     meta.DEFAULT_DEPTH,
		heuristic: heuristic,
		logger:    log.Logger,
		metrics:   metrics.NewCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// NextMove searches state and returns the best move for the searcher's side. Ties go to the move
// generated first. It fails with game.ErrNoLegalMoves when the side cannot move.
func (m *Minimax) NextMove(ctx context.Context, state game.State) (game.Move, error) {
	moves := state.PossibleMoves(m.side)
	if len(moves) == 0 {
		return game.Move{From: game.Unset, To: game.Unset}, game.ErrNoLegalMoves
	}
	if m.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	m.metrics.Start(m.depth, m.alphaBeta)
	alpha, beta := math.Inf(-1), math.Inf(1)
	best, bestScore := 0, math.Inf(-1)
	opponent := m.side.Opponent()
	for i, move := range moves {
		m.metrics.AddNode()
		score, ok := m.search(ctx, state.NextState(move), m.depth-1, opponent, alpha, beta)
		if !ok {
			m.metrics.SetTimedOut()
			break
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
		if m.alphaBeta && bestScore > alpha {
			alpha = bestScore
		}
	}
	metric := m.metrics.Complete(bestScore)
	m.log = append(m.log, metric)

	m.logger.Debug().
		Str("side", m.side.Name()).
		Stringer("move", moves[best]).
		Float64("score", bestScore).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Bool("timed_out", metric.TimedOut).
		Msg("search completed")

	return moves[best], nil
}

func (m *Minimax) Side() game.Side {
	return m.side
}

func (m *Minimax) Depth() int {
	return m.depth
}

// LastMetric returns the metrics of the most recent search.
func (m *Minimax) LastMetric() (metrics.SearchMetric, bool) {
	if len(m.log) == 0 {
		return metrics.SearchMetric{}, false
	}
	return m.log[len(m.log)-1], true
}

// Metrics returns the log of all completed searches, oldest first.
func (m *Minimax) Metrics() []metrics.SearchMetric {
	return slices.Clone(m.log)
}

// ExpandedNodes returns the node count of every search, oldest first.
func (m *Minimax) ExpandedNodes() []int {
	nodes := make([]int, len(m.log))
	for i, metric := range m.log {
		nodes[i] = metric.Nodes
	}
	return nodes
}

// Durations returns the wall time of every search, oldest first.
func (m *Minimax) Durations() []time.Duration {
	durations := make([]time.Duration, len(m.log))
	for i, metric := range m.log {
		durations[i] = metric.Duration
	}
	return durations
}
