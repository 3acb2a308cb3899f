package engine

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *Engine)

// Engine plays a game between two players on a local board.
type Engine struct {
	State        game.State
	Players      [2]Player // Indexed by game.Side
	startingSide game.Side
	maxTurns     int
	observers    []func(Turn)
}

func WithStartingSide(side game.Side) Option {
	return func(e *Engine) {
		if side.Valid() {
			e.startingSide = side
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithState starts the game from state instead of the canonical layout.
func WithState(state game.State) Option {
	return func(e *Engine) {
		e.State = state
	}
}

func WithObserver(observer func(Turn)) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// LocalEngine sets up a game with first playing game.First and second playing game.Second.
func LocalEngine(first, second Player, options ...Option) *Engine {
	if first == nil || second == nil {
		panic("need two players")
	}
	e := &Engine{
		State:        game.NewState(),
		Players:      [2]Player{first, second},
		startingSide: game.First,
		maxTurns:     meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays until a side wins or the turn limit is reached, in which case the winner is
// game.None. A side that cannot move loses. Every move is checked against the legal moves of
// the current position; a player returning anything else aborts the game with game.ErrIllegalMove.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	side := e.startingSide
	result := Result{
		GameMetric: metrics.GameMetric{
			StartingPlayer: side,
			StartTime:      time.Now(),
			Winner:         game.None,
		},
	}

	log.Info().Msgf("%s is starting", side.Name())

	winner := e.State.Winner()
	for winner == game.None && result.TotalMoves < e.maxTurns {
		if err := ctx.Err(); err != nil {
			return e.finish(result), err
		}

		player := e.Players[side]
		move, err := player.NextMove(ctx, e.State)
		if errors.Is(err, game.ErrNoLegalMoves) {
			log.Info().Msgf("%s has no legal moves and loses", side.Name())
			winner = side.Opponent()
			break
		}
		if err != nil {
			return e.finish(result), fmt.Errorf("%s failed to find a move: %w", side.Name(), err)
		}
		if !slices.Contains(e.State.PossibleMoves(side), move) {
			return e.finish(result), fmt.Errorf("%s played %v: %w", side.Name(), move, game.ErrIllegalMove)
		}

		e.State = e.State.NextState(move)
		result.TotalMoves++

		moveMetric := metrics.MoveMetric{
			Step:   result.TotalMoves,
			Player: side,
			Move:   move,
		}
		if sl, ok := player.(searchLogger); ok {
			if metric, ok := sl.LastMetric(); ok {
				moveMetric.SearchMetric = metric
			}
		}
		result.Moves = append(result.Moves, moveMetric)

		log.Debug().Msgf("%s: %v", side.Name(), move)
		for _, observe := range e.observers {
			observe(Turn{Step: result.TotalMoves, Player: side, Move: move, State: e.State})
		}

		winner = e.State.Winner()
		side = side.Opponent()
	}

	result.Winner = winner
	if winner == game.None {
		log.Info().Msgf("stopped after %d moves without a winner", result.TotalMoves)
	} else {
		log.Info().Msgf("game over after %d moves, winner: %s", result.TotalMoves, winner.Name())
	}
	return e.finish(result), nil
}

func (e *Engine) finish(result Result) Result {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	return result
}
