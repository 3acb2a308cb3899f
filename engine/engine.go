package engine

import (
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"context"
)

// Player chooses moves for one side.
type Player interface {
	NextMove(ctx context.Context, state game.State) (game.Move, error)
}

// searchLogger is implemented by players that record metrics for each move they search.
type searchLogger interface {
	LastMetric() (metrics.SearchMetric, bool)
}

// Turn is handed to observers after every move.
type Turn struct {
	Step   int
	Player game.Side
	Move   game.Move
	State  game.State // Position after the move
}

type Result struct {
	metrics.GameMetric
	Moves []metrics.MoveMetric
}
