package player

import (
	"breakthrough/game"
	"context"

	"golang.org/x/exp/rand"
)

// RandomName selects a Random player wherever a heuristic name is expected.
const RandomName = "random"

// Random plays a uniformly chosen legal move. It is the baseline opponent for searchers.
type Random struct {
	side game.Side
	rng  *rand.Rand
}

func NewRandom(side game.Side, seed uint64) (*Random, error) {
	if !side.Valid() {
		return nil, game.ErrInvalidSide
	}
	return &Random{side: side, rng: rand.New(rand.NewSource(seed))}, nil
}

func (p *Random) Side() game.Side {
	return p.side
}

// NextMove picks one of the legal moves of p's side in state.
func (p *Random) NextMove(ctx context.Context, state game.State) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{From: game.Unset, To: game.Unset}, err
	}
	moves := state.PossibleMoves(p.side)
	if len(moves) == 0 {
		return game.Move{From: game.Unset, To: game.Unset}, game.ErrNoLegalMoves
	}
	return moves[p.rng.Intn(len(moves))], nil
}
