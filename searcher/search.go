package searcher

import (
	"breakthrough/game"
	"context"
	"math"
)

// WinScore is the magnitude of a decided position's score. Remaining depth is added on top so
// that quicker wins and slower losses are preferred.
const WinScore = 1e6

// search returns the minimax value of state with depth plies left and toMove to play, from the
// searcher's point of view. The flag is false when the context expired; the value is then partial and
// must be discarded by the caller.
func (m *Minimax) search(ctx context.Context, state game.State, depth int, toMove game.Side, alpha, beta float64) (float64, bool) {
	if ctx.Err() != nil {
		return 0, false
	}
	if depth == 0 {
		return m.evaluate(state, toMove), true
	}
	if winner := state.Winner(); winner != game.None {
		return m.terminal(winner, depth), true
	}
	moves := state.PossibleMoves(toMove)
	if len(moves) == 0 { // Side to move is stuck and loses
		return m.terminal(toMove.Opponent(), depth), true
	}

	maximizing := toMove == m.side
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	next := toMove.Opponent()

	for _, move := range moves {
		m.metrics.AddNode()
		score, ok := m.search(ctx, state.NextState(move), depth-1, next, alpha, beta)
		if !ok {
			return best, false
		}

		if maximizing {
			if score > best {
				best = score
			}
			if m.alphaBeta {
				if best > beta {
					break
				}
				if best > alpha {
					alpha = best
				}
			}
		} else {
			if score < best {
				best = score
			}
			if m.alphaBeta {
				if best < alpha {
					break
				}
				if best < beta {
					beta = best
				}
			}
		}
	}
	return best, true
}

func (m *Minimax) evaluate(state game.State, toMove game.Side) float64 {
	if m.ownPerspective {
		return m.heuristic(state, m.side)
	}
	return m.heuristic(state, toMove)
}

func (m *Minimax) terminal(winner game.Side, depth int) float64 {
	score := WinScore + float64(depth)
	if winner != m.side {
		return -score
	}
	return score
}
