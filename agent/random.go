package agent

import (
	"golang.org/x/exp/rand"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

// RandomAgent plays a uniformly random legal column. Baseline opponent.
type RandomAgent struct {
	piece game.Cell
	rng   *rand.Rand
}

func NewRandomAgent(piece game.Cell, seed uint64) *RandomAgent {
	return &RandomAgent{
		piece: piece,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return -1, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

func (a *RandomAgent) Piece() game.Cell {
	return a.piece
}
