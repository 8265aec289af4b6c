package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

// MinimaxAgent plays the move chosen by a depth-limited alpha-beta search.
type MinimaxAgent struct {
	piece  game.Cell
	search *searcher.Minimax
}

func NewMinimaxAgent(piece game.Cell, options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{
		piece:  piece,
		search: searcher.NewMinimax(options...),
	}
}

func (a *MinimaxAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	return a.search.FindBestMove(board, a.piece)
}

func (a *MinimaxAgent) Piece() game.Cell {
	return a.piece
}
