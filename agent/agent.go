package agent

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Agent provides moves for one side of a game.
type Agent interface {
	// FindMove returns a column for the given position plus search metrics
	// (if collected). Implementations must not mutate board.
	FindMove(board *game.Board) (int, metrics.SearchMetric, error)
	// Piece is the side this agent plays.
	Piece() game.Cell
}
