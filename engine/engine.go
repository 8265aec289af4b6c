package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// MaxMoves bounds a game: the board holds one piece per cell.
const MaxMoves = game.Rows * game.Cols

type Engine interface {
	// Run plays a game to completion and returns the winning player's
	// name, or an empty string for a draw.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
