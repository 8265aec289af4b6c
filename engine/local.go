package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"connectfour/agent"
	"connectfour/experiments/metrics"
	"connectfour/game"
)

// Observer is notified after every placement on the authoritative board.
type Observer func(board *game.Board, placed game.Placement, piece game.Cell)

type LocalOption func(e *Local)

// WithBoard starts the game from a position instead of an empty board.
func WithBoard(board *game.Board) LocalOption {
	return func(e *Local) {
		if board != nil {
			e.board = board
		}
	}
}

func WithObserver(observer Observer) LocalOption {
	return func(e *Local) {
		e.observer = observer
	}
}

// Local runs a game between two agents in process. It owns the
// authoritative board; agents only ever see it through FindMove and must
// leave it untouched.
type Local struct {
	board    *game.Board
	agents   [2]agent.Agent
	observer Observer
}

func NewLocal(first, second agent.Agent, options ...LocalOption) *Local {
	if first.Piece() == second.Piece() {
		panic("both agents play the same piece")
	}

	e := &Local{
		board:  game.NewBoard(),
		agents: [2]agent.Agent{first, second},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board exposes the authoritative board, e.g. for rendering before the
// first move.
func (e *Local) Board() *game.Board {
	return e.board
}

// Run alternates turns until a win or a draw. After each placement the
// win check runs before the draw check; the last piece can do both.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.agents[0].Piece().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	current := 0
	for step := 1; step <= MaxMoves; step++ {
		mover := e.agents[current]

		col, searchMetric, err := mover.FindMove(e.board)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s agent: %w", mover.Piece(), err)
		}

		placed, err := e.board.Drop(col, mover.Piece())
		if err != nil {
			// Agents must pick from LegalMoves; don't paper over a bad one.
			return "", gameMetric, moveMetrics, fmt.Errorf("%s agent chose column %d: %w", mover.Piece(), col, err)
		}

		log.Debug().Msgf("step %d: %s played column %d (row %d)", step, mover.Piece(), placed.Col, placed.Row)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.Piece().String(),
			Column:       col,
			SearchMetric: searchMetric,
		})

		if e.observer != nil {
			e.observer(e.board, placed, mover.Piece())
		}

		if e.board.IsWin(placed.Row, placed.Col, mover.Piece()) {
			gameMetric.Winner = mover.Piece().String()
			break
		}
		if e.board.IsDraw() {
			break
		}

		current = 1 - current
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner != "" {
		log.Info().Msgf("game over: %s wins after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game over: draw after %d moves", gameMetric.TotalMoves)
	}

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
