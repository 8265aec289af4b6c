package searcher

import (
	"errors"
	"math"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

// ErrNoLegalMoves reports a search on a full board. Callers must check
// for game over before asking for a move.
var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(m *Minimax)

// Minimax picks moves by depth-limited minimax with alpha-beta pruning.
// A single instance is safe to reuse across games: all search state is
// threaded through the call chain as parameters.
type Minimax struct {
	maxDepth int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDepth: MaxDepth,
		evaluate: game.EvaluateCenter,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the column that maximizes player's minimax value,
// plus search metrics (if collected). The search runs on its own copy of
// board; the caller's board is never mutated.
func (m *Minimax) FindBestMove(board *game.Board, player game.Cell) (int, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return -1, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	m.metrics.Start(m.maxDepth)

	working := board.Copy()

	bestCol := -1
	bestScore := math.MinInt
	alpha := math.MinInt
	beta := math.MaxInt

	// Columns are tried in ascending order and only a strict improvement
	// replaces the best pair, so the lowest column wins ties. Alpha keeps
	// tightening across root moves; beta stays unbounded at the root.
	for _, col := range moves {
		placed := mustDrop(working, col, player)
		score := m.value(working, player, 0, false, placed, alpha, beta)
		working.Remove(placed)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestCol, m.metrics.Complete(), nil
}

// value scores the position reached by lastPlaced, from player's
// perspective. depth counts plies already simulated below the root;
// maximizing is true when player is next to move.
func (m *Minimax) value(b *game.Board, player game.Cell, depth int, maximizing bool, lastPlaced game.Placement, alpha, beta int) int {
	m.metrics.AddNode()

	// Whoever is not next to move made lastPlaced.
	mover := player
	if maximizing {
		mover = player.Opponent()
	}

	// Win, then depth cutoff, then draw. A move that fills the board can
	// simultaneously win it, so the win check goes first.
	if b.IsWin(lastPlaced.Row, lastPlaced.Col, mover) {
		if mover == player {
			return WinScore + (m.maxDepth - depth)
		}
		return -WinScore - (m.maxDepth - depth)
	}
	if depth == m.maxDepth {
		m.metrics.AddLeafEval()
		return m.evaluate(b, player)
	}
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return DrawScore
	}

	if maximizing {
		best := math.MinInt
		for _, col := range moves {
			placed := mustDrop(b, col, player)
			score := m.value(b, player, depth+1, false, placed, alpha, beta)
			b.Remove(placed)

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta { // Prune remaining siblings
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, col := range moves {
		placed := mustDrop(b, col, player.Opponent())
		score := m.value(b, player, depth+1, true, placed, alpha, beta)
		b.Remove(placed)

		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta { // Prune remaining siblings
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// mustDrop drops into a column already known to be legal.
func mustDrop(b *game.Board, col int, piece game.Cell) game.Placement {
	placed, err := b.Drop(col, piece)
	if err != nil {
		panic(err)
	}
	return placed
}
