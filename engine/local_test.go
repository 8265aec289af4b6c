package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/agent"
	"connectfour/game"
	"connectfour/searcher"
)

func TestNewLocal(t *testing.T) {
	t.Run("rejects two agents on the same side", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocal(agent.NewRandomAgent(game.Red, 1), agent.NewRandomAgent(game.Red, 2))
		})
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("search agent does not lose to a random agent", func(t *testing.T) {
		red := agent.NewMinimaxAgent(game.Red, searcher.WithDepth(4))
		yellow := agent.NewRandomAgent(game.Yellow, 7)

		winner, gameMetric, moveMetrics, err := NewLocal(red, yellow).Run()

		require.NoError(t, err)
		require.NotEqual(t, "Yellow", winner, "A depth-4 search should never lose to random play")
		require.Equal(t, "Red", gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
	})

	t.Run("game between two search agents finishes consistently", func(t *testing.T) {
		run := func() (string, int) {
			red := agent.NewMinimaxAgent(game.Red, searcher.WithDepth(3))
			yellow := agent.NewMinimaxAgent(game.Yellow, searcher.WithDepth(3))
			winner, gameMetric, _, err := NewLocal(red, yellow).Run()
			require.NoError(t, err)
			return winner, gameMetric.TotalMoves
		}

		winner1, moves1 := run()
		winner2, moves2 := run()

		require.Equal(t, winner1, winner2, "Deterministic agents should replay the same game")
		require.Equal(t, moves1, moves2)
	})

	t.Run("board stays gravity-consistent and the observer sees every move", func(t *testing.T) {
		red := agent.NewRandomAgent(game.Red, 3)
		yellow := agent.NewRandomAgent(game.Yellow, 4)

		observed := 0
		eng := NewLocal(red, yellow, WithObserver(func(b *game.Board, placed game.Placement, piece game.Cell) {
			observed++
			require.Equal(t, piece, b.Cell(placed.Row, placed.Col))
		}))

		_, gameMetric, _, err := eng.Run()

		require.NoError(t, err)
		require.Equal(t, gameMetric.TotalMoves, observed)

		board := eng.Board()
		for r := 0; r < game.Rows-1; r++ {
			for c := 0; c < game.Cols; c++ {
				if board.Cell(r, c) != game.Empty {
					require.NotEqual(t, game.Empty, board.Cell(r+1, c),
						"No piece should float at (%d,%d)", r, c)
				}
			}
		}
	})

	t.Run("starts from an injected position", func(t *testing.T) {
		// Red completes a vertical four on its first turn
		b := game.NewBoard()
		for i := 0; i < 3; i++ {
			_, err := b.Drop(0, game.Red)
			require.NoError(t, err)
			_, err = b.Drop(1, game.Yellow)
			require.NoError(t, err)
		}

		red := agent.NewMinimaxAgent(game.Red, searcher.WithDepth(2))
		yellow := agent.NewMinimaxAgent(game.Yellow, searcher.WithDepth(2))

		winner, gameMetric, _, err := NewLocal(red, yellow, WithBoard(b)).Run()

		require.NoError(t, err)
		require.Equal(t, "Red", winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})
}
