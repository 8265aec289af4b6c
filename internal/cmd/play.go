package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
)

const spinnerCharSet = 14

// connectfour play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of connect four in the terminal",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play runs a connect four game in the terminal.

			Each seat is taken by "human" (columns are read from standard
			input), "minimax" (a fixed-depth alpha-beta search agent) or
			"random" (a uniformly random baseline). Red always moves
			first. The default matchup is a human playing red against a
			depth-7 search agent playing yellow.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			seatRed, _ := cmd.Flags().GetString("red")
			seatYellow, _ := cmd.Flags().GetString("yellow")
			depth, _ := cmd.Flags().GetInt("depth")
			seed, _ := cmd.Flags().GetUint64("seed")

			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()

			red, err := buildAgent(seatRed, game.Red, depth, seed, in, out)
			if err != nil {
				return err
			}
			yellow, err := buildAgent(seatYellow, game.Yellow, depth, seed+1, in, out)
			if err != nil {
				return err
			}

			eng := engine.NewLocal(red, yellow,
				engine.WithObserver(func(b *game.Board, placed game.Placement, piece game.Cell) {
					fmt.Fprintf(out, "\n%s plays column %d\n", piece, placed.Col)
					renderBoard(out, b)
				}))

			renderBoard(out, eng.Board())

			winner, gameMetric, _, err := eng.Run()
			if err != nil {
				return err
			}

			if winner == "" {
				fmt.Fprintln(out, "\nIt's a draw!")
			} else {
				fmt.Fprintf(out, "\n%s wins after %d moves!\n", winner, gameMetric.TotalMoves)
			}
			return nil
		},
	}

	cmd.Flags().String("red", "human", `Seat for red: "human", "minimax" or "random"`)
	cmd.Flags().String("yellow", "minimax", `Seat for yellow: "human", "minimax" or "random"`)
	cmd.Flags().Int("depth", searcher.MaxDepth, "Ply budget for search agents")
	cmd.Flags().Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random agents")

	return cmd
}

func buildAgent(kind string, piece game.Cell, depth int, seed uint64, in io.Reader, out io.Writer) (agent.Agent, error) {
	switch kind {
	case "human":
		return newHumanAgent(piece, in, out), nil
	case "minimax":
		search := agent.NewMinimaxAgent(piece, searcher.WithDepth(depth), searcher.WithMetrics())
		return thinkingAgent{search}, nil
	case "random":
		return agent.NewRandomAgent(piece, seed), nil
	default:
		return nil, fmt.Errorf("unknown seat %q (want human, minimax or random)", kind)
	}
}

// thinkingAgent wraps a search agent with a terminal spinner; deep
// searches can take a few seconds.
type thinkingAgent struct {
	agent.Agent
}

func (t thinkingAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" %s is thinking...", t.Piece())
	s.Start()
	defer s.Stop()

	return t.Agent.FindMove(board)
}
