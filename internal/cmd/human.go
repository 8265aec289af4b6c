package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"
	"connectfour/utils"
)

// humanAgent reads column choices from the terminal. Illegal input is
// re-prompted, never applied.
type humanAgent struct {
	piece game.Cell
	in    *bufio.Scanner
	out   io.Writer
}

func newHumanAgent(piece game.Cell, in io.Reader, out io.Writer) *humanAgent {
	return &humanAgent{
		piece: piece,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (h *humanAgent) FindMove(board *game.Board) (int, metrics.SearchMetric, error) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return -1, metrics.SearchMetric{}, searcher.ErrNoLegalMoves
	}

	for {
		fmt.Fprintf(h.out, "%s> drop into column [0-%d]: ", h.piece, game.Cols-1)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return -1, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
			}
			return -1, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", io.EOF)
		}

		col, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "not a column number")
			continue
		}
		if !utils.Contains(legal, col) {
			fmt.Fprintln(h.out, "that column is full or off the board")
			continue
		}
		return col, metrics.SearchMetric{}, nil
	}
}

func (h *humanAgent) Piece() game.Cell {
	return h.piece
}
