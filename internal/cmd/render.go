package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"connectfour/game"
)

var (
	redDisc    = color.New(color.FgRed, color.Bold).Sprint("●")
	yellowDisc = color.New(color.FgYellow, color.Bold).Sprint("●")
)

// renderBoard draws the grid with row 0 on top, the way it is stored.
func renderBoard(w io.Writer, board *game.Board) {
	for col := 0; col < game.Cols; col++ {
		fmt.Fprintf(w, " %d", col)
	}
	fmt.Fprintln(w)

	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Cols; col++ {
			switch board.Cell(row, col) {
			case game.Red:
				fmt.Fprintf(w, "|%s", redDisc)
			case game.Yellow:
				fmt.Fprintf(w, "|%s", yellowDisc)
			default:
				fmt.Fprint(w, "| ")
			}
		}
		fmt.Fprintln(w, "|")
	}
}
