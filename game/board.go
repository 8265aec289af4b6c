package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove reports a drop into a full or out-of-range column. The
// board is left untouched; callers can re-prompt or pick another column.
var ErrIllegalMove = errors.New("illegal move")

// Board holds the piece grid. The zero value is an empty board.
//
// Invariant: a cell above the bottom row may be occupied only if the cell
// directly below it is occupied (pieces fall, they never float).
type Board struct {
	cells [Rows][Cols]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Cell returns the content of the slot at (row, col).
func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// LegalMoves returns the columns that accept another piece, in ascending
// order. A column is open while its top cell is empty.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.cells[0][col] == Empty {
			moves = append(moves, col)
		}
	}
	return moves
}

// Drop places piece into col, letting it settle on the lowest empty slot,
// and returns where it landed. Fails with ErrIllegalMove if the column is
// full or off the board; exactly one cell changes on success.
func (b *Board) Drop(col int, piece Cell) (Placement, error) {
	if col < 0 || col >= Cols || b.cells[0][col] != Empty {
		return Placement{}, fmt.Errorf("drop into column %d: %w", col, ErrIllegalMove)
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = piece
			return Placement{Row: row, Col: col}, nil
		}
	}
	panic("column has an empty top cell but no empty slot")
}

// Remove clears the slot at p. This is the undo primitive for search:
// removing the piece it just dropped restores the board bit for bit.
func (b *Board) Remove(p Placement) {
	b.cells[p.Row][p.Col] = Empty
}

// The four axes through a placement, each scanned in both directions:
// vertical, horizontal, diagonal down-right, diagonal down-left.
var axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// IsWin reports whether piece has ConnectN in a row through (row, col).
// The check is anchored at the last placed piece: it only sees lines that
// pass through that slot, so it must run right after the move that could
// have completed them.
func (b *Board) IsWin(row, col int, piece Cell) bool {
	for _, axis := range axes {
		// Start at 1 for the anchor, then count outward both ways.
		count := 1
		count += b.runLength(row, col, axis[0], axis[1], piece)
		count += b.runLength(row, col, -axis[0], -axis[1], piece)
		if count >= ConnectN {
			return true
		}
	}
	return false
}

// runLength counts contiguous piece cells from (row, col) exclusive along
// (dRow, dCol). The board edge ends the run.
func (b *Board) runLength(row, col, dRow, dCol int, piece Cell) int {
	count := 0
	for i := 1; i < ConnectN; i++ {
		r := row + dRow*i
		c := col + dCol*i
		if r < 0 || r >= Rows || c < 0 || c >= Cols || b.cells[r][c] != piece {
			break
		}
		count++
	}
	return count
}

// IsDraw reports whether no column accepts another piece. Callers must
// rule out a win at the last placement first: a board-filling move can
// also be a winning move.
func (b *Board) IsDraw() bool {
	for col := 0; col < Cols; col++ {
		if b.cells[0][col] == Empty {
			return false
		}
	}
	return true
}

// Copy returns an independent deep copy. Search must only ever run on a
// copy, never on the authoritative board.
func (b *Board) Copy() *Board {
	dup := *b
	return &dup
}
