package game

// CenterWeight is the value of one own piece in the center column.
const CenterWeight = 3

// EvaluateCenter scores a position by center-column control: +CenterWeight
// per own piece in the center column, -CenterWeight per opponent piece.
// Controlling the center is a known strong heuristic for this family of
// games; partial-line threats are deliberately ignored.
func EvaluateCenter(b *Board, player Cell) int {
	score := 0
	for row := 0; row < Rows; row++ {
		switch b.cells[row][CenterCol] {
		case player:
			score += CenterWeight
		case Empty:
		default:
			score -= CenterWeight
		}
	}
	return score
}
