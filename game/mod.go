package game

// Board geometry. Row 0 is the topmost row, row Rows-1 the bottom.
const (
	Rows     = 6
	Cols     = 7
	ConnectN = 4

	CenterCol = Cols / 2
)

// Cell is the content of one board slot.
type Cell int8

const (
	Empty Cell = iota
	Red
	Yellow
)

func (c Cell) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Empty"
	}
}

// Opponent returns the other player's piece. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// Placement is the slot where a dropped piece settled.
type Placement struct {
	Row int
	Col int
}

// Evaluate scores a non-terminal position from player's perspective.
// Positive favors player, negative favors the opponent.
type Evaluate func(b *Board, player Cell) int
