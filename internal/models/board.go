package models

// BoardSize is the number of cells on a player's board
const BoardSize = 25

// Cell is one slot on a player's board, bound to one item.
// IsFlipped is monotonic: once true it never reverts to false.
type Cell struct {
	// ID is the unique identifier for this cell
	ID string

	// Item is the content unit bound to this cell
	Item Item

	// IsFlipped indicates the cell has been won by a correct answer
	IsFlipped bool

	// GridIndex is the row-major position on the 5x5 board (0..24)
	GridIndex int
}

// Board is a player's full 25-cell permutation of the shared item set
type Board []Cell

// CellByItemID returns the index of the cell holding the given item, or -1
func (b Board) CellByItemID(itemID string) int {
	for i := range b {
		if b[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// UnflippedIndexes returns the grid indexes of all unflipped cells
func (b Board) UnflippedIndexes() []int {
	var out []int
	for i := range b {
		if !b[i].IsFlipped {
			out = append(out, i)
		}
	}
	return out
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}
