package bingo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"wordbingo/internal/models"
)

func testBoard() models.Board {
	board := make(models.Board, models.BoardSize)
	for i := range board {
		item := models.NewItem(fmt.Sprintf("item-%d", i), fmt.Sprintf("w%d", i), fmt.Sprintf("m%d", i), fmt.Sprintf("p%d", i))
		board[i] = models.Cell{
			ID:        fmt.Sprintf("cell-%d", i),
			Item:      item,
			GridIndex: i,
		}
	}
	return board
}

func flipAll(board models.Board, indexes ...int) {
	for _, i := range indexes {
		board[i].IsFlipped = true
	}
}

func TestCountCompletedLines_EmptyBoard(t *testing.T) {
	board := testBoard()
	assert.Equal(t, 0, CountCompletedLines(board))
}

func TestCountCompletedLines_FullBoard(t *testing.T) {
	board := testBoard()
	for i := range board {
		board[i].IsFlipped = true
	}
	assert.Equal(t, TotalLines, CountCompletedLines(board))
}

func TestCountCompletedLines_SingleRow(t *testing.T) {
	board := testBoard()
	flipAll(board, 0, 1, 2, 3, 4)
	assert.Equal(t, 1, CountCompletedLines(board))
}

func TestCountCompletedLines_SingleColumn(t *testing.T) {
	board := testBoard()
	flipAll(board, 2, 7, 12, 17, 22)
	assert.Equal(t, 1, CountCompletedLines(board))
}

func TestCountCompletedLines_Diagonals(t *testing.T) {
	board := testBoard()
	flipAll(board, 0, 6, 12, 18, 24)
	assert.Equal(t, 1, CountCompletedLines(board))

	flipAll(board, 4, 8, 16, 20)
	assert.Equal(t, 2, CountCompletedLines(board))
}

func TestCountCompletedLines_FlippingLastCellCompletesRow(t *testing.T) {
	board := testBoard()
	flipAll(board, 0, 1, 2, 3)

	before := CountCompletedLines(board)
	assert.Equal(t, 0, before)

	Flip(board, board[4].Item.ID)
	assert.Equal(t, before+1, CountCompletedLines(board))
}

func TestCountCompletedLines_CellSharedByRowAndDiagonal(t *testing.T) {
	// Row 0 missing only grid index 4, secondary diagonal missing only 4.
	board := testBoard()
	flipAll(board, 0, 1, 2, 3)
	flipAll(board, 8, 12, 16, 20)

	before := CountCompletedLines(board)
	assert.Equal(t, 0, before)

	Flip(board, board[4].Item.ID)
	assert.Equal(t, before+2, CountCompletedLines(board))
}

func TestFlip_Monotonic(t *testing.T) {
	board := testBoard()

	changed := Flip(board, board[7].Item.ID)
	assert.True(t, changed)
	assert.True(t, board[7].IsFlipped)

	// Second flip of the same cell is a no-op and never unflips.
	changed = Flip(board, board[7].Item.ID)
	assert.False(t, changed)
	assert.True(t, board[7].IsFlipped)
}

func TestFlip_UnknownItem(t *testing.T) {
	board := testBoard()
	assert.False(t, Flip(board, "missing-item"))
	assert.Equal(t, 0, CountCompletedLines(board))
}
