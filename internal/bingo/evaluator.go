// Package bingo evaluates completed lines over a player's board.
package bingo

import (
	"wordbingo/internal/models"
)

// TotalLines is every line a 5x5 board can complete: 5 rows, 5 columns
// and the 2 main diagonals.
const TotalLines = 12

// lines holds the grid index sets for all 12 possible lines
var lines = buildLines()

func buildLines() [][5]int {
	out := make([][5]int, 0, TotalLines)

	for row := 0; row < 5; row++ {
		var l [5]int
		for col := 0; col < 5; col++ {
			l[col] = row*5 + col
		}
		out = append(out, l)
	}

	for col := 0; col < 5; col++ {
		var l [5]int
		for row := 0; row < 5; row++ {
			l[row] = row*5 + col
		}
		out = append(out, l)
	}

	out = append(out, [5]int{0, 6, 12, 18, 24})
	out = append(out, [5]int{4, 8, 12, 16, 20})

	return out
}

// CountCompletedLines counts how many rows, columns and diagonals have all
// five member cells flipped. The board must be in row-major order.
func CountCompletedLines(board models.Board) int {
	count := 0
	for _, line := range lines {
		completed := true
		for _, idx := range line {
			if idx >= len(board) || !board[idx].IsFlipped {
				completed = false
				break
			}
		}
		if completed {
			count++
		}
	}
	return count
}

// Flip marks the cell holding the given item as flipped. Flipping is
// monotonic; a cell already flipped stays flipped. Returns true when the
// board changed.
func Flip(board models.Board, itemID string) bool {
	idx := board.CellByItemID(itemID)
	if idx < 0 || board[idx].IsFlipped {
		return false
	}
	board[idx].IsFlipped = true
	return true
}
