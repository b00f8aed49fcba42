package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Board boundaries.
const (
	BorderMin = 0
	BorderMax = 2

	Size = BorderMax + 1
)

// Cell is the occupancy of a single board square.
type Cell int8

const (
	Empty    Cell = 0
	Human    Cell = -1
	Computer Cell = +1
)

// Player tags whose turn it is and whose marker a cell holds.
type Player = Cell

func (that Cell) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

// Opponent returns the other player.
func (that Cell) Opponent() Player {
	return -that
}

// Move is a 0-indexed (row, column) coordinate into the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= BorderMin && that.Row <= BorderMax &&
		that.Col >= BorderMin && that.Col <= BorderMax
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board [Size][Size]Cell

func NewBoard() *Board {
	return &Board{}
}

// Reset clears every cell.
func (that *Board) Reset() {
	*that = Board{}
}

// Place puts the player's marker on an empty cell. It does not mutate the board on failure.
func (that *Board) Place(move Move, player Player) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if that[move.Row][move.Col] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = player

	return nil
}

// Try places the player's marker on an empty cell, runs fn and clears the cell again,
// even if fn panics. It panics when the cell is not empty.
func (that *Board) Try(move Move, player Player, fn func()) {
	if that[move.Row][move.Col] != Empty {
		panic(fmt.Sprintf("try on occupied cell %s", move))
	}

	that[move.Row][move.Col] = player
	defer func() {
		that[move.Row][move.Col] = Empty
	}()

	fn()
}

// At returns the cell value at the given move.
func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// EmptyCells lists the empty cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)

	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

// Count returns the number of cells holding the player's marker.
func (that *Board) Count(player Player) int {
	count := 0

	for _, row := range that {
		for _, cell := range row {
			if cell == player {
				count++
			}
		}
	}

	return count
}
