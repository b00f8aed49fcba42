package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	h = Human
	c = Computer
	e = Empty
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places marker on empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: the human places at the center
		err := board.Place(Move{Row: 1, Col: 1}, Human)

		// Then: the marker should be on the board
		require.NoError(t, err)
		assert.Equal(t, Human, board.At(Move{Row: 1, Col: 1}))
		assert.Equal(t, 1, board.Count(Human))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where the computer holds the corner
		board := &Board{
			{c, e, e},
			{e, e, e},
			{e, e, e},
		}
		before := *board

		// When: the human tries the same cell
		err := board.Place(Move{Row: 0, Col: 0}, Human)

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *board)
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		board := NewBoard()

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
			err := board.Place(move, Computer)
			require.ErrorIs(t, err, apperror.ErrInvalidCell, move.String())
		}

		assert.Equal(t, Board{}, *board)
	})
}

func TestBoard_Try(t *testing.T) {
	t.Run("Restores the board after the callback", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := &Board{
			{h, c, e},
			{e, h, e},
			{e, e, c},
		}
		before := *board

		// When: a marker is tried and retracted
		var seen Cell
		board.Try(Move{Row: 0, Col: 2}, Computer, func() {
			seen = board.At(Move{Row: 0, Col: 2})
		})

		// Then: the marker was visible inside and the board is bit-identical afterwards
		assert.Equal(t, Computer, seen)
		assert.Equal(t, before, *board)
	})

	t.Run("Restores the board when the callback panics", func(t *testing.T) {
		board := NewBoard()

		assert.Panics(t, func() {
			board.Try(Move{Row: 2, Col: 2}, Human, func() {
				panic("boom")
			})
		})

		assert.Equal(t, Board{}, *board)
	})

	t.Run("Panics on occupied cell", func(t *testing.T) {
		board := &Board{{h}}

		assert.Panics(t, func() {
			board.Try(Move{Row: 0, Col: 0}, Computer, func() {})
		})
		assert.Equal(t, Human, board.At(Move{Row: 0, Col: 0}))
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board lists every cell in row-major order", func(t *testing.T) {
		board := NewBoard()

		expected := []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}

		assert.Equal(t, expected, board.EmptyCells())
		assert.False(t, board.IsFull())
	})

	t.Run("Full board has no empty cells", func(t *testing.T) {
		board := &Board{
			{h, c, h},
			{h, c, c},
			{c, h, h},
		}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})

	t.Run("Partial board keeps scan order", func(t *testing.T) {
		board := &Board{
			{h, e, c},
			{e, c, e},
			{h, e, e},
		}

		expected := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
		assert.Equal(t, expected, board.EmptyCells())
	})
}

func TestBoard_Reset(t *testing.T) {
	board := &Board{
		{h, c, h},
		{e, c, e},
		{e, e, e},
	}

	board.Reset()

	assert.Equal(t, Board{}, *board)
	assert.Len(t, board.EmptyCells(), 9)
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, Computer, Human.Opponent())
	assert.Equal(t, Human, Computer.Opponent())
}
