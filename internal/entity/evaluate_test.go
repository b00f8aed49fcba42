package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lineBoard fills a single win line with the player's marker.
func lineBoard(line [3]Move, player Player) *Board {
	board := NewBoard()
	for _, move := range line {
		board[move.Row][move.Col] = player
	}

	return board
}

func TestBoard_HasWon(t *testing.T) {
	for i, line := range WinLines {
		t.Run(fmt.Sprintf("Line %d wins for its owner only", i), func(t *testing.T) {
			// Given: a board with only this line filled
			computerBoard := lineBoard(line, Computer)
			humanBoard := lineBoard(line, Human)

			// Then: the owner has won, the other player has not
			assert.True(t, computerBoard.HasWon(Computer), "line %d", i)
			assert.False(t, computerBoard.HasWon(Human), "line %d", i)
			assert.True(t, humanBoard.HasWon(Human), "line %d", i)
			assert.False(t, humanBoard.HasWon(Computer), "line %d", i)
		})
	}

	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := &Board{
			{c, c, e},
			{h, h, e},
			{e, e, e},
		}

		assert.False(t, board.HasWon(Computer))
		assert.False(t, board.HasWon(Human))
		assert.False(t, board.IsTerminal())
	})
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Computer line scores +1", func(t *testing.T) {
		for _, line := range WinLines {
			board := lineBoard(line, Computer)

			assert.Equal(t, +1, board.Evaluate())
			assert.True(t, board.IsTerminal())
			assert.Equal(t, ComputerWin, board.Outcome())
		}
	})

	t.Run("Human line scores -1", func(t *testing.T) {
		for _, line := range WinLines {
			board := lineBoard(line, Human)

			assert.Equal(t, -1, board.Evaluate())
			assert.True(t, board.IsTerminal())
			assert.Equal(t, HumanWin, board.Outcome())
		}
	})

	t.Run("Full board without a line scores 0", func(t *testing.T) {
		// Given: a drawn game
		board := &Board{
			{h, c, h},
			{h, c, c},
			{c, h, h},
		}

		// Then: it is a draw, but not a terminal win state
		assert.Equal(t, 0, board.Evaluate())
		assert.False(t, board.IsTerminal())
		assert.Equal(t, Draw, board.Outcome())
		assert.True(t, board.Outcome().IsFinished())
	})

	t.Run("Game in progress scores 0", func(t *testing.T) {
		board := &Board{
			{h, e, e},
			{e, c, e},
			{e, e, e},
		}

		assert.Equal(t, 0, board.Evaluate())
		assert.Equal(t, InProgress, board.Outcome())
		assert.False(t, board.Outcome().IsFinished())
	})
}
