package console

import (
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const lineSeparator = "---------------"

type Renderer struct {
	human    *color.Color
	computer *color.Color
}

func NewRenderer(colored bool) *Renderer {
	human := color.New(color.FgGreen, color.Bold)
	computer := color.New(color.FgRed, color.Bold)

	if colored {
		human.EnableColor()
		computer.EnableColor()
	} else {
		human.DisableColor()
		computer.DisableColor()
	}

	return &Renderer{
		human:    human,
		computer: computer,
	}
}

// Render draws the board as text.
func (that *Renderer) Render(board *entity.Board, computerMarker, humanMarker string) string {
	var sb strings.Builder

	sb.WriteString("\n" + lineSeparator + "\n")

	for _, row := range board {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(that.symbol(cell, computerMarker, humanMarker))
			sb.WriteString(" |")
		}

		sb.WriteString("\n" + lineSeparator + "\n")
	}

	return sb.String()
}

func (that *Renderer) symbol(cell entity.Cell, computerMarker, humanMarker string) string {
	switch cell {
	case entity.Human:
		return that.human.Sprint(humanMarker)
	case entity.Computer:
		return that.computer.Sprint(computerMarker)
	default:
		return " "
	}
}

var plain = NewRenderer(false)

// Render draws the board without colour.
func Render(board *entity.Board, computerMarker, humanMarker string) string {
	return plain.Render(board, computerMarker, humanMarker)
}
