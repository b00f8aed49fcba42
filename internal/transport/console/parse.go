package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ParseMove maps a keypad number 1..9 onto the board in row-major order.
func ParseMove(raw string) (entity.Move, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, raw)
	}

	if choice < 1 || choice > entity.Size*entity.Size {
		return entity.Move{}, fmt.Errorf("%w: %d out of range", apperror.ErrInvalidChoice, choice)
	}

	index := choice - 1

	return entity.Move{Row: index / entity.Size, Col: index % entity.Size}, nil
}

// ParseMarker accepts X or O in any case.
func ParseMarker(raw string) (string, error) {
	switch marker := strings.ToUpper(strings.TrimSpace(raw)); marker {
	case entity.MarkerX, entity.MarkerO:
		return marker, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, raw)
	}
}

// ParseYesNo accepts y or n in any case.
func ParseYesNo(raw string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, raw)
	}
}
