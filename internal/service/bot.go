package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const openingCells = entity.Size * entity.Size

type BotService interface {
	ChooseMove(board *entity.Board) (entity.Move, error)
}

// randomSource is satisfied by *rand.Rand from math/rand/v2.
type randomSource interface {
	IntN(n int) int
}

type botService struct {
	logger *slog.Logger
	random randomSource

	randomOpening bool
}

// NewBotService returns the computer player.
// With randomOpening set, a first move on an empty board is drawn uniformly from all nine
// cells instead of searched: every opening is worth a draw under optimal play, so this only
// skips the largest search and adds variety.
func NewBotService(logger *slog.Logger, random randomSource, randomOpening bool) BotService {
	return &botService{
		logger:        logger.With("component", "bot"),
		random:        random,
		randomOpening: randomOpening,
	}
}

func (that *botService) ChooseMove(board *entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove")

	if board.IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	if that.randomOpening && len(availableCells) == openingCells {
		move := availableCells[that.random.IntN(len(availableCells))]
		log.Debug("random opening", "move", move.String())

		return move, nil
	}

	result := tictactoe.BestMove(board, entity.Computer)
	if !result.IsMove() {
		return entity.Move{}, fmt.Errorf("search returned %s: %w", result, apperror.ErrNoAvailableMoves)
	}

	log.Debug("searched move", "move", result.Move.String(), "score", result.Score, "depth", len(availableCells))

	return result.Move, nil
}
