package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type console interface {
	AskMarker(ctx context.Context) (string, error)
	AskFirst(ctx context.Context) (bool, error)
	AskMove(ctx context.Context) (entity.Move, error)
	AskPlayAgain(ctx context.Context) (bool, error)

	ShowWelcome(session entity.Session)
	ShowTurn(board *entity.Board, turn entity.Player, session entity.Session)
	ShowInvalidMove(err error)
	ShowResult(board *entity.Board, outcome entity.Outcome, session entity.Session)
	ShowTally(tally entity.Tally)
	ShowExit()
}

type bot interface {
	ChooseMove(board *entity.Board) (entity.Move, error)
}

type GameManager struct {
	logger  *slog.Logger
	console console
	bot     bot
	board   *entity.Board

	thinkDelay   time.Duration
	computerName string
	tally        entity.Tally
}

func NewGameManager(logger *slog.Logger, console console, bot bot, thinkDelay time.Duration, computerName string) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game"),
		console: console,
		bot:     bot,
		board:   entity.NewBoard(),

		thinkDelay:   thinkDelay,
		computerName: computerName,
	}
}

// Run plays games until the human declines another one. End of input and
// cancellation stop the run without an error.
func (that *GameManager) Run(ctx context.Context) error {
	marker, err := that.console.AskMarker(ctx)
	if err != nil {
		return that.stop(err)
	}

	for {
		humanFirst, err := that.console.AskFirst(ctx)
		if err != nil {
			return that.stop(err)
		}

		session := entity.NewSession(marker, humanFirst, that.computerName)
		that.console.ShowWelcome(session)

		outcome, err := that.Play(ctx, session)
		if err != nil {
			return that.stop(err)
		}

		that.tally.Record(outcome)
		that.console.ShowTally(that.tally)

		again, err := that.console.AskPlayAgain(ctx)
		if err != nil {
			return that.stop(err)
		}

		if !again {
			return nil
		}
	}
}

// Play clears the board, runs one game on it and returns how it ended.
func (that *GameManager) Play(ctx context.Context, session entity.Session) (entity.Outcome, error) {
	log := that.logger.With("method", "Play", "game_id", uuid.NewString())
	log.Info("game started", "first", session.First.String(), "human_marker", session.HumanMarker)

	board := that.board
	board.Reset()

	turn := session.First
	outcome := board.Outcome()

	for !outcome.IsFinished() {
		that.console.ShowTurn(board, turn, session)

		var err error
		if turn == entity.Human {
			err = that.humanTurn(ctx, board)
		} else {
			err = that.computerTurn(ctx, board)
		}

		if err != nil {
			return entity.InProgress, fmt.Errorf("%s turn: %w", turn, err)
		}

		turn = turn.Opponent()
		outcome = board.Outcome()
	}

	that.console.ShowResult(board, outcome, session)
	log.Info("game finished", "outcome", outcome.String())

	return outcome, nil
}

func (that *GameManager) Tally() entity.Tally {
	return that.tally
}

func (that *GameManager) humanTurn(ctx context.Context, board *entity.Board) error {
	for {
		move, err := that.console.AskMove(ctx)
		if err != nil {
			return err
		}

		err = board.Place(move, entity.Human)
		if err == nil {
			return nil
		}

		if !errors.Is(err, apperror.ErrCellOccupied) && !errors.Is(err, apperror.ErrInvalidCell) {
			return fmt.Errorf("failed to place move: %w", err)
		}

		that.console.ShowInvalidMove(err)
	}
}

func (that *GameManager) computerTurn(ctx context.Context, board *entity.Board) error {
	move, err := that.bot.ChooseMove(board)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = board.Place(move, entity.Computer); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return wait(ctx, that.thinkDelay)
}

func (that *GameManager) stop(err error) error {
	if errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled) {
		that.logger.Info("run stopped", "reason", err)
		that.console.ShowExit()

		return nil
	}

	return err
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
