// Package console is the terminal front end: menus, prompts and board output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	promptMarker    = "Choose X or O\nSelection: "
	promptFirst     = "Play first?[y/n]: "
	promptMove      = "Use numpad (1..9): "
	promptPlayAgain = "Play again?[y/n]: "

	msgInvalidChoice = "Invalid choice"
	msgInvalidMove   = "Invalid move"
	msgExiting       = "Exiting"

	clearSequence = "\033[H\033[2J"
)

type Options struct {
	Color       bool
	ClearScreen bool
}

type Console struct {
	logger   *slog.Logger
	out      io.Writer
	lines    chan string
	done     chan struct{}
	renderer *Renderer

	closeOnce sync.Once

	clearScreen bool
}

// New starts reading lines from in. The reader goroutine ends at EOF, on a read error or
// after Close.
func New(logger *slog.Logger, in io.Reader, out io.Writer, opts Options) *Console {
	that := &Console{
		logger:      logger.With("component", "console"),
		out:         out,
		lines:       make(chan string),
		done:        make(chan struct{}),
		renderer:    NewRenderer(opts.Color),
		clearScreen: opts.ClearScreen,
	}

	go that.scan(in)

	return that
}

// IsTerminal reports whether the file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Close stops the reader goroutine. A goroutine blocked inside in.Read only exits once
// that read returns.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// scan has no line length limit: an overlong line is delivered whole and rejected by the parser.
func (that *Console) scan(in io.Reader) {
	defer close(that.lines)

	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			select {
			case that.lines <- strings.TrimRight(line, "\r\n"):
			case <-that.done:
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.logger.Error("failed to read input", "error", err)
			}

			return
		}
	}
}

// ReadLine waits for the next input line. It returns apperror.ErrInputClosed at end of
// input or after Close, and the context error when ctx is done first.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", apperror.ErrInputClosed
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return line, nil
	}
}

// ask prompts until parse accepts the line.
func ask[T any](ctx context.Context, con *Console, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		con.print(prompt)

		line, err := con.ReadLine(ctx)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}

		con.logger.Debug("rejected input", "error", err)
		con.println(msgInvalidChoice)
	}
}

func (that *Console) AskMarker(ctx context.Context) (string, error) {
	that.clear()
	that.println("")

	return ask(ctx, that, promptMarker, ParseMarker)
}

func (that *Console) AskFirst(ctx context.Context) (bool, error) {
	that.clear()

	return ask(ctx, that, promptFirst, ParseYesNo)
}

func (that *Console) AskMove(ctx context.Context) (entity.Move, error) {
	return ask(ctx, that, promptMove, ParseMove)
}

func (that *Console) AskPlayAgain(ctx context.Context) (bool, error) {
	return ask(ctx, that, promptPlayAgain, ParseYesNo)
}

func (that *Console) ShowWelcome(session entity.Session) {
	if session.ComputerName == "" {
		return
	}

	that.println(fmt.Sprintf("You [%s] play against %s [%s]", session.HumanMarker, session.ComputerName, session.ComputerMarker))
}

func (that *Console) ShowTurn(board *entity.Board, turn entity.Player, session entity.Session) {
	that.clear()
	that.println(turnHeader(turn, session))
	that.print(that.renderer.Render(board, session.ComputerMarker, session.HumanMarker))
}

func (that *Console) ShowInvalidMove(err error) {
	that.logger.Debug("invalid move", "error", err)
	that.println(msgInvalidMove)
}

func (that *Console) ShowResult(board *entity.Board, outcome entity.Outcome, session entity.Session) {
	that.clear()

	switch outcome {
	case entity.HumanWin:
		that.println(turnHeader(entity.Human, session))
	case entity.ComputerWin:
		that.println(turnHeader(entity.Computer, session))
	case entity.Draw, entity.InProgress:
	}

	that.print(that.renderer.Render(board, session.ComputerMarker, session.HumanMarker))
	that.println(resultMessage(outcome))
}

func (that *Console) ShowTally(tally entity.Tally) {
	that.println(fmt.Sprintf("Wins: %d  Losses: %d  Draws: %d", tally.Wins, tally.Losses, tally.Draws))
}

func (that *Console) ShowExit() {
	that.println(msgExiting)
}

func turnHeader(turn entity.Player, session entity.Session) string {
	if turn == entity.Computer {
		return fmt.Sprintf("Computer turn [%s]", session.ComputerMarker)
	}

	return fmt.Sprintf("Human turn [%s]", session.HumanMarker)
}

func resultMessage(outcome entity.Outcome) string {
	switch outcome {
	case entity.HumanWin:
		return "YOU WIN!"
	case entity.ComputerWin:
		return "YOU LOSE!"
	default:
		return "DRAW!"
	}
}

func (that *Console) clear() {
	if that.clearScreen {
		that.print(clearSequence)
	}
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}
