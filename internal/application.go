package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application on the process standard streams.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tty := console.IsTerminal(os.Stdout)

	return Run(ctx, logger, conf, os.Stdin, os.Stdout, tty)
}

// Run wires the game against the given streams and plays until the human stops.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, tty bool) error {
	log := logger.With("component", "app")

	seed := conf.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	computerName := conf.Game.ComputerName
	if computerName == "" {
		computerName = pkg.GenerateComputerName()
	}

	log.Debug("starting", "seed", seed, "computer_name", computerName, "tty", tty)

	con := console.New(logger, in, out, console.Options{
		Color:       tty && !conf.Console.NoColor,
		ClearScreen: tty && !conf.Console.NoClear,
	})
	defer con.Close()

	bot := service.NewBotService(logger, rand.New(rand.NewPCG(seed, seed>>1|1)), !conf.Game.FixedOpening)
	manager := usecase.NewGameManager(logger, con, bot, conf.Game.ThinkDelay, computerName)

	if err := manager.Run(ctx); err != nil {
		return fmt.Errorf("game run failed: %w", err)
	}

	tally := manager.Tally()
	log.Info("session finished", "games", tally.Games(), "wins", tally.Wins, "losses", tally.Losses, "draws", tally.Draws)

	return nil
}
