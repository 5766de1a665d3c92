package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the console session on stdin and stdout until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run wires the game together on the given streams.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source seeded", "seed", seed)

	prompter := console.NewPrompter(in, out)
	botService := service.NewBotService(logger, rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
	gameController := tictactoe.NewGameController(logger, console.NewHumanPlayer(prompter), botService, console.NewAnnouncer(out))

	session := usecase.NewSession(logger, prompter, gameController, usecase.Settings{
		BoardSize: conf.Board.Size,
		RunLength: conf.Board.RunLength,
		PlayMode:  conf.PlayMode,
	})

	err := session.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		log.Info("Input closed, shutting down")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}
