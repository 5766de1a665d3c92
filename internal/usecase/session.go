package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg/prompt"
)

const (
	boardSizePrompt = "What board size do you want to play (3-9)? "
	playModePrompt  = "Select play mode: (1) Human vs computer, (2) Computer vs computer or (3) Human vs human? "
	playAgainPrompt = "Play again (Y/N)? "
	goodbyeMessage  = "Good bye."
)

type gameController interface {
	Play(ctx context.Context, game *entity.Game) error
}

// Settings fixes parts of the session up front. Zero values are asked for.
type Settings struct {
	BoardSize int
	RunLength int
	PlayMode  int
}

// Session runs games one after another until the player declines to play again.
// Board size and play mode are chosen once for the whole session.
type Session struct {
	logger     *slog.Logger
	chooser    prompt.Chooser
	controller gameController
	settings   Settings
}

func NewSession(logger *slog.Logger, chooser prompt.Chooser, controller gameController, settings Settings) *Session {
	return &Session{
		logger:     logger.With("component", "session"),
		chooser:    chooser,
		controller: controller,
		settings:   settings,
	}
}

func (that *Session) Run(ctx context.Context) error {
	size, err := that.boardSize(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose board size: %w", err)
	}

	mode, err := that.playMode(ctx)
	if err != nil {
		return fmt.Errorf("failed to choose play mode: %w", err)
	}

	for {
		game, err := that.playGame(ctx, size, mode)
		if err != nil {
			return err
		}

		if err = that.chooser.Say(OutcomeMessage(game)); err != nil {
			return fmt.Errorf("failed to report outcome: %w", err)
		}

		answer, err := prompt.PromptChoice(ctx, that.chooser, playAgainPrompt, []string{"Y", "N"}, prompt.InvalidResponseMessage)
		if err != nil {
			return fmt.Errorf("failed to ask for another game: %w", err)
		}

		if answer == "N" {
			break
		}
	}

	if err = that.chooser.Say(goodbyeMessage); err != nil {
		return fmt.Errorf("failed to say goodbye: %w", err)
	}

	return nil
}

func (that *Session) playGame(ctx context.Context, size int, mode entity.PlayMode) (*entity.Game, error) {
	runLength := that.settings.RunLength
	if runLength > size {
		runLength = size
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), size, runLength, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "playGame", "gameID", game.ID)

	if err = that.controller.Play(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	log.Info("game over", "status", game.Status.String(), "steps", game.Step)

	return game, nil
}

func (that *Session) boardSize(ctx context.Context) (int, error) {
	if that.settings.BoardSize != 0 {
		return that.settings.BoardSize, nil
	}

	sizes := make([]int, 0, entity.MaxBoardSize-entity.MinBoardSize+1)
	for size := entity.MinBoardSize; size <= entity.MaxBoardSize; size++ {
		sizes = append(sizes, size)
	}

	return prompt.PromptChoice(ctx, that.chooser, boardSizePrompt, sizes, prompt.InvalidResponseMessage)
}

func (that *Session) playMode(ctx context.Context) (entity.PlayMode, error) {
	value := that.settings.PlayMode
	if value == 0 {
		var err error
		value, err = prompt.PromptChoice(ctx, that.chooser, playModePrompt, []int{1, 2, 3}, prompt.InvalidResponseMessage)
		if err != nil {
			return 0, err
		}
	}

	return entity.ParsePlayMode(value)
}

// OutcomeMessage is the line shown when a game is over.
func OutcomeMessage(game *entity.Game) string {
	status := game.Status
	switch {
	case status.Outcome == entity.Tie:
		return fmt.Sprintf("The game ends in a tie in %d steps.", game.Step)
	case game.Mode.IsHuman(status.Winner):
		return fmt.Sprintf("Congratulations, player %s is the winner in %d steps!", status.Winner, game.Step)
	default:
		return fmt.Sprintf("The winner is computer %s in %d steps!", status.Winner, game.Step)
	}
}
