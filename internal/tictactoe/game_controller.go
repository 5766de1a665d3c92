package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveSource supplies the next move for the player whose turn it is.
type MoveSource interface {
	NextMove(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// Reporter is told about everything the players should see.
type Reporter interface {
	GameStarted(game *entity.Game) error
	MoveApplied(game *entity.Game, move entity.Move, byComputer bool) error
}

type GameController struct {
	logger   *slog.Logger
	human    MoveSource
	computer MoveSource
	reporter Reporter
}

func NewGameController(logger *slog.Logger, human, computer MoveSource, reporter Reporter) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		human:    human,
		computer: computer,
		reporter: reporter,
	}
}

// Play drives the game from its current phase until it is finished.
func (that *GameController) Play(ctx context.Context, game *entity.Game) error {
	for !game.IsFinished() {
		if err := that.Advance(ctx, game); err != nil {
			return err
		}
	}

	return nil
}

// Advance performs exactly one phase transition.
func (that *GameController) Advance(ctx context.Context, game *entity.Game) error {
	switch game.Phase {
	case entity.PhaseInitializing:
		return that.start(game)
	case entity.PhaseAwaitingMove:
		return that.takeTurn(ctx, game)
	case entity.PhaseEvaluating:
		that.evaluate(game)
		return nil
	case entity.PhaseFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("unknown game phase: %d", game.Phase)
	}
}

func (that *GameController) start(game *entity.Game) error {
	game.Turn = entity.PlayerX
	game.Step = 1
	game.Status = entity.GameStatus{Outcome: entity.InProgress}
	game.Phase = entity.PhaseAwaitingMove

	that.logger.Info("game started",
		"gameID", game.ID,
		"size", game.Board.Size(),
		"runLength", game.RunLength,
		"mode", game.Mode.String(),
	)

	if err := that.reporter.GameStarted(game); err != nil {
		return fmt.Errorf("failed to report game start: %w", err)
	}

	return nil
}

func (that *GameController) takeTurn(ctx context.Context, game *entity.Game) error {
	byComputer := !game.IsHumanTurn()

	source := that.human
	if byComputer {
		source = that.computer
	}

	move, err := source.NextMove(ctx, game)
	if err != nil {
		return fmt.Errorf("failed to get move for player %s: %w", game.Turn, err)
	}

	if err = game.Board.Apply(move, game.Turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Phase = entity.PhaseEvaluating

	that.logger.Debug("move applied",
		"gameID", game.ID,
		"step", game.Step,
		"player", game.Turn.String(),
		"move", move.String(),
	)

	if err = that.reporter.MoveApplied(game, move, byComputer); err != nil {
		return fmt.Errorf("failed to report move: %w", err)
	}

	return nil
}

func (that *GameController) evaluate(game *entity.Game) {
	status := Evaluate(game.Board, game.RunLength, game.Turn)
	if status.IsTerminal() {
		game.Status = status
		game.Phase = entity.PhaseFinished

		that.logger.Info("game finished",
			"gameID", game.ID,
			"status", status.String(),
			"steps", game.Step,
		)

		return
	}

	game.Turn = game.Turn.Opponent()
	game.Step++
	game.Phase = entity.PhaseAwaitingMove
}
