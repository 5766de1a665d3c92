package console

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg/prompt"
)

// HumanPlayer reads moves for human seats. Only names of legal moves are accepted.
type HumanPlayer struct {
	chooser prompt.Chooser
}

func NewHumanPlayer(chooser prompt.Chooser) *HumanPlayer {
	return &HumanPlayer{chooser: chooser}
}

func (that *HumanPlayer) NextMove(ctx context.Context, game *entity.Game) (entity.Move, error) {
	question := fmt.Sprintf("Step %d: Player %s, enter your move: ", game.Step, game.Turn)

	name, err := prompt.PromptChoice(ctx, that.chooser, question, game.Board.Moves().Names(), prompt.InvalidResponseMessage)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
	}

	move, err := entity.ParseMove(name)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to parse move: %w", err)
	}

	return move, nil
}
