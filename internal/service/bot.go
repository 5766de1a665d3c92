package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const (
	strategyWin    = "win"
	strategyBlock  = "block"
	strategyRandom = "random"
)

// BotService picks moves for computer seats. It looks one move ahead for a
// win, then one move ahead for a block, and falls back to a random legal move.
type BotService interface {
	SelectMove(game *entity.Game) (entity.Move, error)
	NextMove(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	rnd    *rand.Rand
}

func NewBotService(logger *slog.Logger, rnd *rand.Rand) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		rnd:    rnd,
	}
}

func (that *botService) SelectMove(game *entity.Game) (entity.Move, error) {
	move, _, err := that.selectMove(game)
	return move, err
}

// NextMove lets the bot act as the move source of a computer seat.
func (that *botService) NextMove(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	move, strategy, err := that.selectMove(game)
	if err != nil {
		return entity.Move{}, err
	}

	that.logger.Debug("bot selected move",
		"gameID", game.ID,
		"player", game.Turn.String(),
		"move", move.String(),
		"strategy", strategy,
	)

	return move, nil
}

func (that *botService) selectMove(game *entity.Game) (entity.Move, string, error) {
	available := game.Board.Moves().List()
	if len(available) == 0 {
		return entity.Move{}, "", ErrNoAvailableMoves
	}

	if move, ok := findWinningMove(game.Board, available, game.Turn.Mark(), game.RunLength); ok {
		return move, strategyWin, nil
	}

	if move, ok := findWinningMove(game.Board, available, game.Turn.Opponent().Mark(), game.RunLength); ok {
		return move, strategyBlock, nil
	}

	return available[that.rnd.Intn(len(available))], strategyRandom, nil //nolint: gosec // it's ok
}

// findWinningMove returns the first move, in row-major order, that completes a window for mark.
func findWinningMove(board *entity.Board, available []entity.Move, mark entity.Cell, runLength int) (entity.Move, bool) {
	for _, move := range available {
		wins := board.Try(move, mark, func(board *entity.Board) bool {
			return tictactoe.CheckWin(board, runLength)
		})
		if wins {
			return move, true
		}
	}

	return entity.Move{}, false
}
