package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	maxWaitDuration = 10 * time.Second
	defaultSeed     = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Rand *rand.Rand
}

// New returns a context bounded by maxWaitDuration, a silent logger and a
// deterministic random source for the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(defaultSeed)), //nolint: gosec // it's ok
	}
}

// Board builds a board from one string per row: 'X' and 'O' are marks, any other character is empty.
func (that *Suite) Board(rows ...string) *entity.Board {
	that.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(that.T, err)

	for row, line := range rows {
		require.Len(that.T, line, len(rows), "row %d", row)

		for col, char := range line {
			var player entity.Player
			switch char {
			case 'X':
				player = entity.PlayerX
			case 'O':
				player = entity.PlayerO
			default:
				continue
			}

			require.NoError(that.T, board.Apply(entity.NewMove(row, col), player))
		}
	}

	return board
}

// Game wraps a board built by Board into a game that waits for player's move.
func (that *Suite) Game(mode entity.PlayMode, player entity.Player, rows ...string) *entity.Game {
	that.Helper()

	board := that.Board(rows...)

	return &entity.Game{
		ID:        "test-game",
		Board:     board,
		RunLength: board.Size(),
		Mode:      mode,
		Turn:      player,
		Step:      1,
		Phase:     entity.PhaseAwaitingMove,
	}
}
