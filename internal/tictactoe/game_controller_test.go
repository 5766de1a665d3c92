package tictactoe_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

var errInputClosed = errors.New("input closed")

type mockMoveSource struct {
	mock.Mock
}

func (that *mockMoveSource) NextMove(ctx context.Context, game *entity.Game) (entity.Move, error) {
	args := that.Called(ctx, game)
	return args.Get(0).(entity.Move), args.Error(1)
}

type mockReporter struct {
	mock.Mock
}

func (that *mockReporter) GameStarted(game *entity.Game) error {
	return that.Called(game).Error(0)
}

func (that *mockReporter) MoveApplied(game *entity.Game, move entity.Move, byComputer bool) error {
	return that.Called(game, move, byComputer).Error(0)
}

func TestGameController_Start(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a freshly created game
	game, err := entity.NewGame("123", 3, 0, entity.HumanVsComputer)
	require.NoError(t, err)

	reporter := &mockReporter{}
	reporter.On("GameStarted", game).Return(nil).Once()

	controller := tictactoe.NewGameController(st.Logger, &mockMoveSource{}, &mockMoveSource{}, reporter)

	// When: the controller advances once
	err = controller.Advance(ctx, game)
	require.NoError(t, err)

	// Then: X is awaited at step 1 and the board has been shown
	assert.Equal(t, entity.PhaseAwaitingMove, game.Phase)
	assert.Equal(t, entity.PlayerX, game.Turn)
	assert.Equal(t, 1, game.Step)
	reporter.AssertExpectations(t)
}

func TestGameController_Advance(t *testing.T) {
	t.Run("Human seat is asked and the turn passes", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: human vs computer, X to move on an empty board
		game := st.Game(entity.HumanVsComputer, entity.PlayerX,
			"...",
			"...",
			"...",
		)
		move := entity.NewMove(1, 1)

		human := &mockMoveSource{}
		human.On("NextMove", ctx, game).Return(move, nil).Once()
		reporter := &mockReporter{}
		reporter.On("MoveApplied", game, move, false).Return(nil).Once()

		controller := tictactoe.NewGameController(st.Logger, human, &mockMoveSource{}, reporter)

		// When: the move is taken and evaluated
		require.NoError(t, controller.Advance(ctx, game))
		assert.Equal(t, entity.PhaseEvaluating, game.Phase)
		require.NoError(t, controller.Advance(ctx, game))

		// Then: the move is on the board and O is awaited at step 2
		assert.Equal(t, entity.MarkX, game.Board.CellAt(1, 1))
		assert.Equal(t, entity.PhaseAwaitingMove, game.Phase)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, 2, game.Step)
		human.AssertExpectations(t)
		reporter.AssertExpectations(t)
	})

	t.Run("Computer seat is asked in human vs computer", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: O to move in human vs computer
		game := st.Game(entity.HumanVsComputer, entity.PlayerO,
			"X..",
			"...",
			"...",
		)
		move := entity.NewMove(1, 1)

		computer := &mockMoveSource{}
		computer.On("NextMove", ctx, game).Return(move, nil).Once()
		reporter := &mockReporter{}
		reporter.On("MoveApplied", game, move, true).Return(nil).Once()

		controller := tictactoe.NewGameController(st.Logger, &mockMoveSource{}, computer, reporter)

		// When: the controller advances
		require.NoError(t, controller.Advance(ctx, game))

		// Then: the computer's move was applied and reported as such
		assert.Equal(t, entity.MarkO, game.Board.CellAt(1, 1))
		computer.AssertExpectations(t)
		reporter.AssertExpectations(t)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X can complete row A
		game := st.Game(entity.HumanVsHuman, entity.PlayerX,
			"XX.",
			"OO.",
			"...",
		)
		game.Step = 5
		move := entity.NewMove(0, 2)

		human := &mockMoveSource{}
		human.On("NextMove", ctx, game).Return(move, nil).Once()
		reporter := &mockReporter{}
		reporter.On("MoveApplied", game, move, false).Return(nil).Once()

		controller := tictactoe.NewGameController(st.Logger, human, &mockMoveSource{}, reporter)

		// When: the game is played out
		require.NoError(t, controller.Play(ctx, game))

		// Then: X wins at step 5
		assert.Equal(t, entity.PhaseFinished, game.Phase)
		assert.Equal(t, entity.WonBy(entity.PlayerX), game.Status)
		assert.Equal(t, 5, game.Step)
	})

	t.Run("Last move without a line is a tie", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X fills the last cell
		game := st.Game(entity.HumanVsHuman, entity.PlayerX,
			"XOX",
			"XOO",
			"OX.",
		)
		move := entity.NewMove(2, 2)

		human := &mockMoveSource{}
		human.On("NextMove", ctx, game).Return(move, nil).Once()
		reporter := &mockReporter{}
		reporter.On("MoveApplied", game, move, false).Return(nil).Once()

		controller := tictactoe.NewGameController(st.Logger, human, &mockMoveSource{}, reporter)

		// When: the game is played out
		require.NoError(t, controller.Play(ctx, game))

		// Then: it ends in a tie
		assert.Equal(t, entity.TieStatus(), game.Status)
	})

	t.Run("Error on move that is not available", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a source that returns an occupied cell
		game := st.Game(entity.HumanVsHuman, entity.PlayerO,
			"X..",
			"...",
			"...",
		)

		human := &mockMoveSource{}
		human.On("NextMove", ctx, game).Return(entity.NewMove(0, 0), nil).Once()

		controller := tictactoe.NewGameController(st.Logger, human, &mockMoveSource{}, &mockReporter{})

		// When: the controller advances
		err := controller.Advance(ctx, game)

		// Then: ErrMoveNotAvailable is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrMoveNotAvailable)
		assert.Equal(t, entity.MarkX, game.Board.CellAt(0, 0))
		assert.Equal(t, entity.PhaseAwaitingMove, game.Phase)
	})

	t.Run("Error from the move source is returned", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := st.Game(entity.HumanVsHuman, entity.PlayerX,
			"...",
			"...",
			"...",
		)

		human := &mockMoveSource{}
		human.On("NextMove", ctx, game).Return(entity.Move{}, errInputClosed).Once()

		controller := tictactoe.NewGameController(st.Logger, human, &mockMoveSource{}, &mockReporter{})

		err := controller.Play(ctx, game)

		require.ErrorIs(t, err, errInputClosed)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := st.Game(entity.HumanVsHuman, entity.PlayerX,
			"XXX",
			"OO.",
			"...",
		)
		game.Phase = entity.PhaseFinished
		game.Status = entity.WonBy(entity.PlayerX)

		controller := tictactoe.NewGameController(st.Logger, &mockMoveSource{}, &mockMoveSource{}, &mockReporter{})

		err := controller.Advance(ctx, game)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameController_ComputerVsComputer(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		ctx, st := suite.New(t)

		// Given: two computer players on a 3x3 board
		game, err := entity.NewGame("cvc", 3, 0, entity.ComputerVsComputer)
		require.NoError(t, err)

		var out bytes.Buffer
		bot := service.NewBotService(st.Logger, rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok
		controller := tictactoe.NewGameController(st.Logger, &mockMoveSource{}, bot, console.NewAnnouncer(&out))

		// When: the game is played out
		err = controller.Play(ctx, game)
		require.NoError(t, err, "seed %d", seed)

		// Then: it ends within size*size steps with a terminal status
		assert.Equal(t, entity.PhaseFinished, game.Phase)
		assert.True(t, game.Status.IsTerminal())
		assert.LessOrEqual(t, game.Step, 9)
		assert.Equal(t, 9-game.Step, game.Board.Moves().Len(), "one move per step")
		assert.Contains(t, out.String(), "Step 1: Computer X chooses")

		if game.Status.Outcome == entity.Won {
			assert.True(t, tictactoe.CheckWin(game.Board, 3))
		}
	}
}
