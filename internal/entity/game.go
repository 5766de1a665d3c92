package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// PlayMode decides which seats are played by a human.
type PlayMode int

const (
	HumanVsComputer PlayMode = iota + 1
	ComputerVsComputer
	HumanVsHuman
)

func ParsePlayMode(value int) (PlayMode, error) {
	mode := PlayMode(value)
	switch mode {
	case HumanVsComputer, ComputerVsComputer, HumanVsHuman:
		return mode, nil
	default:
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayMode, value)
	}
}

// IsHuman reports whether the player's seat is taken by a human.
// In human vs computer the human always plays X.
func (that PlayMode) IsHuman(player Player) bool {
	switch that {
	case HumanVsHuman:
		return true
	case HumanVsComputer:
		return player == PlayerX
	default:
		return false
	}
}

func (that PlayMode) String() string {
	switch that {
	case HumanVsComputer:
		return "human-vs-computer"
	case ComputerVsComputer:
		return "computer-vs-computer"
	case HumanVsHuman:
		return "human-vs-human"
	default:
		return "unknown"
	}
}

// Phase is the controller state of a game.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseAwaitingMove
	PhaseEvaluating
	PhaseFinished
)

func (that Phase) String() string {
	switch that {
	case PhaseInitializing:
		return "initializing"
	case PhaseAwaitingMove:
		return "awaiting-move"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	InProgress Outcome = iota
	Won
	Tie
)

// GameStatus is InProgress, Tie, or Won together with the winner.
type GameStatus struct {
	Outcome Outcome
	Winner  Player
}

func WonBy(player Player) GameStatus {
	return GameStatus{Outcome: Won, Winner: player}
}

func TieStatus() GameStatus {
	return GameStatus{Outcome: Tie}
}

func (that GameStatus) IsTerminal() bool {
	return that.Outcome != InProgress
}

func (that GameStatus) String() string {
	switch that.Outcome {
	case Won:
		return "won by " + that.Winner.String()
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// Game is the whole state of one match. It is owned by a single controller.
type Game struct {
	ID        string
	Board     *Board
	RunLength int
	Mode      PlayMode
	Turn      Player
	Step      int
	Phase     Phase
	Status    GameStatus
}

// NewGame validates the parameters and returns a game in the initializing phase.
// A zero runLength means the whole row has to be filled.
func NewGame(id string, size, runLength int, mode PlayMode) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	if runLength == 0 {
		runLength = size
	}

	if runLength < MinBoardSize || runLength > size {
		return nil, fmt.Errorf("%w: %d for board size %d", apperror.ErrInvalidRunLength, runLength, size)
	}

	if _, err = ParsePlayMode(int(mode)); err != nil {
		return nil, err
	}

	return &Game{
		ID:        id,
		Board:     board,
		RunLength: runLength,
		Mode:      mode,
		Phase:     PhaseInitializing,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Phase == PhaseFinished
}

func (that *Game) IsHumanTurn() bool {
	return that.Mode.IsHuman(that.Turn)
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
