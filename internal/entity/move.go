package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 9
)

// Move addresses a board square with zero-based coordinates.
type Move struct {
	Row int
	Col int
}

func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

// String returns the move name, e.g. "A1" for the top-left square.
func (that Move) String() string {
	return string(rune('A'+that.Row)) + strconv.Itoa(that.Col+1)
}

// ParseMove converts a move name such as "b3" into zero-based coordinates.
// It does not check the name against any particular board.
func ParseMove(name string) (Move, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) < 2 {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMoveName, name)
	}

	letter := name[0]
	if letter < 'A' || letter >= 'A'+MaxBoardSize {
		return Move{}, fmt.Errorf("%w: row %q", apperror.ErrInvalidMoveName, letter)
	}

	col, err := strconv.Atoi(name[1:])
	if err != nil || col < 1 || col > MaxBoardSize {
		return Move{}, fmt.Errorf("%w: column %q", apperror.ErrInvalidMoveName, name[1:])
	}

	return Move{Row: int(letter - 'A'), Col: col - 1}, nil
}

// MoveSet holds the legal moves of a board in row-major order.
type MoveSet struct {
	moves []Move
}

func newFullMoveSet(size int) *MoveSet {
	moves := make([]Move, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			moves = append(moves, Move{Row: row, Col: col})
		}
	}

	return &MoveSet{moves: moves}
}

func (that *MoveSet) Len() int {
	return len(that.moves)
}

func (that *MoveSet) IsEmpty() bool {
	return len(that.moves) == 0
}

func (that *MoveSet) Contains(move Move) bool {
	return that.indexOf(move) >= 0
}

// List returns a copy of the remaining moves in row-major order.
func (that *MoveSet) List() []Move {
	list := make([]Move, len(that.moves))
	copy(list, that.moves)

	return list
}

// Names returns the remaining move names in row-major order.
func (that *MoveSet) Names() []string {
	names := make([]string, 0, len(that.moves))
	for _, move := range that.moves {
		names = append(names, move.String())
	}

	return names
}

func (that *MoveSet) remove(move Move) bool {
	idx := that.indexOf(move)
	if idx < 0 {
		return false
	}

	that.moves = append(that.moves[:idx], that.moves[idx+1:]...)

	return true
}

func (that *MoveSet) indexOf(move Move) int {
	for i, candidate := range that.moves {
		if candidate == move {
			return i
		}
	}

	return -1
}

func (that *MoveSet) clone() *MoveSet {
	return &MoveSet{moves: that.List()}
}
