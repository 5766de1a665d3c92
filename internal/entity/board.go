package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Board is a square grid of cells together with the set of moves still legal on it.
type Board struct {
	size  int
	cells []Cell
	moves *MoveSet
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
		moves: newFullMoveSet(size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// CellAt returns the cell at zero-based coordinates.
func (that *Board) CellAt(row, col int) Cell {
	return that.cells[row*that.size+col]
}

func (that *Board) Moves() *MoveSet {
	return that.moves
}

func (that *Board) Contains(move Move) bool {
	return move.Row >= 0 && move.Row < that.size && move.Col >= 0 && move.Col < that.size
}

// Apply marks the cell for the player and removes the move from the legal set.
func (that *Board) Apply(move Move, player Player) error {
	if !that.moves.Contains(move) {
		return fmt.Errorf("%w: %s", apperror.ErrMoveNotAvailable, move)
	}

	that.cells[move.Row*that.size+move.Col] = player.Mark()
	that.moves.remove(move)

	return nil
}

// Try places mark on the square, runs fn and restores the square before returning.
// The legal move set is left untouched.
func (that *Board) Try(move Move, mark Cell, fn func(board *Board) bool) bool {
	idx := move.Row*that.size + move.Col
	previous := that.cells[idx]

	that.cells[idx] = mark
	defer func() {
		that.cells[idx] = previous
	}()

	return fn(that)
}

func (that *Board) Clone() *Board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		size:  that.size,
		cells: cells,
		moves: that.moves.clone(),
	}
}
