package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// CheckWin reports whether any window of runLength cells holds the same mark everywhere.
func CheckWin(board *entity.Board, runLength int) bool {
	won := false
	forEachWindow(board, runLength, func(window []entity.Cell) bool {
		won = isComplete(window)
		return won
	})

	return won
}

// CheckTie reports a tie when no move is left or when every window already
// holds both marks. A window that is empty or holds a single kind of mark is
// still live and keeps the game going.
func CheckTie(board *entity.Board, runLength int) bool {
	if board.Moves().IsEmpty() {
		return true
	}

	tie := true
	forEachWindow(board, runLength, func(window []entity.Cell) bool {
		if !isBlocked(window) {
			tie = false
		}
		return !tie
	})

	return tie
}

// Evaluate returns the status of the board right after mover has played.
func Evaluate(board *entity.Board, runLength int, mover entity.Player) entity.GameStatus {
	switch {
	case CheckWin(board, runLength):
		return entity.WonBy(mover)
	case CheckTie(board, runLength):
		return entity.TieStatus()
	default:
		return entity.GameStatus{Outcome: entity.InProgress}
	}
}

// forEachWindow calls visit for every row and column window and for the windows
// sliding along the two main diagonals. It stops as soon as visit returns true.
// The slice passed to visit is reused between calls.
func forEachWindow(board *entity.Board, runLength int, visit func(window []entity.Cell) bool) {
	size := board.Size()
	offsets := size - runLength + 1
	if offsets < 1 {
		return
	}

	window := make([]entity.Cell, runLength)

	for line := 0; line < size; line++ {
		for start := 0; start < offsets; start++ {
			for i := range window {
				window[i] = board.CellAt(line, start+i)
			}
			if visit(window) {
				return
			}

			for i := range window {
				window[i] = board.CellAt(start+i, line)
			}
			if visit(window) {
				return
			}
		}
	}

	for start := 0; start < offsets; start++ {
		for i := range window {
			window[i] = board.CellAt(start+i, start+i)
		}
		if visit(window) {
			return
		}

		for i := range window {
			window[i] = board.CellAt(start+i, size-1-start-i)
		}
		if visit(window) {
			return
		}
	}
}

func isComplete(window []entity.Cell) bool {
	first := window[0]
	if first == entity.EmptyCell {
		return false
	}

	for _, cell := range window[1:] {
		if cell != first {
			return false
		}
	}

	return true
}

// isBlocked reports whether the window holds both marks and can no longer be completed.
func isBlocked(window []entity.Cell) bool {
	var hasX, hasO bool
	for _, cell := range window {
		switch cell {
		case entity.MarkX:
			hasX = true
		case entity.MarkO:
			hasO = true
		}
	}

	return hasX && hasO
}
