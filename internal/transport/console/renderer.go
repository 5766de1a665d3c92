package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const segment = "───"

// RenderBoard draws the board as a box-drawing grid with column numbers on
// top and row letters on the left.
func RenderBoard(w io.Writer, board *entity.Board) error {
	size := board.Size()

	var sb strings.Builder

	writeBorder(&sb, size, "┌", "┬", "┐")

	for row := -1; row < size; row++ {
		if row >= 0 {
			writeBorder(&sb, size, "├", "┼", "┤")
		}

		for col := -1; col < size; col++ {
			sb.WriteString("│ ")
			sb.WriteString(label(board, row, col))
			sb.WriteString(" ")
		}
		sb.WriteString("│\n")
	}

	writeBorder(&sb, size, "└", "┴", "┘")
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// label returns the text of a grid square; row or col -1 is the header.
func label(board *entity.Board, row, col int) string {
	switch {
	case row < 0 && col < 0:
		return " "
	case row < 0:
		return strconv.Itoa(col + 1)
	case col < 0:
		return string(rune('A' + row))
	default:
		return board.CellAt(row, col).String()
	}
}

func writeBorder(sb *strings.Builder, size int, left, middle, right string) {
	sb.WriteString(left)
	sb.WriteString(segment)
	for i := 0; i < size; i++ {
		sb.WriteString(middle)
		sb.WriteString(segment)
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}
