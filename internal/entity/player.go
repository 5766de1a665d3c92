package entity

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Player identifies a seat. PlayerX always moves first.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Mark returns the cell value the player writes on the board.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return MarkO
	}
	return MarkX
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}
