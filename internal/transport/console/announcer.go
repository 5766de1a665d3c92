package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Announcer shows the board and the computer's moves to the players.
type Announcer struct {
	out io.Writer
}

func NewAnnouncer(out io.Writer) *Announcer {
	return &Announcer{out: out}
}

func (that *Announcer) GameStarted(game *entity.Game) error {
	return RenderBoard(that.out, game.Board)
}

func (that *Announcer) MoveApplied(game *entity.Game, move entity.Move, byComputer bool) error {
	if byComputer {
		if _, err := fmt.Fprintf(that.out, "Step %d: Computer %s chooses %s.\n", game.Step, game.Turn, move); err != nil {
			return fmt.Errorf("failed to announce move: %w", err)
		}
	}

	return RenderBoard(that.out, game.Board)
}
