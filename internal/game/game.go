package game

import (
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is a single round played on one board from empty to terminal.
// Turn holds the mark that is awaiting a move and is cleared once the
// round finishes.
type Game struct {
	Board  entity.Board
	Mode   entity.RuleMode
	Turn   string
	Winner string
	Status string
}

// New starts a round with the given rule mode and starting mark.
func New(mode entity.RuleMode, starter string) *Game {
	return &Game{
		Board:  entity.NewBoard(),
		Mode:   mode,
		Turn:   starter,
		Status: StatusOngoing,
	}
}

// MakeMove places the awaiting player's mark into a cell and advances the
// round. A move into an occupied or out-of-range cell is rejected without
// changing any state; these are the only recoverable errors and the caller
// re-prompts the same player.
//
// Calling MakeMove on a finished round is a defect in the orchestration
// and panics.
func (that *Game) MakeMove(cell int) error {
	if that.Status == StatusFinished {
		panic("game: move requested on a finished round")
	}

	if err := that.Board.Place(cell, that.Turn); err != nil {
		return err
	}

	switch winner := that.Board.Winner(that.Mode); winner {
	case entity.PlayerX, entity.PlayerO, entity.PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Turn = entity.OpponentOf(that.Turn)
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}
