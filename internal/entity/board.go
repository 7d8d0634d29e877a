package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

// WinCombos lists the eight winning lines: rows, columns, diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order, cell 0 is the top-left corner.
type Board [9]string

func NewBoard() Board {
	return Board{}
}

// OpponentOf returns the mark of the other player.
func OpponentOf(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Place writes a mark into a cell. The board is unchanged on error.
func (that *Board) Place(cell int, mark string) error {
	if cell < 0 || cell >= len(that) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

// Winner evaluates the board under the given rule mode.
//
// It returns the winning mark, PlayerTie when the board is full with no
// completed line, or EmptyCell while the game is still in progress. Under
// RuleReverse a completed line counts against the player who made it, so
// the opponent is reported as the winner.
func (that Board) Winner(mode RuleMode) string {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			if mode == RuleReverse {
				return OpponentOf(a)
			}
			return a
		}
	}

	for _, cell := range that {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

// LegalMoves returns the empty cell indices in ascending order. The order
// is fixed so that move evaluation stays reproducible.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Cells returns a copy of the board contents for read-only consumers.
func (that Board) Cells() [9]string {
	return that
}
