package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

func TestGame_MakeMove(t *testing.T) {
	t.Run("Turn alternates between players while the round runs", func(t *testing.T) {
		// Given: a fresh round started by X
		round := New(entity.RuleNormal, entity.PlayerX)

		// When: X and O each move
		require.NoError(t, round.MakeMove(0))
		assert.Equal(t, entity.PlayerO, round.Turn)

		require.NoError(t, round.MakeMove(4))

		// Then: it is X's turn again and the round continues
		assert.Equal(t, entity.PlayerX, round.Turn)
		assert.Equal(t, StatusOngoing, round.Status)
	})

	t.Run("A rejected move changes neither the board nor the turn", func(t *testing.T) {
		// Given: a round where X took the center
		round := New(entity.RuleNormal, entity.PlayerX)
		require.NoError(t, round.MakeMove(4))
		boardBefore := round.Board

		// When: O tries the occupied center and an off-board cell
		errOccupied := round.MakeMove(4)
		errRange := round.MakeMove(11)

		// Then: both are rejected, O is still to move
		assert.ErrorIs(t, errOccupied, apperror.ErrCellOccupied)
		assert.ErrorIs(t, errRange, apperror.ErrCellOutOfRange)
		assert.Equal(t, boardBefore, round.Board)
		assert.Equal(t, entity.PlayerO, round.Turn)
	})

	t.Run("Completing a line finishes the round for the mover", func(t *testing.T) {
		// Given: a round played to a top-row win for X
		round := New(entity.RuleNormal, entity.PlayerX)
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, round.MakeMove(cell))
		}

		// Then: the round is finished, X wins, nobody is to move
		assert.Equal(t, StatusFinished, round.Status)
		assert.Equal(t, entity.PlayerX, round.Winner)
		assert.Equal(t, entity.EmptyCell, round.Turn)
	})

	t.Run("Completing a line loses the round under reverse rules", func(t *testing.T) {
		// Given: a reverse-mode round played to a top-row line by X
		round := New(entity.RuleReverse, entity.PlayerX)
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, round.MakeMove(cell))
		}

		// Then: the line counts against X and O wins
		assert.Equal(t, StatusFinished, round.Status)
		assert.Equal(t, entity.PlayerO, round.Winner)
	})

	t.Run("A full board without a line is a draw", func(t *testing.T) {
		// Given: a round played to a draw
		round := New(entity.RuleNormal, entity.PlayerX)
		for _, cell := range []int{0, 4, 8, 1, 7, 6, 2, 5, 3} {
			require.NoError(t, round.MakeMove(cell))
		}

		// Then: the round is drawn
		assert.Equal(t, StatusFinished, round.Status)
		assert.Equal(t, entity.PlayerTie, round.Winner)
	})

	t.Run("Moving on a finished round panics", func(t *testing.T) {
		// Given: a finished round
		round := New(entity.RuleNormal, entity.PlayerX)
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, round.MakeMove(cell))
		}

		// Then: a further move is a defect, not an error
		assert.Panics(t, func() {
			_ = round.MakeMove(5)
		})
	})
}
