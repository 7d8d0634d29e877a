package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/game"
)

func seededEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed))) //nolint:gosec // deterministic test seed
}

// playBots runs one round with both marks played by the engine at the
// given difficulties and returns the winner.
func playBots(t *testing.T, mode entity.RuleMode, engine *Engine, diffX, diffO entity.Difficulty) string {
	t.Helper()

	round := game.New(mode, entity.PlayerX)
	for !round.IsFinished() {
		difficulty := diffX
		if round.Turn == entity.PlayerO {
			difficulty = diffO
		}

		cell := engine.ChooseMove(round.Board, round.Turn, mode, difficulty)
		require.NoError(t, round.MakeMove(cell))
	}

	return round.Winner
}

func TestEngine_ChooseMove(t *testing.T) {
	t.Run("Optimal play against itself always draws", func(t *testing.T) {
		// Given: two optimal players on an empty board
		engine := seededEngine(1)

		// When: the round is played out
		winner := playBots(t, entity.RuleNormal, engine, entity.DifficultyOptimal, entity.DifficultyOptimal)

		// Then: the classical result holds
		assert.Equal(t, entity.PlayerTie, winner)
	})

	t.Run("Optimal bot blocks the only losing threat", func(t *testing.T) {
		// Given: X threatens the top row and O is to move
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		engine := seededEngine(1)

		// When: O picks a move at optimal difficulty
		cell := engine.ChooseMove(board, entity.PlayerO, entity.RuleNormal, entity.DifficultyOptimal)

		// Then: only blocking cell 2 avoids the loss
		assert.Equal(t, 2, cell)
	})

	t.Run("Optimal bot takes an immediate win over a slower one", func(t *testing.T) {
		// Given: X can complete the top row right away
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		engine := seededEngine(1)

		// When: X picks a move at optimal difficulty
		cell := engine.ChooseMove(board, entity.PlayerX, entity.RuleNormal, entity.DifficultyOptimal)

		// Then: the immediate win is taken
		assert.Equal(t, 2, cell)
	})

	t.Run("Optimal bot refuses to complete a line under reverse rules", func(t *testing.T) {
		// Given: a reverse-mode board where X could complete the top row
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}
		engine := seededEngine(1)

		// When: X picks a move at optimal difficulty
		cell := engine.ChooseMove(board, entity.PlayerX, entity.RuleReverse, entity.DifficultyOptimal)

		// Then: completing the line would hand O the round
		assert.NotEqual(t, 2, cell)
	})

	t.Run("Optimal bot never loses to a random one", func(t *testing.T) {
		// Given: a shared seeded engine
		engine := seededEngine(7)

		// When: playing a batch of rounds, optimal as O
		for i := 0; i < 20; i++ {
			winner := playBots(t, entity.RuleNormal, engine, entity.DifficultyRandom, entity.DifficultyOptimal)

			// Then: the optimal side wins or draws every time
			assert.NotEqual(t, entity.PlayerX, winner)
		}
	})

	t.Run("The same seed reproduces the same choices", func(t *testing.T) {
		// Given: two engines sharing a seed
		first := seededEngine(42)
		second := seededEngine(42)
		board := entity.NewBoard()

		// When: both pick a random-difficulty move from the same position
		cellA := first.ChooseMove(board, entity.PlayerX, entity.RuleNormal, entity.DifficultyRandom)
		cellB := second.ChooseMove(board, entity.PlayerX, entity.RuleNormal, entity.DifficultyRandom)

		// Then: the choices agree
		assert.Equal(t, cellA, cellB)
	})

	t.Run("A board with no legal moves panics", func(t *testing.T) {
		// Given: a full board
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}
		engine := seededEngine(1)

		// Then: invoking the engine is a caller defect
		assert.Panics(t, func() {
			engine.ChooseMove(board, entity.PlayerX, entity.RuleNormal, entity.DifficultyOptimal)
		})
	})
}

func TestBestMove_TieBreak(t *testing.T) {
	t.Run("Equally scored moves resolve to the lowest cell index", func(t *testing.T) {
		// Given: X has immediate wins at cells 2, 7 and 8
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.EmptyCell, entity.EmptyCell,
		}

		// When: searching for X's best move
		cell := bestMove(board, entity.PlayerX, entity.RuleNormal)

		// Then: the lowest winning index is picked
		assert.Equal(t, 2, cell)
	})
}
