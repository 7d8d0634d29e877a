package bot

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// optimalShare is the probability that a bot of a given difficulty searches
// for the best move instead of playing a uniformly random legal one. The
// shares increase with difficulty, so a stronger setting is never expected
// to lose more often against the same opponent.
var optimalShare = map[entity.Difficulty]float64{
	entity.DifficultyRandom:  0.0,
	entity.DifficultyEasy:    0.5,
	entity.DifficultyMedium:  0.85,
	entity.DifficultyOptimal: 1.0,
}

// Engine selects moves for computer players. All randomness goes through
// the single rng so a fixed seed reproduces every choice.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine backed by the given randomness source. A nil
// source gets a time-seeded one.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // game moves, not crypto
	}

	return &Engine{rng: rng}
}

// ChooseMove picks one legal cell for the player holding mark. The caller
// must only invoke it while the round is in progress; a board with no legal
// moves is a defect in the orchestration and panics.
func (that *Engine) ChooseMove(board entity.Board, mark string, mode entity.RuleMode, difficulty entity.Difficulty) int {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		panic("bot: no legal moves on the board")
	}

	if that.rng.Float64() >= optimalShare[difficulty] {
		return moves[that.rng.Intn(len(moves))]
	}

	return bestMove(board, mark, mode)
}
