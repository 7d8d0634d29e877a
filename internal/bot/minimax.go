package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// bestMove runs a full minimax search and returns the highest scoring legal
// move for mark. Equally scored moves tie-break to the lowest cell index,
// which keeps optimal play deterministic.
func bestMove(board entity.Board, mark string, mode entity.RuleMode) int {
	bestCell := -1
	bestScore := math.MinInt

	for _, cell := range board.LegalMoves() {
		next := board
		next[cell] = mark

		if score := -search(next, entity.OpponentOf(mark), mode); score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell
}

// search scores a position from the perspective of the player about to
// move, negamax style. Terminal outcomes are worth the number of empty
// cells plus one, so a win that arrives sooner outscores a later one and a
// loss that arrives later outscores a sooner one. The outcome polarity
// comes from Board.Winner, so reverse-mode rounds are evaluated with the
// exact rule the board reports.
func search(board entity.Board, toMove string, mode entity.RuleMode) int {
	moves := board.LegalMoves()

	switch winner := board.Winner(mode); winner {
	case entity.PlayerTie:
		return 0
	case toMove:
		return len(moves) + 1
	case entity.OpponentOf(toMove):
		return -(len(moves) + 1)
	}

	best := math.MinInt
	for _, cell := range moves {
		next := board
		next[cell] = toMove

		if score := -search(next, entity.OpponentOf(toMove), mode); score > best {
			best = score
		}
	}

	return best
}
