package suite

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/bot"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

const seed = 1

// Suite is the shared harness for end-to-end session tests: a silent
// logger and a deterministically seeded engine, so whole sessions replay
// identically between runs.
type Suite struct {
	*testing.T
	Logger *slog.Logger
	Engine *bot.Engine
}

func New(t *testing.T) *Suite {
	t.Helper()

	return &Suite{
		T:      t,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Engine: bot.NewEngine(rand.New(rand.NewSource(seed))), //nolint:gosec // deterministic test seed
	}
}

func (that *Suite) NewSession(rules entity.Rules) *usecase.Session {
	that.Helper()

	session, err := usecase.NewSession(that.Logger, rules, that.Engine)
	if err != nil {
		that.Fatalf("could not create session: %v", err)
	}

	return session
}

// PlayBotMoves drives the session until a human is to move or the round
// finishes.
func (that *Suite) PlayBotMoves(session *usecase.Session) {
	that.Helper()

	for session.AwaitingBot() {
		if _, err := session.BotMove(); err != nil {
			that.Fatalf("bot move failed: %v", err)
		}
	}
}
