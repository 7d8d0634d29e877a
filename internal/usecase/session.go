package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/bot"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/game"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/match"
)

// Session drives one match: it owns the current round, dispatches moves
// from the presentation layer or the bot engine depending on whose turn it
// is, and books every round outcome into the match exactly once.
type Session struct {
	logger *slog.Logger

	id     string
	rules  entity.Rules
	engine *bot.Engine
	match  *match.Match
	round  *game.Game
}

// NewSession validates the rules, creates the match and starts its first
// round.
func NewSession(logger *slog.Logger, rules entity.Rules, engine *bot.Engine) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session rules: %w", err)
	}

	session := &Session{
		id:     uuid.NewString(),
		rules:  rules,
		engine: engine,
		match:  match.New(rules.Mode, rules.Policy),
	}
	session.logger = logger.With("component", "session", "session_id", session.id)

	session.round = session.match.StartRound()
	session.logger.Info("session started",
		"mode", rules.Mode,
		"policy", rules.Policy.Kind,
		"player_x", rules.PlayerX.Kind,
		"player_o", rules.PlayerO.Kind,
	)

	return session, nil
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Rules() entity.Rules {
	return that.rules
}

// Round exposes the round in play for rendering.
func (that *Session) Round() *game.Game {
	return that.round
}

func (that *Session) Scores() match.State {
	return that.match.State()
}

func (that *Session) IsComplete() bool {
	return that.match.IsComplete()
}

// RoundOver reports whether the current round has reached a terminal state.
func (that *Session) RoundOver() bool {
	return that.round.IsFinished()
}

// AwaitingBot reports whether the next move belongs to a computer player.
func (that *Session) AwaitingBot() bool {
	return !that.round.IsFinished() && that.rules.Slot(that.round.Turn).IsBot()
}

// HumanMove applies a move coming from the presentation layer. Occupied and
// out-of-range cells are rejected with the board untouched; the caller
// re-prompts the same player.
func (that *Session) HumanMove(cell int) error {
	if err := that.apply(cell); err != nil {
		return fmt.Errorf("human move rejected: %w", err)
	}

	return nil
}

// BotMove asks the engine for the awaiting bot's move and applies it. The
// engine only ever picks legal cells, so a rejection here is a defect.
func (that *Session) BotMove() (int, error) {
	slot := that.rules.Slot(that.round.Turn)
	cell := that.engine.ChooseMove(that.round.Board, that.round.Turn, that.rules.Mode, slot.Difficulty)

	if err := that.apply(cell); err != nil {
		return 0, fmt.Errorf("bot move rejected: %w", err)
	}

	return cell, nil
}

func (that *Session) apply(cell int) error {
	mark := that.round.Turn

	if err := that.round.MakeMove(cell); err != nil {
		return err
	}

	that.logger.Debug("move applied", "mark", mark, "cell", cell)

	if that.round.IsFinished() {
		that.match.RecordOutcome(that.round.Winner)
		that.logger.Info("round finished",
			"winner", that.round.Winner,
			"rounds_played", that.match.State().RoundsPlayed,
		)
	}

	return nil
}

// NextRound swaps in a fresh board when the match continues.
func (that *Session) NextRound() {
	that.round = that.match.StartRound()
}

// Finish ends the session on external request, between rounds. Unlimited
// sessions only stop this way.
func (that *Session) Finish() {
	if !that.match.IsComplete() {
		that.match.Finish()
	}
}

// Summary is the final-score report handed to the presentation layer once
// the session completes.
type Summary struct {
	ID     string      `json:"id"`
	Scores match.State `json:"scores"`
	Leader string      `json:"leader"`
}

func (that *Session) Summary() Summary {
	state := that.match.State()

	return Summary{
		ID:     that.id,
		Scores: state,
		Leader: state.Leader(),
	}
}
