package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/bot"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/setup"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

var ErrNotATerminal = errors.New("stdout is not a terminal")

// RunApp - runs the application: resolves the session rules, plays the
// session in the terminal, and prints the final scores.
func RunApp(logger *slog.Logger, conf *config.Config, opts setup.Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNotATerminal
	}

	opts.Defaults = conf.Defaults
	rules, err := setup.Resolve(opts)
	if err != nil {
		return fmt.Errorf("could not resolve session rules: %w", err)
	}

	session, err := usecase.NewSession(logger, rules, bot.NewEngine(nil))
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	if err = terminal.Run(ctx, logger, session); err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}

	printSummary(session.Summary())
	log.Info("session over", "session_id", session.ID())

	return nil
}

func printSummary(summary usecase.Summary) {
	fmt.Printf("final score: X %d · O %d · draws %d · rounds %d\n",
		summary.Scores.WinsX, summary.Scores.WinsO, summary.Scores.Draws, summary.Scores.RoundsPlayed)

	if summary.Leader == entity.PlayerTie {
		fmt.Println("the session ends level")
		return
	}
	fmt.Printf("player %s takes the session\n", summary.Leader)
}
