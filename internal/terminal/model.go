package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// botDelay paces computer moves so they are visible to the player.
const botDelay = 400 * time.Millisecond

type phase int

const (
	phasePlaying phase = iota
	phaseRoundOver
)

// botTickMsg asks the update loop to play the awaiting bot's move. All
// session mutation happens inside Update, never in command goroutines.
type botTickMsg struct{}

func botTick() tea.Cmd {
	return tea.Tick(botDelay, func(time.Time) tea.Msg {
		return botTickMsg{}
	})
}

// Model is the interactive game screen: a cursor over the 3x3 grid, the
// running score line, and the round-over banner.
type Model struct {
	logger  *slog.Logger
	session *usecase.Session

	keys   keyMap
	help   help.Model
	phase  phase
	cursor int
	notice string
}

func New(logger *slog.Logger, session *usecase.Session) Model {
	return Model{
		logger:  logger.With("component", "terminal"),
		session: session,
		keys:    newKeyMap(),
		help:    help.New(),
		cursor:  4,
	}
}

func (that Model) Init() tea.Cmd {
	if that.session.AwaitingBot() {
		return botTick()
	}
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
		return that, nil

	case botTickMsg:
		return that.playBot()

	case tea.KeyMsg:
		return that.handleKey(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, that.keys.Quit) {
		if that.phase == phaseRoundOver {
			// Quitting between rounds ends the session cleanly;
			// unlimited sessions only ever stop here.
			that.session.Finish()
		}
		return that, tea.Quit
	}

	if that.phase == phaseRoundOver {
		if key.Matches(msg, that.keys.Next) && !that.session.IsComplete() {
			that.session.NextRound()
			that.phase = phasePlaying
			that.notice = ""
			if that.session.AwaitingBot() {
				return that, botTick()
			}
		}
		return that, nil
	}

	switch {
	case key.Matches(msg, that.keys.Up):
		if that.cursor >= 3 {
			that.cursor -= 3
		}
	case key.Matches(msg, that.keys.Down):
		if that.cursor < 6 {
			that.cursor += 3
		}
	case key.Matches(msg, that.keys.Left):
		if that.cursor%3 > 0 {
			that.cursor--
		}
	case key.Matches(msg, that.keys.Right):
		if that.cursor%3 < 2 {
			that.cursor++
		}
	case key.Matches(msg, that.keys.Place):
		return that.playHuman()
	}

	return that, nil
}

func (that Model) playHuman() (tea.Model, tea.Cmd) {
	if that.session.AwaitingBot() || that.session.RoundOver() {
		return that, nil
	}

	if err := that.session.HumanMove(that.cursor); err != nil {
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			that.notice = "that cell is already taken"
		case errors.Is(err, apperror.ErrCellOutOfRange):
			that.notice = "that cell is off the board"
		default:
			that.logger.Error("unexpected move rejection", "error", err)
			that.notice = err.Error()
		}
		return that, nil
	}

	that.notice = ""

	return that.afterMove()
}

func (that Model) playBot() (tea.Model, tea.Cmd) {
	if !that.session.AwaitingBot() {
		return that, nil
	}

	if _, err := that.session.BotMove(); err != nil {
		// The engine only picks legal cells; surfacing this means a bug.
		that.logger.Error("bot move failed", "error", err)
		return that, tea.Quit
	}

	return that.afterMove()
}

func (that Model) afterMove() (tea.Model, tea.Cmd) {
	if that.session.RoundOver() {
		that.phase = phaseRoundOver
		return that, nil
	}

	if that.session.AwaitingBot() {
		return that, botTick()
	}

	return that, nil
}

func (that Model) View() string {
	var view strings.Builder

	title := "tic-tac-toe"
	if that.session.Rules().Mode == entity.RuleReverse {
		title += " · reverse"
	}
	view.WriteString(titleStyle.Render(title) + "\n\n")

	view.WriteString(that.viewBoard() + "\n\n")

	scores := that.session.Scores()
	view.WriteString(scoreStyle.Render(fmt.Sprintf(
		"X %d · O %d · draws %d · rounds %d",
		scores.WinsX, scores.WinsO, scores.Draws, scores.RoundsPlayed,
	)) + "\n")

	view.WriteString(that.viewStatus() + "\n")

	if that.notice != "" {
		view.WriteString(warnStyle.Render(that.notice) + "\n")
	}

	view.WriteString("\n" + that.help.View(that.keys))

	return view.String()
}

func (that Model) viewBoard() string {
	cells := that.session.Round().Board.Cells()

	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cols := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			idx := row*3 + col
			cols = append(cols, that.viewCell(idx, cells[idx]))
		}
		rows = append(rows, strings.Join(cols, "│"))
	}

	grid := strings.Join(rows, "\n───┼───┼───\n")

	return boardStyle.Render(grid)
}

func (that Model) viewCell(idx int, mark string) string {
	label := " "
	switch mark {
	case entity.PlayerX:
		label = markXStyle.Render(mark)
	case entity.PlayerO:
		label = markOStyle.Render(mark)
	}

	style := cellStyle
	if idx == that.cursor && that.phase == phasePlaying && !that.session.AwaitingBot() {
		style = cursorStyle
	}

	return style.Render(label)
}

func (that Model) viewStatus() string {
	if that.phase == phaseRoundOver {
		round := that.session.Round()

		var banner string
		switch round.Winner {
		case entity.PlayerTie:
			banner = "round drawn"
		default:
			banner = fmt.Sprintf("player %s wins the round", round.Winner)
		}

		if that.session.IsComplete() {
			return bannerStyle.Render(banner + ". match over, press q")
		}
		return bannerStyle.Render(banner + ". enter for the next round, q to stop")
	}

	turn := that.session.Round().Turn
	if that.session.AwaitingBot() {
		return scoreStyle.Render(fmt.Sprintf("computer (%s) is thinking...", turn))
	}
	return scoreStyle.Render(fmt.Sprintf("your move, player %s", turn))
}

// Run drives the session through an alternate-screen program until the
// match completes, the player quits, or the context is canceled.
func Run(ctx context.Context, logger *slog.Logger, session *usecase.Session) error {
	program := tea.NewProgram(New(logger, session), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("terminal program: %w", err)
	}

	return nil
}
