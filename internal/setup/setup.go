package setup

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Player answers: a human seat or a bot of the named strength.
const (
	answerHuman   = "human"
	answerRandom  = "random"
	answerEasy    = "easy"
	answerMedium  = "medium"
	answerOptimal = "optimal"
)

var ErrUnknownAnswer = errors.New("unknown setup answer")

var difficultyByAnswer = map[string]entity.Difficulty{
	answerRandom:  entity.DifficultyRandom,
	answerEasy:    entity.DifficultyEasy,
	answerMedium:  entity.DifficultyMedium,
	answerOptimal: entity.DifficultyOptimal,
}

// Options carries the command-line answers. Empty fields are asked
// interactively; config defaults pre-select the menu entries.
type Options struct {
	PlayerX string
	PlayerO string
	Mode    string
	Policy  string
	Target  int

	Defaults config.Defaults
}

// Resolve produces the validated session rules, prompting with a menu for
// anything the command line left unset.
func Resolve(opts Options) (entity.Rules, error) {
	playerX := opts.PlayerX
	playerO := opts.PlayerO
	mode := opts.Mode
	policy := opts.Policy
	target := strconv.Itoa(opts.Defaults.Target)
	if opts.Target > 0 {
		target = strconv.Itoa(opts.Target)
	}

	var groups []*huh.Group

	if playerX == "" {
		playerX = answerHuman
		groups = append(groups, huh.NewGroup(playerSelect("Player X", &playerX)))
	}

	if playerO == "" {
		playerO = defaultBotAnswer(opts.Defaults.Difficulty)
		groups = append(groups, huh.NewGroup(playerSelect("Player O", &playerO)))
	}

	if mode == "" {
		mode = opts.Defaults.RuleMode
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Rule mode").
				Description("In reverse mode, three in a row loses").
				Options(
					huh.NewOption("Normal", string(entity.RuleNormal)),
					huh.NewOption("Reverse", string(entity.RuleReverse)),
				).
				Value(&mode),
		))
	}

	if policy == "" {
		policy = opts.Defaults.EndingPolicy
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session length").
				Options(
					huh.NewOption("Play until I quit", entity.PolicyUnlimited),
					huh.NewOption("Best of N rounds", entity.PolicyBestOfRounds),
					huh.NewOption("Best of N decisive rounds", entity.PolicyBestOfDecisiveRounds),
					huh.NewOption("First to N wins", entity.PolicyFirstToScore),
				).
				Value(&policy),
		))
	}

	if opts.Target == 0 && opts.Policy != entity.PolicyUnlimited {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("N").
				Validate(validateTarget).
				Value(&target),
		).WithHideFunc(func() bool {
			return policy == entity.PolicyUnlimited
		}))
	}

	if len(groups) > 0 {
		if err := huh.NewForm(groups...).Run(); err != nil {
			return entity.Rules{}, fmt.Errorf("setup menu: %w", err)
		}
	}

	return buildRules(playerX, playerO, mode, policy, target)
}

func playerSelect(title string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("Human", answerHuman),
			huh.NewOption("Computer (random)", answerRandom),
			huh.NewOption("Computer (easy)", answerEasy),
			huh.NewOption("Computer (medium)", answerMedium),
			huh.NewOption("Computer (optimal)", answerOptimal),
		).
		Value(value)
}

func buildRules(playerX, playerO, mode, policy, target string) (entity.Rules, error) {
	slotX, err := parseSlot(playerX)
	if err != nil {
		return entity.Rules{}, err
	}

	slotO, err := parseSlot(playerO)
	if err != nil {
		return entity.Rules{}, err
	}

	targetN, err := strconv.Atoi(target)
	if err != nil {
		return entity.Rules{}, fmt.Errorf("%w: target %q", ErrUnknownAnswer, target)
	}

	rules := entity.Rules{
		PlayerX: slotX,
		PlayerO: slotO,
		Mode:    entity.RuleMode(mode),
		Policy:  entity.EndingPolicy{Kind: policy},
	}
	if policy != entity.PolicyUnlimited {
		rules.Policy.Target = targetN
	}

	if err = rules.Validate(); err != nil {
		return entity.Rules{}, fmt.Errorf("resolved rules are invalid: %w", err)
	}

	return rules, nil
}

func parseSlot(answer string) (entity.PlayerSlot, error) {
	if answer == answerHuman {
		return entity.PlayerSlot{Kind: entity.KindHuman}, nil
	}

	difficulty, ok := difficultyByAnswer[answer]
	if !ok {
		return entity.PlayerSlot{}, fmt.Errorf("%w: player %q", ErrUnknownAnswer, answer)
	}

	return entity.PlayerSlot{Kind: entity.KindBot, Difficulty: difficulty}, nil
}

func defaultBotAnswer(difficulty int) string {
	for answer, d := range difficultyByAnswer {
		if int(d) == difficulty {
			return answer
		}
	}
	return answerOptimal
}

func validateTarget(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}
