package entity

import (
	"errors"
	"fmt"
)

// RuleMode selects the win-condition polarity. Under RuleReverse completing
// three in a row loses the round instead of winning it.
type RuleMode string

const (
	RuleNormal  RuleMode = "normal"
	RuleReverse RuleMode = "reverse"
)

// Difficulty orders bot strength from a fully random mover up to a fully
// optimal one.
type Difficulty int

const (
	DifficultyRandom Difficulty = iota + 1
	DifficultyEasy
	DifficultyMedium
	DifficultyOptimal
)

func (that Difficulty) String() string {
	switch that {
	case DifficultyRandom:
		return "random"
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyOptimal:
		return "optimal"
	default:
		return fmt.Sprintf("difficulty(%d)", int(that))
	}
}

const (
	KindHuman = "human"
	KindBot   = "bot"
)

// PlayerSlot configures one side of the board. Difficulty is only
// meaningful for bot players.
type PlayerSlot struct {
	Kind       string     `json:"kind"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

func (that PlayerSlot) IsBot() bool {
	return that.Kind == KindBot
}

const (
	PolicyBestOfRounds         = "best-of-rounds"
	PolicyBestOfDecisiveRounds = "best-of-decisive-rounds"
	PolicyFirstToScore         = "first-to-score"
	PolicyUnlimited            = "unlimited"
)

// EndingPolicy decides when a session of rounds is complete. Target is the
// round or score count for the bounded policies and ignored for
// PolicyUnlimited.
type EndingPolicy struct {
	Kind   string `json:"kind"`
	Target int    `json:"target,omitempty"`
}

var (
	ErrUnknownPolicy     = errors.New("unknown ending policy")
	ErrInvalidTarget     = errors.New("ending policy target must be positive")
	ErrUnknownRuleMode   = errors.New("unknown rule mode")
	ErrUnknownKind       = errors.New("unknown player kind")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

func (that EndingPolicy) Validate() error {
	switch that.Kind {
	case PolicyBestOfRounds, PolicyBestOfDecisiveRounds, PolicyFirstToScore:
		if that.Target <= 0 {
			return fmt.Errorf("%w: %s(%d)", ErrInvalidTarget, that.Kind, that.Target)
		}
		return nil
	case PolicyUnlimited:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, that.Kind)
	}
}

// Rules holds the validated session parameters. It is produced once by the
// setup flow and consumed read-only by the core.
type Rules struct {
	PlayerX PlayerSlot   `json:"player_x"`
	PlayerO PlayerSlot   `json:"player_o"`
	Mode    RuleMode     `json:"mode"`
	Policy  EndingPolicy `json:"policy"`
}

func (that Rules) Validate() error {
	if that.Mode != RuleNormal && that.Mode != RuleReverse {
		return fmt.Errorf("%w: %q", ErrUnknownRuleMode, that.Mode)
	}

	for _, slot := range []PlayerSlot{that.PlayerX, that.PlayerO} {
		switch slot.Kind {
		case KindHuman:
		case KindBot:
			if slot.Difficulty < DifficultyRandom || slot.Difficulty > DifficultyOptimal {
				return fmt.Errorf("%w: %d", ErrUnknownDifficulty, slot.Difficulty)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownKind, slot.Kind)
		}
	}

	return that.Policy.Validate()
}

// Slot returns the configuration of the player holding the given mark.
func (that Rules) Slot(mark string) PlayerSlot {
	if mark == PlayerX {
		return that.PlayerX
	}
	return that.PlayerO
}
