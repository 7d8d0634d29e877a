package match

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/game"
)

const (
	StatusAwaitingRound   = "awaiting-round"
	StatusRoundInProgress = "round-in-progress"
	StatusComplete        = "complete"
)

// State accumulates scores across the rounds of one session.
type State struct {
	WinsX        int `json:"wins_x"`
	WinsO        int `json:"wins_o"`
	Draws        int `json:"draws"`
	RoundsPlayed int `json:"rounds_played"`
}

// Leader returns the mark with the higher win count, or PlayerTie when the
// session is level.
func (that State) Leader() string {
	switch {
	case that.WinsX > that.WinsO:
		return entity.PlayerX
	case that.WinsO > that.WinsX:
		return entity.PlayerO
	default:
		return entity.PlayerTie
	}
}

// Match sequences rounds under one ending policy. The starting mark
// strictly alternates between rounds, X first, so neither player keeps the
// first-move advantage for a whole session.
type Match struct {
	mode   entity.RuleMode
	policy entity.EndingPolicy

	state       State
	status      string
	nextStarter string
}

// New builds a match for the given rules. An unreachable ending policy is a
// configuration defect upstream and panics.
func New(mode entity.RuleMode, policy entity.EndingPolicy) *Match {
	if err := policy.Validate(); err != nil {
		panic(fmt.Sprintf("match: %v", err))
	}

	return &Match{
		mode:        mode,
		policy:      policy,
		status:      StatusAwaitingRound,
		nextStarter: entity.PlayerX,
	}
}

// StartRound hands out a fresh round on an empty board. It panics unless
// the match is between rounds.
func (that *Match) StartRound() *game.Game {
	if that.status != StatusAwaitingRound {
		panic(fmt.Sprintf("match: round started while %s", that.status))
	}

	that.status = StatusRoundInProgress

	round := game.New(that.mode, that.nextStarter)
	that.nextStarter = entity.OpponentOf(that.nextStarter)

	return round
}

// RecordOutcome books a finished round's result, then evaluates the ending
// policy. Outcomes are counted exactly once per round.
func (that *Match) RecordOutcome(winner string) {
	if that.status != StatusRoundInProgress {
		panic(fmt.Sprintf("match: outcome recorded while %s", that.status))
	}

	switch winner {
	case entity.PlayerX:
		that.state.WinsX++
	case entity.PlayerO:
		that.state.WinsO++
	case entity.PlayerTie:
		that.state.Draws++
	default:
		panic(fmt.Sprintf("match: unknown round outcome %q", winner))
	}
	that.state.RoundsPlayed++

	if that.policyMet() {
		that.status = StatusComplete
	} else {
		that.status = StatusAwaitingRound
	}
}

// Finish ends the session on external request, between rounds only. This
// is how unlimited sessions stop.
func (that *Match) Finish() {
	if that.status == StatusRoundInProgress {
		panic("match: finished mid-round")
	}

	that.status = StatusComplete
}

func (that *Match) policyMet() bool {
	switch that.policy.Kind {
	case entity.PolicyBestOfRounds:
		return that.state.RoundsPlayed >= that.policy.Target
	case entity.PolicyBestOfDecisiveRounds:
		return that.state.WinsX+that.state.WinsO >= that.policy.Target
	case entity.PolicyFirstToScore:
		return that.state.WinsX >= that.policy.Target || that.state.WinsO >= that.policy.Target
	case entity.PolicyUnlimited:
		return false
	default:
		panic(fmt.Sprintf("match: unknown ending policy %q", that.policy.Kind))
	}
}

func (that *Match) Status() string {
	return that.status
}

func (that *Match) State() State {
	return that.state
}

func (that *Match) IsComplete() bool {
	return that.status == StatusComplete
}
