// Package engine implements the per-turn movement decision for a heuristic
// Battlesnake agent.
//
// The engine is a pure function of the turn snapshot: a safety filter
// produces a per-move mask, a set of scoring passes accumulate into a score
// table gated by that mask, and the aggregator picks the arg-max move. No
// state survives between calls, so distinct games can be decided
// concurrently without synchronization.
package engine

import (
	"errors"
	"fmt"

	"github.com/miikkee/mikesnake/game"
)

// Mode labels which posture produced a decision. It is informational only,
// surfaced for logging and game records.
type Mode string

const (
	ModeSurvival   Mode = "survival"
	ModeAggressive Mode = "aggressive"
	ModeCritical   Mode = "critical"
)

// Decision is the engine output for one turn.
type Decision struct {
	Move      int
	Mode      Mode
	Threshold int
	Scores    ScoreTable
}

// turn bundles the snapshot-derived values every scoring pass needs.
type turn struct {
	state     *game.GameState
	cfg       Config
	you       *game.Snake
	opponents []*game.Snake
	head      game.Point
	length    int
	health    int
}

// Decide chooses a move for the ego snake in state.
//
// It returns an error only on caller contract violations: a missing ego
// snake, an ego body too short to have a neck, or degenerate board
// dimensions. A board with no survivable move is not an error; the least-bad
// move is returned instead.
func Decide(state *game.GameState, cfg Config) (Decision, error) {
	you, err := validate(state)
	if err != nil {
		return Decision{}, err
	}

	t := &turn{
		state:     state,
		cfg:       cfg,
		you:       you,
		opponents: state.Opponents(),
		head:      you.Head(),
		length:    you.Length(),
		health:    you.Health,
	}

	tbl := NewScoreTable()
	t.applySafetyFilter(&tbl)
	t.evaluateSpace(&tbl)

	threshold := aggressionThreshold(t.length, t.opponents)
	aggressive := t.length >= threshold && t.health > cfg.LowHealth
	critical := t.health < cfg.CriticalHealth
	hungry := t.health < cfg.LowHealth

	switch {
	case critical && len(t.opponents) > 0:
		t.evaluateEmergency(&tbl)
	case len(state.Food) > 0 && (hungry || !aggressive):
		t.evaluateFoodSeeking(&tbl, critical, hungry)
	}

	if aggressive && len(t.opponents) > 0 {
		t.evaluatePursuit(&tbl)
	}
	if len(t.opponents) > 0 {
		t.evaluateHeadToHead(&tbl)
	}
	t.evaluateCenterPreference(&tbl)

	mode := ModeSurvival
	switch {
	case critical:
		mode = ModeCritical
	case aggressive:
		mode = ModeAggressive
	}

	return Decision{
		Move:      tbl.Best(),
		Mode:      mode,
		Threshold: threshold,
		Scores:    tbl,
	}, nil
}

func validate(state *game.GameState) (*game.Snake, error) {
	if state == nil {
		return nil, errors.New("nil game state")
	}
	if state.Width < 1 || state.Height < 1 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", state.Width, state.Height)
	}
	you := state.You()
	if you == nil {
		return nil, fmt.Errorf("ego snake %q not found in snapshot", state.YouId)
	}
	if len(you.Body) < 2 {
		return nil, fmt.Errorf("ego snake body has %d segments, need at least 2", len(you.Body))
	}
	return you, nil
}
