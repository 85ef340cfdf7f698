package engine

import (
	"testing"

	"github.com/miikkee/mikesnake/game"
)

func newTurn(state *game.GameState) *turn {
	you := state.You()
	return &turn{
		state:     state,
		cfg:       DefaultConfig(),
		you:       you,
		opponents: state.Opponents(),
		head:      you.Head(),
		length:    you.Length(),
		health:    you.Health,
	}
}

func TestSafetyFilter_NeckAndWalls(t *testing.T) {
	// Head at the left wall, neck above: up and left must be masked.
	state := &game.GameState{
		Width:  7,
		Height: 7,
		YouId:  "me",
		Snakes: []game.Snake{{
			Id:     "me",
			Health: 100,
			Body:   []game.Point{{X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}},
		}},
	}

	tbl := NewScoreTable()
	newTurn(state).applySafetyFilter(&tbl)

	if tbl.Safe[game.MoveUp] {
		t.Fatalf("up reverses onto the neck, must be masked")
	}
	if tbl.Safe[game.MoveLeft] {
		t.Fatalf("left leaves the board, must be masked")
	}
	if !tbl.Safe[game.MoveDown] || !tbl.Safe[game.MoveRight] {
		t.Fatalf("down/right should be safe: %+v", tbl.Safe)
	}
	if tbl.Score[game.MoveUp] != -unsafePenalty {
		t.Fatalf("unsafe move score=%v want=%v", tbl.Score[game.MoveUp], -unsafePenalty)
	}
}

func TestSafetyFilter_OwnTailIsPassable(t *testing.T) {
	// Body curls into a U; the cell left of the head is the tail, which
	// vacates this turn.
	state := &game.GameState{
		Width:  7,
		Height: 7,
		YouId:  "me",
		Snakes: []game.Snake{{
			Id:     "me",
			Health: 100,
			Body:   []game.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		}},
	}

	tbl := NewScoreTable()
	newTurn(state).applySafetyFilter(&tbl)

	if !tbl.Safe[game.MoveLeft] {
		t.Fatalf("own tail must be passable")
	}
	if tbl.Safe[game.MoveUp] {
		t.Fatalf("up is the neck, must be masked")
	}
	if tbl.Safe[game.MoveDown] {
		t.Fatalf("down leaves the board, must be masked")
	}
}

func TestSafetyFilter_OpponentBodyAndTail(t *testing.T) {
	state := &game.GameState{
		Width:  7,
		Height: 7,
		YouId:  "me",
		Snakes: []game.Snake{
			{
				Id:     "me",
				Health: 100,
				Body:   []game.Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}},
			},
			{
				// Vertical opponent right of us: (4,3) is mid-body, blocked.
				Id:     "opp",
				Health: 100,
				Body:   []game.Point{{X: 4, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 2}},
			},
			{
				// Opponent whose tail sits left of our head: passable.
				Id:     "tailer",
				Health: 100,
				Body:   []game.Point{{X: 2, Y: 5}, {X: 2, Y: 4}, {X: 2, Y: 3}},
			},
		},
	}

	tbl := NewScoreTable()
	newTurn(state).applySafetyFilter(&tbl)

	if tbl.Safe[game.MoveRight] {
		t.Fatalf("right lands on opponent mid-body, must be masked")
	}
	if !tbl.Safe[game.MoveLeft] {
		t.Fatalf("opponent tail must be passable")
	}
	if !tbl.Safe[game.MoveUp] {
		t.Fatalf("up should be safe: %+v", tbl.Safe)
	}
	if tbl.Safe[game.MoveDown] {
		t.Fatalf("down is our own neck, must be masked")
	}
}
