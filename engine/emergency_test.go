package engine

import (
	"testing"

	"github.com/miikkee/mikesnake/game"
)

func TestEvaluateEmergency_FoodWinsOverMarginalHunt(t *testing.T) {
	// Food 4 away (projects 500/5=100) against a prey worth 70: hunting
	// does not clear double the food score, so the food pull must win.
	state := &game.GameState{
		Width:  11,
		Height: 11,
		YouId:  "me",
		Food:   []game.Point{{X: 2, Y: 6}},
		Snakes: []game.Snake{
			{
				Id:     "me",
				Health: 14,
				Body:   []game.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			},
			{
				Id:     "prey",
				Health: 60,
				Body:   []game.Point{{X: 5, Y: 2}, {X: 6, Y: 2}, {X: 7, Y: 2}, {X: 8, Y: 2}},
			},
		},
	}

	tbl := NewScoreTable()
	tr := newTurn(state)
	tr.applySafetyFilter(&tbl)
	tr.evaluateEmergency(&tbl)

	// The food projection is the flat emergency weight over distance+1.
	// Moving up closes on the food: 500/4. Had the hunt won the
	// arbitration, up would carry 70/5 instead.
	if tbl.Score[game.MoveUp] != 125 {
		t.Fatalf("up=%v want=125 (food projection)", tbl.Score[game.MoveUp])
	}
	if tbl.Score[game.MoveUp] <= tbl.Score[game.MoveRight] {
		t.Fatalf("food pull up=%v should beat prey direction right=%v",
			tbl.Score[game.MoveUp], tbl.Score[game.MoveRight])
	}
}

func TestEvaluateEmergency_HuntWinsWhenClearlyBetter(t *testing.T) {
	// Close five-segment prey (score 250-20-100=130) against far food
	// (500/9~55.6): the hunt clears the 2x bar on a safe path.
	state := &game.GameState{
		Width:  11,
		Height: 11,
		YouId:  "me",
		Food:   []game.Point{{X: 2, Y: 10}},
		Snakes: []game.Snake{
			{
				Id:     "me",
				Health: 14,
				Body: []game.Point{
					{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
					{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
				},
			},
			{
				Id:     "prey",
				Health: 60,
				Body:   []game.Point{{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2}, {X: 7, Y: 2}, {X: 8, Y: 2}},
			},
		},
	}

	tbl := NewScoreTable()
	tr := newTurn(state)
	tr.applySafetyFilter(&tbl)
	tr.evaluateEmergency(&tbl)

	// The hunt projects its own composite score: 130/2 on the closing move.
	if tbl.Score[game.MoveRight] != 65 {
		t.Fatalf("right=%v want=65 (hunt projection)", tbl.Score[game.MoveRight])
	}
	if tbl.Score[game.MoveRight] <= tbl.Score[game.MoveUp] {
		t.Fatalf("hunt pull right=%v should beat food direction up=%v",
			tbl.Score[game.MoveRight], tbl.Score[game.MoveUp])
	}
}

func TestEvaluateEmergency_RivalPressureDisqualifiesHunt(t *testing.T) {
	// Same prey as above, but an equal-length rival one cell from the prey
	// adds 200/2 risk, dropping the hunt below the qualifying score. The
	// engine must fall back to the far food.
	state := &game.GameState{
		Width:  11,
		Height: 11,
		YouId:  "me",
		Food:   []game.Point{{X: 2, Y: 10}},
		Snakes: []game.Snake{
			{
				Id:     "me",
				Health: 14,
				Body: []game.Point{
					{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2},
					{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
				},
			},
			{
				Id:     "prey",
				Health: 60,
				Body:   []game.Point{{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2}, {X: 7, Y: 2}, {X: 8, Y: 2}},
			},
			{
				Id:     "rival",
				Health: 100,
				Body:   stackedBody(game.Point{X: 4, Y: 3}, 7),
			},
		},
	}

	tbl := NewScoreTable()
	tr := newTurn(state)
	tr.applySafetyFilter(&tbl)
	tr.evaluateEmergency(&tbl)

	if tbl.Score[game.MoveUp] != 62.5 {
		t.Fatalf("up=%v want=62.5 (food projection 500/8)", tbl.Score[game.MoveUp])
	}
	if tbl.Score[game.MoveUp] <= tbl.Score[game.MoveRight] {
		t.Fatalf("food pull up=%v should beat contested prey direction right=%v",
			tbl.Score[game.MoveUp], tbl.Score[game.MoveRight])
	}
}

func TestBestEmergencyFood_UnreachableBeforeStarving(t *testing.T) {
	state := &game.GameState{
		Width:  11,
		Height: 11,
		YouId:  "me",
		Food:   []game.Point{{X: 10, Y: 10}},
		Snakes: []game.Snake{{
			Id:     "me",
			Health: 5,
			Body:   []game.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		}},
	}

	if opt := newTurn(state).bestEmergencyFood(); opt != nil {
		t.Fatalf("food 20 away with 5 health should be unreachable, got %+v", opt)
	}
}
