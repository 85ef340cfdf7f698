package engine

import (
	"github.com/miikkee/mikesnake/game"
)

const (
	// unsafePenalty is seeded onto any move the safety filter rejects.
	unsafePenalty = 10000
	// unsafeScoreFloor separates "merely penalized" moves from structurally
	// unsafe ones during selection.
	unsafeScoreFloor = -9000
)

// ScoreTable accumulates per-move scores for a single turn, alongside the
// safety mask produced by the safety filter. It never outlives the turn.
type ScoreTable struct {
	Score [game.MoveCount]float64
	Safe  [game.MoveCount]bool
}

// NewScoreTable returns a zeroed table with every move marked safe; the
// safety filter clears the mask for moves it rejects.
func NewScoreTable() ScoreTable {
	var t ScoreTable
	for _, move := range game.Moves {
		t.Safe[move] = true
	}
	return t
}

// Best selects the highest-scoring move that is masked safe and above the
// unsafe score floor. If no such move exists it falls back to the arg-max
// over all four moves: a response is owed every turn, even a doomed one.
// Ties go to the earliest move in enumeration order.
func (t *ScoreTable) Best() int {
	best := -1
	bestScore := 0.0
	for _, move := range game.Moves {
		if !t.Safe[move] || t.Score[move] <= unsafeScoreFloor {
			continue
		}
		if best < 0 || t.Score[move] > bestScore {
			best = move
			bestScore = t.Score[move]
		}
	}
	if best >= 0 {
		return best
	}

	best = game.MoveUp
	bestScore = t.Score[game.MoveUp]
	for _, move := range game.Moves {
		if t.Score[move] > bestScore {
			best = move
			bestScore = t.Score[move]
		}
	}
	return best
}
