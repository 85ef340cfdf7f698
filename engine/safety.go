package engine

import (
	"github.com/miikkee/mikesnake/game"
)

// applySafetyFilter clears the mask and seeds a heavy penalty for every move
// that is immediately fatal: reversing onto the neck, leaving the board, or
// landing on a snake body. Tail segments are passable because they vacate
// during the same turn.
func (t *turn) applySafetyFilter(tbl *ScoreTable) {
	neck := t.you.Body[1]

	for _, move := range game.Moves {
		next := game.Step(t.head, move)

		unsafe := next == neck ||
			!t.state.InBounds(next) ||
			game.OccupiesBody(next, game.WithoutTail(t.you.Body)) ||
			t.collidesWithOpponent(next)

		if unsafe {
			tbl.Score[move] -= unsafePenalty
			tbl.Safe[move] = false
		}
	}
}

func (t *turn) collidesWithOpponent(p game.Point) bool {
	for _, opp := range t.opponents {
		if game.OccupiesBody(p, game.WithoutTail(opp.Body)) {
			return true
		}
	}
	return false
}
