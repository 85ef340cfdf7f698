package engine

import (
	"github.com/miikkee/mikesnake/game"
)

// predictOpponentHeads returns every coordinate the opponent's head can
// occupy after one or two of its own moves, excluding moves that would
// immediately collide with its own body or the walls. The search is a fixed
// depth-2 tree: first-step positions extend a simulated body for the second
// step, keeping worst-case cost constant.
func predictOpponentHeads(state *game.GameState, opp *game.Snake) []game.Point {
	head := opp.Head()
	predicted := make([]game.Point, 0, 12)
	firstStep := make([]game.Point, 0, 4)

	for _, move := range game.Moves {
		p1 := game.Step(head, move)
		if !state.InBounds(p1) {
			continue
		}
		if game.OccupiesBody(p1, game.WithoutTail(opp.Body)) {
			continue
		}
		predicted = append(predicted, p1)
		firstStep = append(firstStep, p1)
	}

	for _, p1 := range firstStep {
		futureBody := make([]game.Point, 0, len(opp.Body))
		futureBody = append(futureBody, p1)
		if n := len(opp.Body) - 2; n > 0 {
			futureBody = append(futureBody, opp.Body[:n]...)
		}

		for _, move := range game.Moves {
			p2 := game.Step(p1, move)
			if !state.InBounds(p2) {
				continue
			}
			if game.OccupiesBody(p2, futureBody) {
				continue
			}
			predicted = append(predicted, p2)
		}
	}

	return predicted
}
