package engine

import (
	"math"

	"github.com/miikkee/mikesnake/game"
)

// Space evaluation weights. A longer snake needs proportionally more room,
// so constrained pockets are penalized relative to body length.
const (
	spaceWeight           = 10
	crampedPenaltyPerCell = 50
	severeCrampedPenalty  = 200
)

// evaluateSpace rewards mask-safe moves by the free space reachable from the
// resulting head, and penalizes moves leading into pockets smaller than the
// snake itself.
func (t *turn) evaluateSpace(tbl *ScoreTable) {
	for _, move := range game.Moves {
		if !tbl.Safe[move] {
			continue
		}
		next := game.Step(t.head, move)
		space := reachableSpace(t.state, next, t.you.Body, t.cfg.FloodFill)

		tbl.Score[move] += float64(space * spaceWeight)
		if space < t.length {
			tbl.Score[move] -= float64((t.length - space) * crampedPenaltyPerCell)
			if space < t.length/2 {
				tbl.Score[move] -= severeCrampedPenalty
			}
		}
	}
}

// Food desirability weights.
const (
	foodProximityWeight = 100.0
	foodSpaceWeight     = 2.0
	contestedFoodWeight = 10.0

	foodPullCritical = 200.0
	foodPullHungry   = 100.0
	foodPullIdle     = 30.0
)

// evaluateFoodSeeking targets the single most desirable food item and pulls
// every safe move toward it. Desirability combines proximity, the space left
// to maneuver after arriving there, and how contested the item is by
// equal-or-longer opponents that are at least as close.
func (t *turn) evaluateFoodSeeking(tbl *ScoreTable, critical, hungry bool) {
	best := t.state.Food[0]
	bestScore := math.Inf(-1)

	for _, f := range t.state.Food {
		d := game.Manhattan(t.head, f)
		score := foodProximityWeight / float64(d+1)
		score += foodSpaceWeight * float64(t.spaceAfterArrival(f))
		score -= t.contestedFoodThreat(f, d)

		if score > bestScore {
			best = f
			bestScore = score
		}
	}

	weight := foodPullIdle
	switch {
	case critical:
		weight = foodPullCritical
	case hungry:
		weight = foodPullHungry
	}
	t.pullToward(tbl, best, weight)
}

// spaceAfterArrival estimates reachable space with the ego body simulated
// onto target, as if the snake had just moved there.
func (t *turn) spaceAfterArrival(target game.Point) int {
	sim := make([]game.Point, 0, t.length)
	sim = append(sim, target)
	sim = append(sim, game.WithoutTail(t.you.Body)...)
	return reachableSpace(t.state, target, sim, t.cfg.FloodFill)
}

// contestedFoodThreat sums pressure from equal-or-longer opponents that can
// reach the food at least as fast as we can.
func (t *turn) contestedFoodThreat(food game.Point, ownDistance int) float64 {
	threat := 0.0
	for _, opp := range t.opponents {
		d := game.Manhattan(opp.Head(), food)
		if d <= ownDistance && opp.Length() >= t.length {
			threat += contestedFoodWeight / float64(d+1)
		}
	}
	return threat
}

// Pursuit weights for aggressive mode.
const (
	pursuitWeight    = 50.0
	rivalAvoidWeight = 100.0
	rivalAvoidRange  = 2
)

// evaluatePursuit rewards closing distance on shorter opponents and, even in
// an aggressive posture, penalizes unnecessary proximity to opponents that
// would win a head-to-head.
func (t *turn) evaluatePursuit(tbl *ScoreTable) {
	for _, opp := range t.opponents {
		oppHead := opp.Head()

		if opp.Length() < t.length {
			for _, move := range game.Moves {
				if !tbl.Safe[move] {
					continue
				}
				next := game.Step(t.head, move)
				d := game.Manhattan(next, oppHead)
				tbl.Score[move] += pursuitWeight / float64(d+1)
			}
			continue
		}

		for _, move := range game.Moves {
			if !tbl.Safe[move] {
				continue
			}
			next := game.Step(t.head, move)
			d := game.Manhattan(next, oppHead)
			if d <= rivalAvoidRange {
				tbl.Score[move] -= rivalAvoidWeight / float64(d+1)
			}
		}
	}
}

// Head-to-head defense penalties. A 1-step threat is on the verge of a
// head-to-head this turn and outweighs a 2-step one.
const (
	imminentThreatPenalty    = 400.0
	imminentThreatPerSegment = 50.0
	loomingThreatPenalty     = 200.0
	loomingThreatPerSegment  = 30.0
)

// evaluateHeadToHead penalizes safe moves that land on a coordinate an
// equal-or-longer opponent's head can reach within two of its own moves.
// Only the first matching prediction per move contributes; a move is not
// double-penalized for being reachable along several opponent paths.
func (t *turn) evaluateHeadToHead(tbl *ScoreTable) {
	for _, opp := range t.opponents {
		if opp.Length() < t.length {
			continue
		}
		predicted := predictOpponentHeads(t.state, opp)
		lengthEdge := float64(opp.Length() - t.length)

		for _, move := range game.Moves {
			if !tbl.Safe[move] {
				continue
			}
			next := game.Step(t.head, move)

			for _, p := range predicted {
				if p != next {
					continue
				}
				if game.Manhattan(next, opp.Head()) <= 1 {
					tbl.Score[move] -= imminentThreatPenalty + lengthEdge*imminentThreatPerSegment
				} else {
					tbl.Score[move] -= loomingThreatPenalty + lengthEdge*loomingThreatPerSegment
				}
				break
			}
		}
	}
}

// centerWeight nudges the snake off edges and corners when nothing stronger
// dominates.
const centerWeight = 5.0

func (t *turn) evaluateCenterPreference(tbl *ScoreTable) {
	centerX := float64(t.state.Width) / 2
	centerY := float64(t.state.Height) / 2

	for _, move := range game.Moves {
		if !tbl.Safe[move] {
			continue
		}
		next := game.Step(t.head, move)
		d := math.Abs(float64(next.X)-centerX) + math.Abs(float64(next.Y)-centerY)
		tbl.Score[move] += centerWeight / (d + 1)
	}
}

// pullToward adds a distance-weighted attraction to target on every safe
// move.
func (t *turn) pullToward(tbl *ScoreTable, target game.Point, weight float64) {
	for _, move := range game.Moves {
		if !tbl.Safe[move] {
			continue
		}
		next := game.Step(t.head, move)
		tbl.Score[move] += weight / float64(game.Manhattan(next, target)+1)
	}
}
