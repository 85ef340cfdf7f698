package engine

import (
	"github.com/miikkee/mikesnake/game"
)

// Emergency strategy weights. At critical health the snake must restore
// health now, either by eating or by killing a shorter snake for its
// segments. Hunting only pays when the prey is worth the detour and no
// stronger rival is close enough to intercept.
const (
	emergencyFoodWeight = 500.0

	huntGainPerSegment    = 50.0
	huntDistancePenalty   = 10.0
	huntUnsafePathPenalty = 150.0
	huntBaseCost          = 100.0
	huntQualifyingScore   = 50.0
	huntReachBuffer       = 5

	rivalPredatorWeight = 200.0
	rivalPredatorRange  = 5

	huntArbitrationMultiplier = 2.0
	huntMaxThirdPartyRisk     = 100.0
)

type foodOption struct {
	target   game.Point
	distance int
	score    float64
}

type huntOption struct {
	target         game.Point
	distance       int
	score          float64
	thirdPartyRisk float64
	pathSafe       bool
}

// evaluateEmergency arbitrates between the nearest reachable food and the
// best qualifying prey, then projects the winner onto every safe move.
func (t *turn) evaluateEmergency(tbl *ScoreTable) {
	food := t.bestEmergencyFood()
	hunt := t.bestEmergencyHunt()

	switch {
	case hunt != nil && food != nil:
		// Hunting must clearly beat feeding, along a path we can survive,
		// with no rival predator likely to contest the kill.
		if hunt.score > food.score*huntArbitrationMultiplier && hunt.pathSafe && hunt.thirdPartyRisk < huntMaxThirdPartyRisk {
			t.pullToward(tbl, hunt.target, hunt.score)
		} else {
			t.pullToward(tbl, food.target, emergencyFoodWeight)
		}
	case hunt != nil:
		t.pullToward(tbl, hunt.target, hunt.score)
	case food != nil:
		t.pullToward(tbl, food.target, emergencyFoodWeight)
	}
}

// bestEmergencyFood returns the closest food item reachable before
// starvation, or nil.
func (t *turn) bestEmergencyFood() *foodOption {
	if len(t.state.Food) == 0 {
		return nil
	}

	closest := t.state.Food[0]
	dist := game.Manhattan(t.head, closest)
	for _, f := range t.state.Food[1:] {
		if d := game.Manhattan(t.head, f); d < dist {
			closest = f
			dist = d
		}
	}

	if dist >= t.health {
		return nil
	}
	return &foodOption{
		target:   closest,
		distance: dist,
		score:    emergencyFoodWeight / float64(dist+1),
	}
}

// bestEmergencyHunt scores every strictly shorter opponent reachable with a
// health buffer to spare and keeps the best qualifier.
func (t *turn) bestEmergencyHunt() *huntOption {
	var best *huntOption

	for _, prey := range t.opponents {
		if prey.Length() >= t.length {
			continue
		}
		preyHead := prey.Head()

		dist := game.Manhattan(t.head, preyHead)
		if dist >= t.health-huntReachBuffer {
			continue
		}

		risk := t.rivalPredatorRisk(prey)
		pathSafe := t.chasePathSafe(preyHead)

		score := float64(prey.Length())*huntGainPerSegment -
			float64(dist)*huntDistancePenalty -
			risk -
			huntBaseCost
		if !pathSafe {
			score -= huntUnsafePathPenalty
		}

		if score <= huntQualifyingScore || prey.Length() < t.cfg.HuntReward {
			continue
		}
		if best == nil || score > best.score {
			best = &huntOption{
				target:         preyHead,
				distance:       dist,
				score:          score,
				thirdPartyRisk: risk,
				pathSafe:       pathSafe,
			}
		}
	}

	return best
}

// rivalPredatorRisk sums pressure from other equal-or-longer opponents close
// enough to the prey to intercept the kill.
func (t *turn) rivalPredatorRisk(prey *game.Snake) float64 {
	risk := 0.0
	for _, other := range t.opponents {
		if other.Id == prey.Id || other.Length() < t.length {
			continue
		}
		d := game.Manhattan(prey.Head(), other.Head())
		if d <= rivalPredatorRange {
			risk += rivalPredatorWeight / float64(d+1)
		}
	}
	return risk
}

// chasePathSafe re-runs the reachability estimator with the ego body
// simulated onto the prey's head: if the space there cannot hold us, the
// chase ends in a pocket.
func (t *turn) chasePathSafe(preyHead game.Point) bool {
	sim := make([]game.Point, 0, t.length)
	sim = append(sim, preyHead)
	sim = append(sim, game.WithoutTail(t.you.Body)...)
	return reachableSpace(t.state, preyHead, sim, t.cfg.FloodFill) >= t.length
}
