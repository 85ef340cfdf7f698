package engine

import (
	"github.com/miikkee/mikesnake/game"
)

// Aggression thresholds by field strength. A fixed threshold is easy for
// opponents to predict, so the controller picks one per turn from the
// opponent population. Lower means aggressive sooner.
const (
	thresholdNoOpponents   = 6
	thresholdOutmatchedAvg = 10
	thresholdOutmatchedMax = 11
	thresholdDominating    = 6
	thresholdCrowded       = 9
	thresholdSparse        = 7
	thresholdDefault       = 8
)

// aggressionThreshold derives the length at which the snake turns
// aggressive. Rules are checked in priority order; the first match wins.
func aggressionThreshold(selfLen int, opponents []*game.Snake) int {
	if len(opponents) == 0 {
		return thresholdNoOpponents
	}

	total := 0
	maxLen := 0
	for _, opp := range opponents {
		n := opp.Length()
		total += n
		if n > maxLen {
			maxLen = n
		}
	}
	avg := float64(total) / float64(len(opponents))

	switch {
	case avg > float64(selfLen+3):
		return thresholdOutmatchedAvg
	case maxLen > selfLen+4:
		return thresholdOutmatchedMax
	case avg < float64(selfLen-2):
		return thresholdDominating
	case len(opponents) >= 4:
		return thresholdCrowded
	case len(opponents) <= 2:
		return thresholdSparse
	}
	return thresholdDefault
}
