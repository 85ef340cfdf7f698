package engine

// Config carries the engine's tunable thresholds.
//
// The defaults are deliberately preserved from tuned play rather than
// re-derived: the flood fill caps and the 3x early-exit factor in particular
// have a direct effect on play strength.
type Config struct {
	// LowHealth is the health level below which the snake prioritizes food.
	LowHealth int
	// CriticalHealth is the health level below which the emergency strategy
	// (feed-or-hunt arbitration) takes over.
	CriticalHealth int
	// HuntReward is the minimum prey length worth hunting in an emergency.
	HuntReward int

	FloodFill FloodFillLimits
}

// FloodFillLimits bounds the reachability estimator.
type FloodFillLimits struct {
	// SmallBoardCap applies to boards of up to 100 cells (7x7, 10x10).
	SmallBoardCap int
	// MediumBoardCap applies to boards of up to 200 cells (11x11, 13x13).
	MediumBoardCap int
	// LargeBoardCap is the ceiling for bigger boards, which are otherwise
	// capped at half their area.
	LargeBoardCap int
	// SafeSpaceFactor stops the fill early once SafeSpaceFactor times the
	// snake's length has been counted. A snake needs roughly 3x its body
	// length of open space to maneuver, so counting further buys nothing.
	SafeSpaceFactor int
}

func DefaultConfig() Config {
	return Config{
		LowHealth:      30,
		CriticalHealth: 15,
		HuntReward:     3,
		FloodFill: FloodFillLimits{
			SmallBoardCap:   80,
			MediumBoardCap:  120,
			LargeBoardCap:   250,
			SafeSpaceFactor: 3,
		},
	}
}

// capFor returns the iteration cap for a board of the given area.
func (l FloodFillLimits) capFor(area int) int {
	switch {
	case area <= 100:
		return l.SmallBoardCap
	case area <= 200:
		return l.MediumBoardCap
	default:
		if half := area / 2; half < l.LargeBoardCap {
			return half
		}
		return l.LargeBoardCap
	}
}
