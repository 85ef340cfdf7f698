package engine

import (
	"github.com/miikkee/mikesnake/game"
)

// reachableSpace estimates the free-space volume reachable from start via
// breadth-first traversal. Obstacles are every snake body minus its tail
// segment, except that the ego snake's body is taken from egoBody so callers
// can simulate hypothetical positions (chasing prey, arriving on food).
//
// The traversal is bounded twice: by a cap proportional to board area, and
// by an early exit once SafeSpaceFactor times the ego length has been
// counted. The returned count is raw cells visited, not normalized.
func reachableSpace(state *game.GameState, start game.Point, egoBody []game.Point, limits FloodFillLimits) int {
	obstacles := make(map[game.Point]struct{}, state.Width*state.Height/2)
	for _, seg := range game.WithoutTail(egoBody) {
		obstacles[seg] = struct{}{}
	}
	for i := range state.Snakes {
		s := &state.Snakes[i]
		if s.Id == state.YouId {
			continue
		}
		for _, seg := range game.WithoutTail(s.Body) {
			obstacles[seg] = struct{}{}
		}
	}

	maxIterations := limits.capFor(state.Width * state.Height)
	safeSpace := limits.SafeSpaceFactor * len(egoBody)

	visited := map[game.Point]struct{}{start: {}}
	frontier := make([]game.Point, 0, 16)
	frontier = append(frontier, start)
	count := 0

	for len(frontier) > 0 && count < maxIterations {
		cur := frontier[0]
		frontier = frontier[1:]
		count++

		if count >= safeSpace {
			break
		}

		for _, move := range game.Moves {
			next := game.Step(cur, move)
			if !state.InBounds(next) {
				continue
			}
			if _, ok := visited[next]; ok {
				continue
			}
			if _, ok := obstacles[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}

	return count
}
