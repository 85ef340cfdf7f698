// Package rules implements the Battlesnake match transition used by the
// self-play arena: simultaneous movement, growth, starvation, and collision
// resolution.
package rules

import (
	"math/rand"

	"github.com/miikkee/mikesnake/game"
)

// MaxHealth is restored whenever a snake eats.
const MaxHealth = 100

// NextTurn advances the state by one turn with a move for every live snake.
// Snakes without a move entry are treated as eliminated. Food spawning
// follows settings; pass a nil rng for deterministic placement.
func NextTurn(state *game.GameState, moves map[string]int, rng *rand.Rand, settings FoodSettings) *game.GameState {
	next := state.Clone()
	next.Turn++

	// 1. Compute new head positions.
	newHeads := make(map[string]game.Point, len(next.Snakes))
	for i := range next.Snakes {
		s := &next.Snakes[i]
		if s.Health <= 0 || len(s.Body) == 0 {
			continue
		}
		move, ok := moves[s.Id]
		if !ok {
			continue
		}
		newHeads[s.Id] = game.Step(s.Body[0], move)
	}

	// 2. Resolve eating before bodies move, so growth keeps the tail.
	eaten := make(map[int]bool, len(next.Food))
	ate := make(map[string]bool, len(newHeads))
	for id, head := range newHeads {
		for i, f := range next.Food {
			if f == head {
				eaten[i] = true
				ate[id] = true
			}
		}
	}
	remaining := next.Food[:0]
	for i, f := range next.Food {
		if !eaten[i] {
			remaining = append(remaining, f)
		}
	}
	next.Food = remaining

	// 3. Advance bodies.
	for i := range next.Snakes {
		s := &next.Snakes[i]
		head, ok := newHeads[s.Id]
		if !ok {
			s.Health = 0
			continue
		}

		// Move first (tail advances), then grow by duplicating the new tail.
		body := make([]game.Point, 0, len(s.Body)+1)
		body = append(body, head)
		body = append(body, s.Body[:len(s.Body)-1]...)
		if ate[s.Id] {
			s.Health = MaxHealth
			body = append(body, body[len(body)-1])
		} else {
			s.Health--
		}
		s.Body = body
	}

	// 4. Resolve deaths: starvation, walls, bodies, head-to-head.
	dead := make(map[string]bool, len(next.Snakes))
	for i := range next.Snakes {
		s := &next.Snakes[i]
		if s.Health <= 0 {
			dead[s.Id] = true
			continue
		}
		head := s.Body[0]
		if !next.InBounds(head) {
			dead[s.Id] = true
			continue
		}
		for j := range next.Snakes {
			other := &next.Snakes[j]
			if other.Health <= 0 {
				continue
			}
			// Heads are resolved separately below.
			if game.OccupiesBody(head, other.Body[1:]) {
				dead[s.Id] = true
				break
			}
		}
	}

	for i := 0; i < len(next.Snakes); i++ {
		s1 := &next.Snakes[i]
		if dead[s1.Id] || s1.Health <= 0 {
			continue
		}
		for j := i + 1; j < len(next.Snakes); j++ {
			s2 := &next.Snakes[j]
			if dead[s2.Id] || s2.Health <= 0 {
				continue
			}
			if s1.Body[0] != s2.Body[0] {
				continue
			}
			// The longer snake survives a head-to-head; equals both die.
			switch {
			case len(s1.Body) > len(s2.Body):
				dead[s2.Id] = true
			case len(s2.Body) > len(s1.Body):
				dead[s1.Id] = true
			default:
				dead[s1.Id] = true
				dead[s2.Id] = true
			}
		}
	}

	alive := make([]game.Snake, 0, len(next.Snakes))
	for _, s := range next.Snakes {
		if dead[s.Id] {
			continue
		}
		alive = append(alive, s)
	}
	next.Snakes = alive

	// 5. Spawn food for the next turn.
	applyFoodRules(next, rng, settings)

	return next
}

// IsOver reports whether the match has finished (at most one snake left).
func IsOver(state *game.GameState) bool {
	living := 0
	for i := range state.Snakes {
		if state.Snakes[i].Health > 0 {
			living++
		}
	}
	return living <= 1
}

// Winner returns the id of the last living snake, or "" for a draw or an
// unfinished match.
func Winner(state *game.GameState) string {
	winner := ""
	living := 0
	for i := range state.Snakes {
		if state.Snakes[i].Health > 0 {
			living++
			winner = state.Snakes[i].Id
		}
	}
	if living == 1 {
		return winner
	}
	return ""
}
