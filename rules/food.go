package rules

import (
	"math/rand"

	"github.com/miikkee/mikesnake/game"
)

// FoodSettings matches the standard Battlesnake server knobs:
// MinimumFood guarantees a floor of food on the board after every turn, and
// FoodSpawnChance is the percentage chance (0-100) of one extra spawn.
//
// The RNG is injected so self-play can be replayed from a seed and tests can
// stay deterministic with a nil RNG.
type FoodSettings struct {
	MinimumFood     int
	FoodSpawnChance int
}

var DefaultFoodSettings = FoodSettings{MinimumFood: 1, FoodSpawnChance: 15}

// ApplyFoodSettings spawns food into an existing state, typically at match
// start to satisfy MinimumFood.
func ApplyFoodSettings(state *game.GameState, rng *rand.Rand, settings FoodSettings) {
	applyFoodRules(state, rng, settings)
}

func applyFoodRules(state *game.GameState, rng *rand.Rand, settings FoodSettings) {
	if state == nil || state.Width <= 0 || state.Height <= 0 {
		return
	}

	occupied := make(map[game.Point]bool, state.Width*state.Height)
	for i := range state.Snakes {
		s := &state.Snakes[i]
		if s.Health <= 0 {
			continue
		}
		for _, p := range s.Body {
			occupied[p] = true
		}
	}
	for _, f := range state.Food {
		occupied[f] = true
	}

	free := make([]game.Point, 0, state.Width*state.Height-len(occupied))
	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			p := game.Point{X: x, Y: y}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}

	pick := func(n int) int {
		if rng != nil {
			return rng.Intn(n)
		}
		// Deterministic fallback keyed on the turn number.
		return int(splitmix64(uint64(state.Turn), uint64(n)) % uint64(n))
	}

	spawnOne := func() {
		if len(free) == 0 {
			return
		}
		i := pick(len(free))
		state.Food = append(state.Food, free[i])
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}

	for len(state.Food) < settings.MinimumFood && len(free) > 0 {
		spawnOne()
	}

	if settings.FoodSpawnChance > 0 {
		var roll int
		if rng != nil {
			roll = rng.Intn(100)
		} else {
			roll = int(splitmix64(uint64(state.Turn), 0xF00D) % 100)
		}
		if roll < settings.FoodSpawnChance {
			spawnOne()
		}
	}
}

func splitmix64(a, b uint64) uint64 {
	x := a + b + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
