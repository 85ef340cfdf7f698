// Package selfplay runs engine-vs-engine matches for the arena.
package selfplay

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/miikkee/mikesnake/engine"
	"github.com/miikkee/mikesnake/game"
	"github.com/miikkee/mikesnake/rules"
	"github.com/miikkee/mikesnake/store"
)

type Result struct {
	GameID   string
	WinnerId string
	Turns    int
}

type Options struct {
	Width      int
	Height     int
	SnakeCount int
	// MaxTurns aborts runaway games; 0 means no limit.
	MaxTurns int
	Seed     int64
	Engine   engine.Config
	Food     rules.FoodSettings
	// OnTurn, if set, observes every post-move state (live viewers).
	OnTurn func(state *game.GameState)
}

// Play runs one match to completion, with every snake driven by the same
// engine, and returns one archive row per turn.
func Play(ctx context.Context, opts Options) ([]store.TurnRow, Result, error) {
	if opts.Width < 5 || opts.Height < 5 {
		return nil, Result{}, fmt.Errorf("board %dx%d too small for selfplay", opts.Width, opts.Height)
	}
	if opts.SnakeCount < 2 {
		return nil, Result{}, fmt.Errorf("need at least 2 snakes, got %d", opts.SnakeCount)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	state := createInitialState(opts, rng)
	gameID := uuid.New().String()
	rows := make([]store.TurnRow, 0, 256)

	for {
		select {
		case <-ctx.Done():
			return rows, Result{GameID: gameID, Turns: state.Turn}, ctx.Err()
		default:
		}

		if rules.IsOver(state) || (opts.MaxTurns > 0 && state.Turn >= opts.MaxTurns) {
			break
		}

		moves := make(map[string]int, len(state.Snakes))
		row := store.TurnRow{
			GameID: gameID,
			Turn:   int32(state.Turn),
			Width:  int32(state.Width),
			Height: int32(state.Height),
			Source: "selfplay",
		}
		for _, f := range state.Food {
			row.FoodX = append(row.FoodX, int32(f.X))
			row.FoodY = append(row.FoodY, int32(f.Y))
		}

		for i := range state.Snakes {
			s := &state.Snakes[i]
			snakeRow := store.SnakeRow{
				ID:     s.Id,
				Alive:  s.Health > 0,
				Health: int32(s.Health),
				Policy: -1,
			}
			for _, p := range s.Body {
				snakeRow.BodyX = append(snakeRow.BodyX, int32(p.X))
				snakeRow.BodyY = append(snakeRow.BodyY, int32(p.Y))
			}

			if s.Health > 0 {
				state.YouId = s.Id
				decision, err := engine.Decide(state, opts.Engine)
				if err != nil {
					return rows, Result{GameID: gameID, Turns: state.Turn}, fmt.Errorf("decide for %s: %w", s.Id, err)
				}
				moves[s.Id] = decision.Move
				snakeRow.Policy = int32(decision.Move)
				snakeRow.Mode = string(decision.Mode)
				snakeRow.Threshold = int32(decision.Threshold)
				for _, move := range game.Moves {
					snakeRow.Scores = append(snakeRow.Scores, int64(math.Round(decision.Scores.Score[move])))
				}
			}
			row.Snakes = append(row.Snakes, snakeRow)
		}
		rows = append(rows, row)

		state = rules.NextTurn(state, moves, rng, opts.Food)
		if opts.OnTurn != nil {
			opts.OnTurn(state)
		}
	}

	return rows, Result{
		GameID:   gameID,
		WinnerId: rules.Winner(state),
		Turns:    state.Turn,
	}, nil
}

// createInitialState spawns stacked length-3 snakes on distinct cells away
// from the walls, then seeds the board with food.
func createInitialState(opts Options, rng *rand.Rand) *game.GameState {
	state := &game.GameState{
		Width:  opts.Width,
		Height: opts.Height,
	}

	used := make(map[game.Point]bool, opts.SnakeCount)
	for i := 0; i < opts.SnakeCount; i++ {
		var spawn game.Point
		for {
			spawn = game.Point{
				X: 1 + rng.Intn(opts.Width-2),
				Y: 1 + rng.Intn(opts.Height-2),
			}
			if !used[spawn] {
				break
			}
		}
		used[spawn] = true

		state.Snakes = append(state.Snakes, game.Snake{
			Id:     fmt.Sprintf("snake-%d", i+1),
			Health: rules.MaxHealth,
			Body:   []game.Point{spawn, spawn, spawn},
		})
	}

	food := opts.Food
	if food.MinimumFood < opts.SnakeCount {
		food.MinimumFood = opts.SnakeCount
	}
	rules.ApplyFoodSettings(state, rng, food)

	return state
}
