package selfplay

import (
	"context"
	"testing"

	"github.com/miikkee/mikesnake/engine"
	"github.com/miikkee/mikesnake/game"
	"github.com/miikkee/mikesnake/rules"
)

func TestPlay_RejectsDegenerateOptions(t *testing.T) {
	ctx := context.Background()

	if _, _, err := Play(ctx, Options{Width: 3, Height: 11, SnakeCount: 2}); err == nil {
		t.Fatalf("tiny board must fail")
	}
	if _, _, err := Play(ctx, Options{Width: 11, Height: 11, SnakeCount: 1}); err == nil {
		t.Fatalf("single snake must fail")
	}
}

func TestPlay_CompletesAndRecordsEveryTurn(t *testing.T) {
	observed := 0
	opts := Options{
		Width:      11,
		Height:     11,
		SnakeCount: 2,
		MaxTurns:   200,
		Seed:       7,
		Engine:     engine.DefaultConfig(),
		Food:       rules.DefaultFoodSettings,
		OnTurn:     func(_ *game.GameState) { observed++ },
	}

	rows, result, err := Play(context.Background(), opts)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if result.GameID == "" {
		t.Fatalf("missing game id")
	}
	if result.Turns == 0 || len(rows) != result.Turns {
		t.Fatalf("rows=%d turns=%d, want one row per played turn", len(rows), result.Turns)
	}
	if observed != result.Turns {
		t.Fatalf("observer saw %d turns, want %d", observed, result.Turns)
	}

	for i, row := range rows {
		if int(row.Turn) != i {
			t.Fatalf("row %d has turn=%d", i, row.Turn)
		}
		if row.GameID != result.GameID || row.Source != "selfplay" {
			t.Fatalf("row %d mislabeled: %+v", i, row)
		}
		if len(row.Snakes) != 2 {
			t.Fatalf("row %d: snakes=%d want=2", i, len(row.Snakes))
		}
		for _, s := range row.Snakes {
			if !s.Alive {
				if s.Policy != -1 {
					t.Fatalf("row %d: dead snake %s has policy %d", i, s.ID, s.Policy)
				}
				continue
			}
			if s.Policy < 0 || s.Policy > 3 {
				t.Fatalf("row %d: snake %s policy=%d out of range", i, s.ID, s.Policy)
			}
			if s.Mode == "" || len(s.Scores) != 4 {
				t.Fatalf("row %d: snake %s missing diagnostics: %+v", i, s.ID, s)
			}
		}
	}
}

func TestPlay_SameSeedSameOutcome(t *testing.T) {
	opts := Options{
		Width:      11,
		Height:     11,
		SnakeCount: 3,
		MaxTurns:   150,
		Seed:       42,
		Engine:     engine.DefaultConfig(),
		Food:       rules.DefaultFoodSettings,
	}

	rows1, r1, err := Play(context.Background(), opts)
	if err != nil {
		t.Fatalf("first play: %v", err)
	}
	rows2, r2, err := Play(context.Background(), opts)
	if err != nil {
		t.Fatalf("second play: %v", err)
	}

	if r1.Turns != r2.Turns || r1.WinnerId != r2.WinnerId {
		t.Fatalf("seeded replay diverged: %+v vs %+v", r1, r2)
	}
	if len(rows1) != len(rows2) {
		t.Fatalf("row counts diverged: %d vs %d", len(rows1), len(rows2))
	}
	for i := range rows1 {
		for j := range rows1[i].Snakes {
			if rows1[i].Snakes[j].Policy != rows2[i].Snakes[j].Policy {
				t.Fatalf("turn %d snake %d policy diverged", i, j)
			}
		}
	}
}

func TestPlay_CancelledContextStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Play(ctx, Options{
		Width:      11,
		Height:     11,
		SnakeCount: 2,
		MaxTurns:   1000,
		Engine:     engine.DefaultConfig(),
		Food:       rules.DefaultFoodSettings,
	})
	if err == nil {
		t.Fatalf("cancelled context should surface an error")
	}
}
