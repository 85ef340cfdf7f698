package engine

import (
	"testing"

	"github.com/miikkee/mikesnake/game"
)

func snakesOfLengths(lengths ...int) []*game.Snake {
	out := make([]*game.Snake, len(lengths))
	for i, n := range lengths {
		out[i] = &game.Snake{
			Id:   string(rune('a' + i)),
			Body: stackedBody(game.Point{X: i, Y: 0}, n),
		}
	}
	return out
}

func TestAggressionThreshold_RuleTable(t *testing.T) {
	cases := []struct {
		name      string
		selfLen   int
		opponents []*game.Snake
		want      int
	}{
		{"no opponents", 5, nil, 6},
		{"field much longer on average", 5, snakesOfLengths(9, 9), 10},
		{"one giant opponent", 8, snakesOfLengths(13, 5), 11},
		{"field clearly weaker", 10, snakesOfLengths(4, 5), 6},
		{"crowded board", 8, snakesOfLengths(8, 8, 8, 8), 9},
		{"sparse board", 8, snakesOfLengths(8, 8), 7},
		{"default", 8, snakesOfLengths(8, 8, 8), 8},
	}

	for _, c := range cases {
		if got := aggressionThreshold(c.selfLen, c.opponents); got != c.want {
			t.Fatalf("%s: threshold=%d want=%d", c.name, got, c.want)
		}
	}
}

func TestAggressionThreshold_PriorityOrder(t *testing.T) {
	// Both the average rule and the max rule match; the average rule wins.
	opps := snakesOfLengths(14, 14, 14)
	if got := aggressionThreshold(5, opps); got != 10 {
		t.Fatalf("threshold=%d want=10 (avg rule has priority over max rule)", got)
	}
}

func TestAggressionThreshold_MonotoneInOpponentLength(t *testing.T) {
	// Growing the (uniform) opponent length never lowers the threshold.
	selfLen := 10
	prev := -1
	for oppLen := 3; oppLen <= 20; oppLen++ {
		got := aggressionThreshold(selfLen, snakesOfLengths(oppLen, oppLen, oppLen))
		if prev >= 0 && got < prev {
			t.Fatalf("threshold dropped from %d to %d at opponent length %d", prev, got, oppLen)
		}
		prev = got
	}
}
