// Command replay prints an archived arena game turn by turn, for eyeballing
// engine decisions without the TUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/miikkee/mikesnake/game"
	"github.com/miikkee/mikesnake/store"
)

func main() {
	file := flag.String("file", "", "Parquet archive to replay")
	gameID := flag.String("game", "", "Game id to replay (default: first game in the archive)")
	delay := flag.Duration("delay", 0, "Pause between turns, e.g. 200ms (0 dumps everything at once)")
	flag.Parse()

	if *file == "" {
		log.Fatal("missing -file")
	}

	rows, err := store.ReadBatch(*file)
	if err != nil {
		log.Fatalf("Failed to read archive: %v", err)
	}
	if len(rows) == 0 {
		log.Fatalf("Archive %s is empty", *file)
	}

	id := *gameID
	if id == "" {
		id = rows[0].GameID
	}

	turns := make([]store.TurnRow, 0, len(rows))
	for _, row := range rows {
		if row.GameID == id {
			turns = append(turns, row)
		}
	}
	if len(turns) == 0 {
		log.Fatalf("No rows for game %s in %s", id, *file)
	}

	log.Printf("Replaying game %s: %d turns", id, len(turns))
	for _, row := range turns {
		fmt.Print(renderTurn(row))
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}
}

func renderTurn(row store.TurnRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Turn %d ---\n", row.Turn)

	w, h := int(row.Width), int(row.Height)
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = make([]byte, w)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	put := func(x, y int32, c byte) {
		if y >= 0 && int(y) < h && x >= 0 && int(x) < w {
			grid[y][x] = c
		}
	}

	for i := range row.FoodX {
		put(row.FoodX[i], row.FoodY[i], '*')
	}
	for i, s := range row.Snakes {
		if !s.Alive {
			continue
		}
		mark := byte('a' + i%26)
		for j := range s.BodyX {
			put(s.BodyX[j], s.BodyY[j], mark)
		}
		if len(s.BodyX) > 0 {
			put(s.BodyX[0], s.BodyY[0], mark-'a'+'A')
		}
	}

	for y := h - 1; y >= 0; y-- {
		b.Write(grid[y])
		b.WriteByte('\n')
	}

	for _, s := range row.Snakes {
		if !s.Alive {
			fmt.Fprintf(&b, "%s: dead\n", s.ID)
			continue
		}
		fmt.Fprintf(&b, "%s: health=%d len=%d move=%s mode=%s threshold=%d scores=%v\n",
			s.ID, s.Health, len(s.BodyX), game.MoveName(int(s.Policy)), s.Mode, s.Threshold, s.Scores)
	}
	return b.String()
}
