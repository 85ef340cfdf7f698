// Package main runs engine-vs-engine matches in parallel, records them as
// parquet archives, and shows aggregate stats in a terminal UI. An optional
// websocket endpoint streams one worker's live board to observers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miikkee/mikesnake/arena/live"
	"github.com/miikkee/mikesnake/arena/selfplay"
	"github.com/miikkee/mikesnake/engine"
	"github.com/miikkee/mikesnake/game"
	"github.com/miikkee/mikesnake/rules"
	"github.com/miikkee/mikesnake/store"
)

var totalTurns atomic.Int64

type GameUpdate struct {
	WorkerID int
	Result   selfplay.Result
	Rows     int
}

type model struct {
	gamesPlayed int
	totalRows   int
	turns       int64
	draws       int
	winners     map[string]int
	startTime   time.Time
	recentGames []string
	updates     chan GameUpdate
}

func initialModel(updates chan GameUpdate) model {
	return model{
		startTime: time.Now(),
		winners:   make(map[string]int),
		updates:   updates,
	}
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func waitForUpdate(updates chan GameUpdate) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TickMsg:
		m.turns = totalTurns.Load()
		return m, tickCmd()
	case GameUpdate:
		m.gamesPlayed++
		m.totalRows += msg.Rows
		if msg.Result.WinnerId == "" {
			m.draws++
		} else {
			m.winners[msg.Result.WinnerId]++
		}
		logMsg := fmt.Sprintf("Worker %d: Winner %s, Turns %d", msg.WorkerID, winnerLabel(msg.Result.WinnerId), msg.Result.Turns)
		m.recentGames = append([]string{logMsg}, m.recentGames...)
		if len(m.recentGames) > 10 {
			m.recentGames = m.recentGames[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func winnerLabel(id string) string {
	if id == "" {
		return "(draw)"
	}
	return id
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	gamesPerSec := float64(m.gamesPlayed) / duration.Seconds()
	turnsPerSec := float64(m.turns) / duration.Seconds()
	if duration.Seconds() < 1 {
		gamesPerSec = 0
		turnsPerSec = 0
	}

	s := fmt.Sprintf("Games Played:  %d\n", m.gamesPlayed)
	s += fmt.Sprintf("Rows Recorded: %d\n", m.totalRows)
	s += fmt.Sprintf("Total Turns:   %d\n", m.turns)
	s += fmt.Sprintf("Draws:         %d\n", m.draws)
	s += fmt.Sprintf("Duration:      %s\n", duration.Round(time.Second))
	s += fmt.Sprintf("Games/Sec:     %.2f\n", gamesPerSec)
	s += fmt.Sprintf("Turns/Sec:     %.2f\n\n", turnsPerSec)

	s += "Recent Games:\n"
	for _, g := range m.recentGames {
		s += g + "\n"
	}

	s += "\nPress q to quit.\n"
	return s
}

func main() {
	outDir := flag.String("out-dir", "data/arena", "Output directory for parquet batches")
	workers := flag.Int("workers", 8, "Number of self-play workers")
	gamesPerFlush := flag.Int("games-per-flush", 20, "Number of games to buffer per parquet flush")
	maxGames := flag.Int64("max-games", 0, "If > 0, stop after this many games")
	boardSize := flag.Int("board-size", 11, "Board width and height")
	snakes := flag.Int("snakes", 4, "Snakes per game")
	maxTurns := flag.Int("max-turns", 1000, "Abort games running longer than this")
	watch := flag.String("watch", "", "If set, serve live board frames over websocket on this address (e.g. :8090)")
	flag.Parse()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	var hub *live.Hub
	if *watch != "" {
		hub = live.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			srv := &http.Server{Addr: *watch, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("live server: %v", err)
			}
		}()
		log.Printf("Live board frames on ws://%s/ws", *watch)
	}

	updates := make(chan GameUpdate, *workers)
	rowsCh := make(chan []store.TurnRow, *workers)
	var gamesStarted atomic.Int64

	var writerWg sync.WaitGroup
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		buffer := make([]store.TurnRow, 0, 4096)
		buffered := 0
		flush := func() {
			if len(buffer) == 0 {
				return
			}
			path, err := store.WriteBatch(*outDir, buffer)
			if err != nil {
				log.Printf("flush failed: %v", err)
			} else {
				log.Printf("flushed %d rows to %s", len(buffer), path)
			}
			buffer = buffer[:0]
			buffered = 0
		}
		for rows := range rowsCh {
			buffer = append(buffer, rows...)
			buffered++
			if buffered >= *gamesPerFlush {
				flush()
			}
		}
		flush()
	}()

	var workerWg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		workerWg.Add(1)
		go func(workerID int) {
			defer workerWg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				n := gamesStarted.Add(1)
				if *maxGames > 0 && n > *maxGames {
					return
				}

				opts := selfplay.Options{
					Width:      *boardSize,
					Height:     *boardSize,
					SnakeCount: *snakes,
					MaxTurns:   *maxTurns,
					Seed:       time.Now().UnixNano() + int64(workerID)*1000003,
					Engine:     engine.DefaultConfig(),
					Food:       rules.DefaultFoodSettings,
				}
				// One worker feeds the live hub so observers see a coherent game.
				if hub != nil && workerID == 0 {
					opts.OnTurn = func(state *game.GameState) {
						totalTurns.Add(1)
						hub.Broadcast(state)
						time.Sleep(100 * time.Millisecond)
					}
				} else {
					opts.OnTurn = func(*game.GameState) { totalTurns.Add(1) }
				}

				rows, result, err := selfplay.Play(ctx, opts)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Printf("worker %d: game failed: %v", workerID, err)
					continue
				}

				rowsCh <- rows
				select {
				case updates <- GameUpdate{WorkerID: workerID, Result: result, Rows: len(rows)}:
				default:
				}
			}
		}(w)
	}

	go func() {
		workerWg.Wait()
		close(rowsCh)
		cancel()
	}()

	p := tea.NewProgram(initialModel(updates))
	if _, err := p.Run(); err != nil {
		log.Printf("tui error: %v", err)
	}
	cancel()

	workerWg.Wait()
	writerWg.Wait()
	log.Printf("arena stopped after %d games", gamesStarted.Load())
}
