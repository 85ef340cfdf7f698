// Package main implements the Battlesnake API server around the heuristic
// decision engine.
//
// The server answers the standard endpoints (/, /start, /move, /end). All
// game intelligence lives in the engine package; this layer only converts
// the wire format, enforces the response deadline, and logs.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/miikkee/mikesnake/engine"
	"github.com/miikkee/mikesnake/game"
	"github.com/miikkee/mikesnake/logging"
)

type InfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

type GameRequest struct {
	Game  Game        `json:"game"`
	Turn  int         `json:"turn"`
	Board Board       `json:"board"`
	You   Battlesnake `json:"you"`
}

type Game struct {
	ID      string `json:"id"`
	Timeout int    `json:"timeout"`
}

type Board struct {
	Height int           `json:"height"`
	Width  int           `json:"width"`
	Food   []Coord       `json:"food"`
	Snakes []Battlesnake `json:"snakes"`
}

type Battlesnake struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Coord `json:"body"`
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

type Server struct {
	cfg engine.Config
	log *slog.Logger
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	response := InfoResponse{
		APIVersion: "1",
		Author:     "miikkee",
		Color:      "#7C3AED",
		Head:       "shades",
		Tail:       "sharp",
		Version:    "1.2.0",
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.log.Info("game started", "game", req.Game.ID, "snakes", len(req.Board.Snakes))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := convertToGameState(&req)
	decision, err := engine.Decide(state, s.cfg)
	if err != nil {
		// Contract violation from the caller. Still answer with a move; the
		// protocol requires one every turn.
		s.log.Error("bad move request", "game", req.Game.ID, "turn", req.Turn, "err", err)
		decision = engine.Decision{Move: game.MoveUp}
	}

	s.log.Info("move",
		"game", req.Game.ID,
		"turn", req.Turn,
		"move", game.MoveName(decision.Move),
		"mode", string(decision.Mode),
		"threshold", decision.Threshold,
		"elapsed", time.Since(started),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MoveResponse{Move: game.MoveName(decision.Move)})
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := "lost"
	for _, snake := range req.Board.Snakes {
		if snake.ID == req.You.ID {
			result = "won"
			break
		}
	}
	if len(req.Board.Snakes) == 0 {
		result = "draw"
	}

	s.log.Info("game ended", "game", req.Game.ID, "turn", req.Turn, "result", result)
	w.WriteHeader(http.StatusOK)
}

func convertToGameState(req *GameRequest) *game.GameState {
	state := &game.GameState{
		Width:  req.Board.Width,
		Height: req.Board.Height,
		YouId:  req.You.ID,
		Turn:   req.Turn,
	}

	state.Food = make([]game.Point, len(req.Board.Food))
	for i, f := range req.Board.Food {
		state.Food[i] = game.Point{X: f.X, Y: f.Y}
	}

	state.Snakes = make([]game.Snake, len(req.Board.Snakes))
	for i, s := range req.Board.Snakes {
		snake := game.Snake{
			Id:     s.ID,
			Health: s.Health,
			Body:   make([]game.Point, len(s.Body)),
		}
		for j, b := range s.Body {
			snake.Body[j] = game.Point{X: b.X, Y: b.Y}
		}
		state.Snakes[i] = snake
	}

	return state
}

func main() {
	listen := flag.String("listen", ":8080", "HTTP listen address")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(logging.NewHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	server := &Server{cfg: engine.DefaultConfig(), log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.handleIndex)
	mux.HandleFunc("/start", server.handleStart)
	mux.HandleFunc("/move", server.handleMove)
	mux.HandleFunc("/end", server.handleEnd)

	srv := &http.Server{
		Addr:              *listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("battlesnake server listening", "addr", *listen)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
