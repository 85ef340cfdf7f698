// Package game defines the board state types shared by the decision engine,
// the match rules, and the recording tooling.
//
// Coordinates follow Battlesnake conventions: (0,0) is the bottom-left
// corner, x grows to the right and y grows upward. Everything here is
// rebuilt from scratch each turn; nothing carries state between turns.
package game

// Point is a board coordinate.
type Point struct {
	X int
	Y int
}

// Move indices. The order is load-bearing: ties in the engine are broken by
// iterating moves in this order.
const (
	MoveUp = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveCount
)

// Moves enumerates all moves in tie-break order.
var Moves = [MoveCount]int{MoveUp, MoveDown, MoveLeft, MoveRight}

var moveNames = [MoveCount]string{"up", "down", "left", "right"}

// MoveName returns the wire name of a move, defaulting to "up" for anything
// out of range.
func MoveName(move int) string {
	if move < 0 || move >= MoveCount {
		return moveNames[MoveUp]
	}
	return moveNames[move]
}

// Step returns the coordinate reached by applying move to p.
func Step(p Point, move int) Point {
	switch move {
	case MoveUp:
		return Point{X: p.X, Y: p.Y + 1}
	case MoveDown:
		return Point{X: p.X, Y: p.Y - 1}
	case MoveLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case MoveRight:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// Manhattan returns the L1 distance between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Snake struct {
	Id     string
	Health int
	// Body is ordered head first, tail last. Never empty for a live snake.
	Body []Point
}

// Head returns the first body segment.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Length is the number of body segments.
func (s *Snake) Length() int {
	return len(s.Body)
}

// GameState is one complete turn snapshot. YouId selects the ego snake.
type GameState struct {
	Width  int
	Height int
	Snakes []Snake
	Food   []Point
	YouId  string
	Turn   int
}

// InBounds reports whether p lies on the board.
func (s *GameState) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// You returns the ego snake, or nil if YouId does not match any snake.
func (s *GameState) You() *Snake {
	for i := range s.Snakes {
		if s.Snakes[i].Id == s.YouId {
			return &s.Snakes[i]
		}
	}
	return nil
}

// Opponents returns every snake except the ego snake.
func (s *GameState) Opponents() []*Snake {
	out := make([]*Snake, 0, len(s.Snakes))
	for i := range s.Snakes {
		if s.Snakes[i].Id != s.YouId {
			out = append(out, &s.Snakes[i])
		}
	}
	return out
}

// Clone performs a deep copy of the game state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	out := &GameState{
		Width:  s.Width,
		Height: s.Height,
		YouId:  s.YouId,
		Turn:   s.Turn,
	}

	if len(s.Food) > 0 {
		out.Food = make([]Point, len(s.Food))
		copy(out.Food, s.Food)
	}

	if len(s.Snakes) > 0 {
		out.Snakes = make([]Snake, len(s.Snakes))
		for i := range s.Snakes {
			out.Snakes[i] = Snake{Id: s.Snakes[i].Id, Health: s.Snakes[i].Health}
			if len(s.Snakes[i].Body) > 0 {
				out.Snakes[i].Body = make([]Point, len(s.Snakes[i].Body))
				copy(out.Snakes[i].Body, s.Snakes[i].Body)
			}
		}
	}

	return out
}

// OccupiesBody reports whether p collides with any segment of body.
func OccupiesBody(p Point, body []Point) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

// WithoutTail returns body minus its final segment. The tail cell is vacated
// on any non-growth move, so movement planning treats it as passable.
func WithoutTail(body []Point) []Point {
	if len(body) == 0 {
		return body
	}
	return body[:len(body)-1]
}
