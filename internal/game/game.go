// Package game implements the snake state machine: movement, growth,
// collision, scoring, and the Running/Paused/GameOver lifecycle. It is pure
// logic with no UI or persistence dependencies; the platform drives it by
// calling Tick at a difficulty-dependent interval and feeds it semantic
// input between ticks.
package game

import (
	"math/rand"
)

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Direction is the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step for the direction.
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the coarse lifecycle state of a game session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules are the fixed parameters of a session, taken from configuration.
type Rules struct {
	Width         int // Grid width in cells
	Height        int // Grid height in cells
	InitialLength int // Snake length after New/Restart
	ScorePerFood  int // Score increment per food eaten
}

// Game owns the full gameplay state for one session. Not safe for
// concurrent use; the platform serializes input and ticks.
type Game struct {
	rules Rules
	rng   *rand.Rand
	tick  uint64

	body    []Point // Head at index 0
	dir     Direction
	pending Direction // Buffered heading, committed at the next tick
	food    Point
	score   int
	level   int // Difficulty level; speed mapping is the scheduler's concern
	phase   Phase
	won     bool // Set when the snake fills the grid
}

// New creates a game with the given rules and difficulty level, seeded for
// deterministic food placement.
func New(rules Rules, level int, seed int64) *Game {
	g := &Game{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		level: level,
	}
	g.Restart()
	return g
}

// Restart resets body, score, food, and phase for a new session.
// Difficulty is preserved, as is the RNG stream.
func (g *Game) Restart() {
	g.tick = 0
	g.score = 0
	g.won = false
	g.phase = PhaseRunning

	// Snake starts at the grid center heading right, tail trailing left.
	cx := g.rules.Width / 2
	cy := g.rules.Height / 2
	g.body = make([]Point, 0, g.rules.InitialLength)
	for i := 0; i < g.rules.InitialLength; i++ {
		g.body = append(g.body, Point{X: cx - i, Y: cy})
	}
	g.dir = DirRight
	g.pending = DirRight

	g.spawnFood()
}

// SetDirection buffers a heading change to be applied at the next tick.
// Ignored when not running, and ignored for an exact reversal while the
// body is longer than one segment (an instant self-collision otherwise).
func (g *Game) SetDirection(d Direction) {
	if g.phase != PhaseRunning {
		return
	}
	if d == g.dir.Opposite() && len(g.body) > 1 {
		return
	}
	g.pending = d
}

// Pause suspends a running game. Idempotent; no-op once the game is over.
func (g *Game) Pause() {
	if g.phase == PhaseRunning {
		g.phase = PhasePaused
	}
}

// Resume continues a paused game. Idempotent; no-op once the game is over.
func (g *Game) Resume() {
	if g.phase == PhasePaused {
		g.phase = PhaseRunning
	}
}

// TogglePause flips between Running and Paused. No-op once the game is over.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseRunning:
		g.Pause()
	case PhasePaused:
		g.Resume()
	}
}

// SetDifficulty records the difficulty level. Legal in any phase; it touches
// nothing but the level. The tick interval it maps to is applied by the
// external scheduler.
func (g *Game) SetDifficulty(level int) {
	g.level = level
}

// Tick advances the simulation by one step. The scheduler calls it
// unconditionally at the current difficulty's interval; it is a no-op
// unless the game is running.
func (g *Game) Tick() {
	if g.phase != PhaseRunning {
		return
	}
	g.tick++

	// Commit the buffered heading.
	g.dir = g.pending

	head := g.body[0]
	step := g.dir.Vector()
	newHead := Point{X: head.X + step.X, Y: head.Y + step.Y}

	// Solid walls: leaving the grid ends the game. No wrap-around.
	if newHead.X < 0 || newHead.X >= g.rules.Width ||
		newHead.Y < 0 || newHead.Y >= g.rules.Height {
		g.phase = PhaseGameOver
		return
	}

	// Self collision. The tail cell is vacated this tick unless the snake
	// eats, so it only counts when the head lands on food.
	eats := newHead == g.food
	checkLen := len(g.body)
	if !eats {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.body[i] == newHead {
			g.phase = PhaseGameOver
			return
		}
	}

	g.body = append([]Point{newHead}, g.body...)

	if eats {
		g.score += g.rules.ScorePerFood
		g.spawnFood()
		return
	}

	g.body = g.body[:len(g.body)-1]
}

// spawnFood places food on a uniformly random free cell. When the body
// fills the grid there is nowhere left to place food: the session ends as
// a win.
func (g *Game) spawnFood() {
	free := make([]Point, 0, g.rules.Width*g.rules.Height-len(g.body))
	for y := 0; y < g.rules.Height; y++ {
		for x := 0; x < g.rules.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.won = true
		g.phase = PhaseGameOver
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the snake's cells, head first.
func (g *Game) Body() []Point {
	out := make([]Point, len(g.body))
	copy(out, g.body)
	return out
}

// Head returns the snake's head cell.
func (g *Game) Head() Point {
	return g.body[0]
}

// Food returns the current food cell, or (-1, -1) when the grid is full.
func (g *Game) Food() Point {
	return g.food
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Won reports whether the game ended by filling the grid.
func (g *Game) Won() bool {
	return g.won
}

// Difficulty returns the current difficulty level.
func (g *Game) Difficulty() int {
	return g.level
}

// Rules returns the session's fixed parameters.
func (g *Game) Rules() Rules {
	return g.rules
}
