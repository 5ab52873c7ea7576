package game

// Snapshot captures the observable game state for rendering and for
// determinism tests.
type Snapshot struct {
	Tick       uint64
	Score      int
	Difficulty int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	Phase      Phase
	Won        bool
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.body) > 0 {
		headX = g.body[0].X
		headY = g.body[0].Y
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Difficulty: g.level,
		SnakeLen:   len(g.body),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        g.dir,
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		Phase:      g.phase,
		Won:        g.won,
	}
}
