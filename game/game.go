package game

import (
	"time"

	"github.com/google/uuid"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// State is the session state.
type State int

const (
	Playing State = iota
	GameOver
)

// CollisionType records what ended a run.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFilled // the snake covers every cell; nowhere left to place food
)

// Game is a single snake session: one snake, one food cell, a score and a
// Playing/GameOver state, advanced by Update once per simulation tick.
// It has exactly one writer (the tick) and is read through Snapshot.
type Game struct {
	UUID string
	Grid types.Grid

	snake         *entity.Snake
	food          types.Point
	score         int
	state         State
	steps         int
	lastCollision CollisionType

	spawner   *FoodSpawner
	stats     *GameStats
	startTime time.Time
	runStart  time.Time
}

// NewGame creates a session on a width x height grid. The seed drives food
// placement only; pass a fixed value for reproducible runs.
func NewGame(width, height int, seed uint64) *Game {
	g := &Game{
		UUID:      uuid.New().String(),
		Grid:      types.Grid{Width: width, Height: height},
		spawner:   NewFoodSpawner(seed),
		stats:     NewGameStats(),
		startTime: time.Now(),
	}
	g.reset()
	return g
}

// reset rebuilds the snake/food pair wholesale. Session identity and stats
// survive; everything run-scoped starts over.
func (g *Game) reset() {
	g.snake = entity.NewSnake(g.Grid)
	g.food = g.spawner.Relocate(g.snake.OccupiedCells(), g.Grid, g.snake.Head())
	g.score = 0
	g.steps = 0
	g.state = Playing
	g.lastCollision = NoCollision
	g.runStart = time.Now()
}

// Update advances the simulation by one tick. The pending direction is
// applied first (None keeps the current heading), then the snake moves one
// cell and collisions and food consumption are resolved. Ticks received
// while the session is over are ignored.
func (g *Game) Update(pending types.Direction) {
	if g.state != Playing {
		return
	}

	g.snake.SetDirection(pending)
	g.snake.Step()
	g.steps++

	if g.snake.HitsWall(g.Grid) {
		g.endRun(WallCollision)
		return
	}
	if g.snake.HitsSelf() {
		g.endRun(SelfCollision)
		return
	}

	if g.snake.Head() == g.food {
		g.snake.Grow(1)
		g.score++
		g.food = g.spawner.Relocate(g.snake.OccupiedCells(), g.Grid, g.snake.Head())
		// Relocate only hands back an occupied cell when the board is full.
		if g.snake.Occupies(g.food) {
			g.endRun(BoardFilled)
		}
	}
}

func (g *Game) endRun(collision CollisionType) {
	g.state = GameOver
	g.lastCollision = collision
	g.stats.AddGame(g.score, g.steps, g.runStart, time.Now())
}

// Restart rebuilds the snake and food and returns to Playing. Valid from any
// state; a run already in progress is discarded without being recorded.
func (g *Game) Restart() {
	g.reset()
}

// Snapshot is the read-only projection the renderer draws from.
type Snapshot struct {
	Body        []types.Point // tail first, head last
	Food        types.Point
	Score       int
	State       State
	Collision   CollisionType
	Steps       int
	HighScore   int
	GamesPlayed int
}

// Snapshot copies the current observable state. The returned value shares
// nothing with the session and stays valid across later ticks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:        g.snake.Cells(),
		Food:        g.food,
		Score:       g.score,
		State:       g.state,
		Collision:   g.lastCollision,
		Steps:       g.steps,
		HighScore:   g.stats.HighScore(),
		GamesPlayed: g.stats.GamesPlayed(),
	}
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) CurrentState() State {
	return g.state
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Stats() *GameStats {
	return g.stats
}

// ElapsedTime returns the session age in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.startTime).Seconds()
}
