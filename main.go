package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
)

func main() {
	speed := flag.Int("speed", types.DefaultSpeed, "Simulation speed in ticks per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = derived from current time)")
	flag.Parse()

	if *speed <= 0 {
		log.Fatalf("invalid -speed %d: must be positive", *speed)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	rl.InitWindow(types.WindowWidth, types.WindowHeight, "Snake")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	g := game.NewGame(types.Cols, types.Rows, *seed)
	log.Printf("session %s: %dx%d grid, %d ticks/s, seed %d", g.UUID, types.Cols, types.Rows, *speed, *seed)

	renderer := ui.NewRenderer()
	updateInterval := time.Second / time.Duration(*speed)
	lastUpdate := time.Now()

	// Only the latest direction pressed between ticks is kept; earlier
	// presses are overwritten, never queued.
	pending := types.None

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		switch {
		case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
			pending = types.Up
		case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
			pending = types.Down
		case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
			pending = types.Left
		case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
			pending = types.Right
		}

		if g.CurrentState() == game.GameOver && rl.IsKeyPressed(rl.KeyR) {
			g.Restart()
			pending = types.None
		}

		// Advance the simulation at a fixed interval, decoupled from the
		// render frame rate.
		if time.Since(lastUpdate) >= updateInterval {
			g.Update(pending)
			pending = types.None
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot(), g.Grid)
	}

	stats := g.Stats()
	log.Printf("session %s closed after %.0fs: %d games, high score %d, average %.1f",
		g.UUID, g.ElapsedTime(), stats.GamesPlayed(), stats.HighScore(), stats.AverageScore())
}
