package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/types"
)

const (
	hudFontSize     = 20
	overlayFontSize = 32
	hintFontSize    = 20
)

var (
	gridLineColor = rl.NewColor(30, 30, 30, 255)
	bodyColor     = rl.NewColor(20, 120, 20, 255)
	headColor     = rl.NewColor(40, 200, 40, 255)
	foodColor     = rl.NewColor(220, 50, 50, 255)
)

// Renderer draws a session snapshot with raylib. It computes the cell size
// and board offset from the current window dimensions so the board stays
// centered and square-celled after a resize.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions recomputes cell size and board placement for the given
// grid from the current window size.
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.cellSize = min(r.screenWidth/int32(grid.Width), r.screenHeight/int32(grid.Height))
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	// Center the board in the window
	r.offsetX = (r.screenWidth - r.cellSize*int32(grid.Width)) / 2
	r.offsetY = (r.screenHeight - r.cellSize*int32(grid.Height)) / 2
}

// Draw renders one frame from the snapshot. It never touches the session.
func (r *Renderer) Draw(snap game.Snapshot, grid types.Grid) {
	r.UpdateDimensions(grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGridLines(grid)
	r.drawCell(snap.Food, foodColor)

	for i, p := range snap.Body {
		color := bodyColor
		if i == len(snap.Body)-1 {
			color = headColor // head is the last segment
		}
		r.drawCell(p, color)
	}

	r.drawHUD(snap)
	if snap.State == game.GameOver {
		r.drawGameOver(snap)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGridLines(grid types.Grid) {
	boardW := r.cellSize * int32(grid.Width)
	boardH := r.cellSize * int32(grid.Height)

	for x := int32(0); x <= int32(grid.Width); x++ {
		px := r.offsetX + x*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+boardH, gridLineColor)
	}
	for y := int32(0); y <= int32(grid.Height); y++ {
		py := r.offsetY + y*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+boardW, py, gridLineColor)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	px := r.offsetX + int32(p.X)*r.cellSize
	py := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(px, py, r.cellSize, r.cellSize, color)
	rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Black)
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	hud := fmt.Sprintf("Score: %d", snap.Score)
	if snap.GamesPlayed > 0 {
		hud = fmt.Sprintf("Score: %d   High: %d   Games: %d", snap.Score, snap.HighScore, snap.GamesPlayed)
	}
	rl.DrawText(hud, 8, 6, hudFontSize, rl.White)
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	title := "GAME OVER"
	if snap.Collision == game.BoardFilled {
		title = "BOARD FULL - YOU WIN"
	}
	r.drawCentered(title, overlayFontSize, r.screenHeight/2-20)
	r.drawCentered("Press R to Restart or ESC to Quit", hintFontSize, r.screenHeight/2+20)
}

func (r *Renderer) drawCentered(text string, fontSize, y int32) {
	x := (r.screenWidth - rl.MeasureText(text, fontSize)) / 2
	rl.DrawText(text, x, y, fontSize, rl.White)
}
