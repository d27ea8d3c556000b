package game

import (
	"golang.org/x/exp/rand"

	"gridsnake/game/types"
)

// maxRandomTries bounds the rejection sampling in Relocate before it falls
// back to an exhaustive scan.
const maxRandomTries = 50

// FoodSpawner picks free cells for food placement. The random source is
// seeded at construction so placement sequences can be reproduced.
type FoodSpawner struct {
	rng *rand.Rand
}

func NewFoodSpawner(seed uint64) *FoodSpawner {
	return &FoodSpawner{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Relocate returns a cell not present in occupied. Free cells are found by
// uniform random draws, which is O(1) expected when the board is mostly
// empty; when the bounded draws all collide it scans the grid in row-major
// order instead, so the call always terminates. If no free cell exists the
// fallback is returned, conventionally the snake's head.
func (fs *FoodSpawner) Relocate(occupied map[types.Point]bool, grid types.Grid, fallback types.Point) types.Point {
	if len(occupied) >= grid.Cells() {
		return fallback
	}

	for i := 0; i < maxRandomTries; i++ {
		p := types.Point{
			X: fs.rng.Intn(grid.Width),
			Y: fs.rng.Intn(grid.Height),
		}
		if !occupied[p] {
			return p
		}
	}

	// Nearly full board: deterministic scan for the first free cell.
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied[p] {
				return p
			}
		}
	}

	return fallback
}
