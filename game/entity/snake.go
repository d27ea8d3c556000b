package entity

import (
	"gridsnake/game/types"
)

// Snake is an ordered body of grid cells, tail first and head last, paired
// with an occupancy set kept in sync for O(1) membership tests. The body and
// the set are only ever mutated together inside Step, so callers always
// observe a consistent pair.
type Snake struct {
	body        []types.Point
	occupied    map[types.Point]bool
	direction   types.Direction
	growPending int
}

// NewSnake creates a two-segment snake at the grid center, facing right.
func NewSnake(grid types.Grid) *Snake {
	cx, cy := grid.Width/2, grid.Height/2
	body := []types.Point{{X: cx - 1, Y: cy}, {X: cx, Y: cy}}

	occupied := make(map[types.Point]bool, len(body))
	for _, p := range body {
		occupied[p] = true
	}

	return &Snake{
		body:      body,
		occupied:  occupied,
		direction: types.Right,
	}
}

// Head returns the leading cell. The body is never empty by construction.
func (s *Snake) Head() types.Point {
	return s.body[len(s.body)-1]
}

// Direction returns the current heading.
func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection updates the heading. Requests to reverse 180 degrees are
// ignored so the head cannot move into its own neck within a single step;
// a body shorter than two segments has no neck, so anything is accepted.
// None leaves the heading unchanged.
func (s *Snake) SetDirection(d types.Direction) {
	if d == types.None {
		return
	}
	if len(s.body) >= 2 && d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Step advances the snake by one cell in its current direction. The new head
// is always appended; the tail is popped unless growth is pending. The popped
// tail cell stays in the occupancy set when it is still covered by another
// segment, which happens when the head lands on the cell the tail just left.
func (s *Snake) Step() {
	newHead := s.Head().Add(s.direction.ToPoint())
	s.body = append(s.body, newHead)
	s.occupied[newHead] = true

	if s.growPending > 0 {
		s.growPending--
		return
	}

	tail := s.body[0]
	s.body = s.body[1:]
	for _, p := range s.body {
		if p == tail {
			return
		}
	}
	delete(s.occupied, tail)
}

// Grow schedules amount extra segments; the tail stops shrinking for that
// many future steps.
func (s *Snake) Grow(amount int) {
	s.growPending += amount
}

// HitsWall reports whether the head has left the grid.
func (s *Snake) HitsWall(grid types.Grid) bool {
	return !grid.Contains(s.Head())
}

// HitsSelf reports whether the head overlaps any other body segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, p := range s.body[:len(s.body)-1] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether the snake currently covers the given cell.
func (s *Snake) Occupies(p types.Point) bool {
	return s.occupied[p]
}

// Len returns the current body length in cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the body, tail first and head last.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.body))
	copy(cells, s.body)
	return cells
}

// OccupiedCells returns a copy of the occupancy set.
func (s *Snake) OccupiedCells() map[types.Point]bool {
	occupied := make(map[types.Point]bool, len(s.occupied))
	for p := range s.occupied {
		occupied[p] = true
	}
	return occupied
}
