package types

import "testing"

func TestDirectionToPoint(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Point
	}{
		{Up, Point{X: 0, Y: -1}},
		{Right, Point{X: 1, Y: 0}},
		{Down, Point{X: 0, Y: 1}},
		{Left, Point{X: -1, Y: 0}},
		{None, Point{X: 0, Y: 0}},
	}
	for _, c := range cases {
		if got := c.dir.ToPoint(); got != c.want {
			t.Errorf("%v.ToPoint()=%v want=%v", c.dir, got, c.want)
		}
	}

	// Every real direction is a unit delta: exactly one nonzero component.
	for _, d := range []Direction{Up, Right, Down, Left} {
		p := d.ToPoint()
		if p.X*p.X+p.Y*p.Y != 1 {
			t.Errorf("%v.ToPoint()=%v is not a unit delta", d, p)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite()=%v want=%v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite()=%v want=%v", d, got, d)
		}
		// Opposite deltas cancel out.
		a, b := d.ToPoint(), d.Opposite().ToPoint()
		if a.Add(b) != (Point{}) {
			t.Errorf("%v and %v deltas do not cancel", d, d.Opposite())
		}
	}
	if None.Opposite() != None {
		t.Errorf("None.Opposite()=%v want None", None.Opposite())
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%v.TurnLeft().TurnRight()=%v want=%v", d, got, d)
		}
		// Four quarter turns either way return to the start.
		if got := d.TurnLeft().TurnLeft().TurnLeft().TurnLeft(); got != d {
			t.Errorf("four left turns from %v ended at %v", d, got)
		}
		if got := d.TurnRight().TurnRight(); got != d.Opposite() {
			t.Errorf("two right turns from %v=%v want=%v", d, got, d.Opposite())
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 30, Height: 20}

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{29, 19}, true},
		{Point{14, 10}, true},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
		{Point{30, 0}, false},
		{Point{0, 20}, false},
		{Point{30, 20}, false},
	}
	for _, c := range cases {
		if got := g.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v)=%v want=%v", c.p, got, c.want)
		}
	}

	if g.Cells() != 600 {
		t.Errorf("Cells()=%d want=600", g.Cells())
	}
}

func TestDerivedGridConstants(t *testing.T) {
	if Cols != 30 || Rows != 20 {
		t.Errorf("grid constants %dx%d want 30x20", Cols, Rows)
	}
}
