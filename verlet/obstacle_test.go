package verlet

import (
	"math"
	"testing"
)

func TestObstaclePushesPointToBoundary(t *testing.T) {
	o := Obstacle{Center: Vec2{100, 100}, Radius: 50}
	cases := []Vec2{
		{110, 100},
		{100, 130},
		{80, 90},
		{100.5, 99.5},
	}
	for _, start := range cases {
		p := Point{Pos: start}
		o.correct(&p)

		got := p.Pos.Sub(o.Center).Len()
		if math.Abs(got-o.Radius) > 1e-9 {
			t.Fatalf("point from (%f, %f): distance %f, want %f", start.X, start.Y, got, o.Radius)
		}

		// Direction from center must be preserved.
		before := start.Sub(o.Center)
		after := p.Pos.Sub(o.Center)
		cross := before.X*after.Y - before.Y*after.X
		dot := before.X*after.X + before.Y*after.Y
		if math.Abs(cross) > 1e-9 || dot <= 0 {
			t.Fatalf("point from (%f, %f): direction changed, cross=%g dot=%g", start.X, start.Y, cross, dot)
		}
	}
}

func TestObstacleLeavesOutsidePointsAlone(t *testing.T) {
	o := Obstacle{Center: Vec2{0, 0}, Radius: 10}
	p := Point{Pos: Vec2{10, 0}} // exactly on the boundary
	o.correct(&p)
	if p.Pos != (Vec2{10, 0}) {
		t.Fatalf("boundary point moved to (%f, %f)", p.Pos.X, p.Pos.Y)
	}

	p = Point{Pos: Vec2{30, 40}}
	o.correct(&p)
	if p.Pos != (Vec2{30, 40}) {
		t.Fatalf("outside point moved to (%f, %f)", p.Pos.X, p.Pos.Y)
	}
}

func TestObstacleCorrectsLockedPoints(t *testing.T) {
	// Locked points are not exempt from obstacle correction.
	o := Obstacle{Center: Vec2{0, 0}, Radius: 20}
	p := Point{Pos: Vec2{5, 0}, Locked: true}
	o.correct(&p)
	if math.Abs(p.Pos.X-20) > 1e-9 || p.Pos.Y != 0 {
		t.Fatalf("locked point at (%f, %f), want (20, 0)", p.Pos.X, p.Pos.Y)
	}
}

func TestObstacleSkipsExactCenter(t *testing.T) {
	// A point at the exact center has no direction to push along.
	o := Obstacle{Center: Vec2{3, 3}, Radius: 10}
	p := Point{Pos: Vec2{3, 3}}
	o.correct(&p)
	if p.Pos != (Vec2{3, 3}) || math.IsNaN(p.Pos.X) {
		t.Fatalf("center point moved to (%f, %f)", p.Pos.X, p.Pos.Y)
	}
}
