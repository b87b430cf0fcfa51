package verlet

import (
	"math"
	"testing"
)

func TestIntegrateMatchesClosedFormFreeFall(t *testing.T) {
	const (
		g  = 10.0
		dt = 0.001
		n  = 1000
	)
	p := Point{}
	gravity := Vec2{0, g}
	for i := 0; i < n; i++ {
		p.integrate(gravity, 1.0, dt)
	}

	// Position Verlet from rest lands exactly on the discrete sum
	// n(n+1)/2 * g * dt^2, which approaches 0.5*g*t^2 as dt shrinks.
	discrete := float64(n) * float64(n+1) / 2 * g * dt * dt
	if math.Abs(p.Pos.Y-discrete) > 1e-9 {
		t.Fatalf("y after %d steps = %.12f, want %.12f", n, p.Pos.Y, discrete)
	}
	continuous := 0.5 * g * math.Pow(float64(n)*dt, 2)
	if rel := math.Abs(p.Pos.Y-continuous) / continuous; rel > 0.002 {
		t.Fatalf("y after %d steps = %f, want within 0.2%% of %f (rel err %f)", n, p.Pos.Y, continuous, rel)
	}
	if p.Pos.X != 0 {
		t.Fatalf("x drifted to %f under vertical gravity", p.Pos.X)
	}
}

func TestIntegrateStartsAtRest(t *testing.T) {
	p := Point{Pos: Vec2{3, 4}, PrevPos: Vec2{3, 4}}
	p.integrate(Vec2{0, 100}, 1.0, 0.01)

	// First step moves by g*dt^2 only: no velocity yet.
	want := 100 * 0.01 * 0.01
	if math.Abs(p.Pos.Y-4-want) > 1e-12 {
		t.Fatalf("first step dy = %.12f, want %.12f", p.Pos.Y-4, want)
	}
}

func TestIntegrateDampingScalesVelocity(t *testing.T) {
	// Moving point, no gravity: damping should scale the carried velocity.
	p := Point{Pos: Vec2{1, 0}, PrevPos: Vec2{0, 0}}
	p.integrate(Vec2{}, 0.5, 0.01)
	if math.Abs(p.Pos.X-1.5) > 1e-12 {
		t.Fatalf("x after damped step = %f, want 1.5", p.Pos.X)
	}
}

func TestLockedPointNeverIntegrates(t *testing.T) {
	p := Point{Pos: Vec2{5, 5}, PrevPos: Vec2{0, 0}, Locked: true}
	for i := 0; i < 100; i++ {
		p.integrate(Vec2{0, 1e6}, 1.0, 1.0)
	}
	if p.Pos != (Vec2{5, 5}) {
		t.Fatalf("locked point moved to (%f, %f)", p.Pos.X, p.Pos.Y)
	}
}
