package verlet

// Point is a single simulated mass. Velocity is never stored: it is implied
// by the gap between Pos and PrevPos, so hard position corrections (sticks,
// obstacles) automatically adjust the velocity too. That is what keeps the
// integrator stable under iterative constraint solving.
type Point struct {
	Pos     Vec2
	PrevPos Vec2
	// Locked pins the point: integration and stick corrections skip it.
	// Its position only moves via an explicit anchor override.
	Locked bool
}

// integrate advances the point one fixed timestep of position Verlet.
// A freshly created point has PrevPos == Pos, so it starts at rest.
func (p *Point) integrate(gravity Vec2, damping, dt float64) {
	if p.Locked {
		return
	}
	vel := p.Pos.Sub(p.PrevPos).Scale(damping)
	p.PrevPos = p.Pos
	p.Pos = p.Pos.Add(vel).Add(gravity.Scale(dt * dt))
}
