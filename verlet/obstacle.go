package verlet

// Obstacle is a static circle that repels points. It never moves or rotates
// during a run.
type Obstacle struct {
	Center Vec2
	Radius float64
}

// correct pushes a point that sits inside the circle radially out onto the
// boundary. Purely positional, no restitution or friction. Locked points are
// corrected too: the anchor can be dragged into an obstacle and still gets
// pushed out.
func (o Obstacle) correct(p *Point) {
	delta := p.Pos.Sub(o.Center)
	dist := delta.Len()
	if dist >= o.Radius || dist == 0 {
		return
	}
	p.Pos = o.Center.Add(delta.Scale(o.Radius / dist))
}
