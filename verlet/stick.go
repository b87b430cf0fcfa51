package verlet

// Stick keeps two points at a fixed separation. Points are addressed by
// index into the simulation's point slice; sticks never own points and the
// point count is fixed for the whole run, so indices stay valid.
type Stick struct {
	A, B       int
	RestLength float64
}

// relax applies one half-correction pass: each unlocked endpoint moves half
// of the length error toward the other. A single pass is exact for a lone
// stick but only approximate in a chain, which is why the simulation runs
// several passes per frame.
func (s Stick) relax(points []Point) {
	a := &points[s.A]
	b := &points[s.B]
	delta := b.Pos.Sub(a.Pos)
	length := delta.Len()
	if length == 0 {
		// Coincident endpoints give no usable direction; leave both alone.
		return
	}
	corr := delta.Scale(0.5 * (length - s.RestLength) / length)
	if !a.Locked {
		a.Pos = a.Pos.Add(corr)
	}
	if !b.Locked {
		b.Pos = b.Pos.Sub(corr)
	}
}
