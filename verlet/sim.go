package verlet

import "fmt"

// Config describes a rope simulation. All values are fixed for the lifetime
// of the Simulation built from them.
type Config struct {
	// PointCount is how many points form the chain. The first point is the
	// locked anchor.
	PointCount int

	// Spacing is the rest length of every stick, and the initial horizontal
	// gap between neighboring points.
	Spacing float64

	// Anchor is the initial position of the locked first point. The chain
	// extends to the right of it.
	Anchor Vec2

	// Gravity is the constant downward acceleration in units/s^2.
	Gravity float64

	// Iterations is how many relaxation passes run per step. More passes
	// stiffen the chain; the default is tuned for visual plausibility, not
	// exactness.
	Iterations int

	// Damping scales the implied velocity each step. 1 is lossless; values
	// below 1 bleed energy. Must be in (0, 1].
	Damping float64

	// DT is the fixed timestep in seconds. The step never consults the wall
	// clock: a variable timestep would destabilize the iterative solver.
	DT float64

	Obstacles []Obstacle
}

// Validate reports the first problem with the config, if any.
func (c Config) Validate() error {
	if c.PointCount < 2 {
		return fmt.Errorf("verlet: point count %d, need at least 2", c.PointCount)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("verlet: spacing %g must be positive", c.Spacing)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("verlet: iterations %d, need at least 1", c.Iterations)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("verlet: damping %g outside (0, 1]", c.Damping)
	}
	if c.DT <= 0 {
		return fmt.Errorf("verlet: timestep %g must be positive", c.DT)
	}
	for i, o := range c.Obstacles {
		if o.Radius <= 0 {
			return fmt.Errorf("verlet: obstacle %d radius %g must be positive", i, o.Radius)
		}
	}
	return nil
}

// Simulation owns a chain of points connected by sticks, plus the static
// obstacles they collide with. It is single-threaded and frame-stepped: one
// Step call per rendered frame, no locking needed.
type Simulation struct {
	points     []Point
	sticks     []Stick
	obstacles  []Obstacle
	gravity    Vec2
	damping    float64
	dt         float64
	iterations int

	dragging   bool
	dragTarget Vec2
}

// New builds a simulation from cfg, failing fast on invalid values rather
// than checking anything per frame. Points start in a horizontal row at
// rest; stick rest lengths are captured from that initial separation.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	points := make([]Point, cfg.PointCount)
	for i := range points {
		pos := Vec2{cfg.Anchor.X + float64(i)*cfg.Spacing, cfg.Anchor.Y}
		points[i] = Point{Pos: pos, PrevPos: pos, Locked: i == 0}
	}

	sticks := make([]Stick, cfg.PointCount-1)
	for i := range sticks {
		rest := points[i+1].Pos.Sub(points[i].Pos).Len()
		sticks[i] = Stick{A: i, B: i + 1, RestLength: rest}
	}

	return &Simulation{
		points:     points,
		sticks:     sticks,
		obstacles:  append([]Obstacle(nil), cfg.Obstacles...),
		gravity:    Vec2{0, cfg.Gravity},
		damping:    cfg.Damping,
		dt:         cfg.DT,
		iterations: cfg.Iterations,
	}, nil
}

// Drag makes the anchor follow target starting with the next Step.
func (s *Simulation) Drag(target Vec2) {
	s.dragging = true
	s.dragTarget = target
}

// Release stops anchor dragging; the anchor stays where it was left.
func (s *Simulation) Release() {
	s.dragging = false
}

// Step advances the simulation one fixed timestep:
//
//  1. apply the anchor override if dragging
//  2. integrate every point
//  3. Iterations times: relax every stick in chain order, then push every
//     point out of every obstacle
//
// The obstacle correction is interleaved inside each pass rather than run
// once at the end, so it and the sticks settle on a jointly consistent
// shape. There is no settled detection; the full loop runs every frame.
func (s *Simulation) Step() {
	if s.dragging {
		// Writing PrevPos too suppresses the velocity the jump would imply.
		a := &s.points[0]
		a.Pos = s.dragTarget
		a.PrevPos = s.dragTarget
	}

	for i := range s.points {
		s.points[i].integrate(s.gravity, s.damping, s.dt)
	}

	for it := 0; it < s.iterations; it++ {
		for _, st := range s.sticks {
			st.relax(s.points)
		}
		for _, o := range s.obstacles {
			for i := range s.points {
				o.correct(&s.points[i])
			}
		}
	}
}

// Positions appends the current point positions in chain order to dst and
// returns it. The result is a snapshot; mutating it does not touch the
// simulation.
func (s *Simulation) Positions(dst []Vec2) []Vec2 {
	for i := range s.points {
		dst = append(dst, s.points[i].Pos)
	}
	return dst
}

// Segments appends the current stick endpoint pairs in chain order to dst
// and returns it.
func (s *Simulation) Segments(dst [][2]Vec2) [][2]Vec2 {
	for _, st := range s.sticks {
		dst = append(dst, [2]Vec2{s.points[st.A].Pos, s.points[st.B].Pos})
	}
	return dst
}

// Obstacles returns the static obstacle set. Callers must not modify it.
func (s *Simulation) Obstacles() []Obstacle {
	return s.obstacles
}

// Anchor returns the current anchor position.
func (s *Simulation) Anchor() Vec2 {
	return s.points[0].Pos
}
