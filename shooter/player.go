package shooter

// Player is the green box the user steers. Width and height are fixed; the
// velocity is explicit since the shooter uses plain Euler integration, not
// the rope's Verlet scheme.
type Player struct {
	x, y    float64
	vx, vy  float64
	w, h    float64
	jumping bool
}

// PlayerInput is one frame of control state.
type PlayerInput struct {
	Left, Right, Jump bool
}

// newPlayer spawns the player near the bottom left, as the original demo
// does.
func newPlayer(cfg Config) Player {
	return Player{
		x: 100,
		y: float64(cfg.ScreenHeight) - 100,
		w: 30,
		h: 30,
	}
}

// update applies input, gravity and terrain collision for one step.
func (p *Player) update(in PlayerInput, grid *VoxelGrid, cfg Config, dt float64) {
	switch {
	case in.Left:
		p.vx = -cfg.PlayerSpeed
	case in.Right:
		p.vx = cfg.PlayerSpeed
	default:
		p.vx = 0
	}
	if in.Jump && !p.jumping {
		p.vy = cfg.JumpVelocity
		p.jumping = true
	}

	p.vy += cfg.Gravity * dt

	newX := p.x + p.vx*dt
	newY := p.y + p.vy*dt
	p.resolveTerrain(&newX, &newY, grid, cfg)

	// Window bounds.
	if newX < 0 {
		newX = 0
	}
	if max := float64(cfg.ScreenWidth) - p.w; newX > max {
		newX = max
	}
	if floor := float64(cfg.ScreenHeight) - p.h; newY > floor {
		newY = floor
		p.vy = 0
		p.jumping = false
	}

	p.x = newX
	p.y = newY
}

// resolveTerrain blocks movement into voxels, stepping up low ledges first.
// Horizontal and vertical axes resolve separately so sliding along walls
// works.
func (p *Player) resolveTerrain(newX, newY *float64, grid *VoxelGrid, cfg Config) {
	// Horizontal first, at the old height.
	if grid.CollidesRect(*newX, p.y, p.w, p.h) {
		if p.canStepUp(*newX, p.y, grid, cfg) {
			*newY = p.y - cfg.StepHeight
		} else {
			*newX = p.x
			p.vx = 0
		}
	}

	// Then vertical at the resolved horizontal position.
	if grid.CollidesRect(*newX, *newY, p.w, p.h) {
		if p.vy > 0 {
			*newY = p.y
			p.vy = 0
			p.jumping = false
		} else if p.vy < 0 {
			*newY = p.y
			p.vy = 0
		}
	}

	// Airborne check: nothing under the feet means we are falling.
	if !grid.CollidesRect(*newX, *newY, p.w, p.h) &&
		!grid.CollidesRect(*newX, *newY+1, p.w, p.h) {
		p.jumping = true
	}
}

// canStepUp reports whether the blocked position clears after raising the
// player by the step height.
func (p *Player) canStepUp(x, y float64, grid *VoxelGrid, cfg Config) bool {
	if !grid.CollidesRect(x, y, p.w, p.h) {
		return false
	}
	return !grid.CollidesRect(x, y-cfg.StepHeight, p.w, p.h)
}

// center returns the player's middle point, where bullets spawn.
func (p *Player) center() (float64, float64) {
	return p.x + p.w/2, p.y + p.h/2
}
