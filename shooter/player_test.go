package shooter

import (
	"math"
	"testing"
)

// settle drops a fresh player onto the window floor.
func settle(p *Player, grid *VoxelGrid, cfg Config) {
	for i := 0; i < 200; i++ {
		p.update(PlayerInput{}, grid, cfg, dt)
	}
}

func TestPlayerLandsOnWindowFloor(t *testing.T) {
	cfg := DefaultConfig()
	grid := NewVoxelGrid(cfg.VoxelSize)
	p := newPlayer(cfg)

	settle(&p, grid, cfg)

	floor := float64(cfg.ScreenHeight) - p.h
	if p.y != floor {
		t.Fatalf("player rests at y=%g, want floor %g", p.y, floor)
	}
	if p.jumping {
		t.Fatal("player on the floor still counts as jumping")
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	cfg := DefaultConfig()
	grid := NewVoxelGrid(cfg.VoxelSize)
	p := newPlayer(cfg)
	settle(&p, grid, cfg)
	floor := p.y

	p.update(PlayerInput{Jump: true}, grid, cfg, dt)
	if !p.jumping {
		t.Fatal("jump did not set airborne state")
	}
	if p.y >= floor {
		t.Fatalf("player did not leave the floor: y=%g", p.y)
	}

	// Holding jump must not double-jump, and the arc must come back down.
	landed := false
	for i := 0; i < 300; i++ {
		p.update(PlayerInput{Jump: true}, grid, cfg, dt)
		if !p.jumping && p.y == floor {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed after jumping")
	}
}

func TestPlayerBlockedByTallWall(t *testing.T) {
	cfg := DefaultConfig()
	grid := NewVoxelGrid(cfg.VoxelSize)
	p := newPlayer(cfg)
	settle(&p, grid, cfg)

	// Wall at x=160, well taller than the step height.
	for cy := 140; cy <= 150; cy++ {
		grid.cells[cellKey{40, cy}] = struct{}{}
	}

	for i := 0; i < 30; i++ {
		p.update(PlayerInput{Right: true}, grid, cfg, dt)
	}

	// Right edge stops flush with the wall face.
	if got := p.x + p.w; math.Abs(got-160) > 0.01 {
		t.Fatalf("player right edge at %g, want flush with wall at 160", got)
	}
}

func TestPlayerStepsUpLowLedge(t *testing.T) {
	cfg := DefaultConfig()
	grid := NewVoxelGrid(cfg.VoxelSize)
	p := newPlayer(cfg)
	settle(&p, grid, cfg)
	floor := p.y

	// A one-voxel ledge on the floor, starting just right of the player.
	for cx := 33; cx <= 60; cx++ {
		grid.cells[cellKey{cx, 149}] = struct{}{}
	}

	for i := 0; i < 10; i++ {
		p.update(PlayerInput{Right: true}, grid, cfg, dt)
	}

	if want := floor - cfg.StepHeight; p.y != want {
		t.Fatalf("player stands at y=%g, want %g on top of the ledge", p.y, want)
	}
	if p.x <= 130 {
		t.Fatalf("player stalled at x=%g instead of walking onto the ledge", p.x)
	}
	if p.jumping {
		t.Fatal("player on the ledge counts as airborne")
	}
}

func TestPlayerClampedToWindow(t *testing.T) {
	cfg := DefaultConfig()
	grid := NewVoxelGrid(cfg.VoxelSize)
	p := newPlayer(cfg)
	settle(&p, grid, cfg)

	for i := 0; i < 600; i++ {
		p.update(PlayerInput{Left: true}, grid, cfg, dt)
	}
	if p.x != 0 {
		t.Fatalf("player ran past the left edge: x=%g", p.x)
	}

	for i := 0; i < 600; i++ {
		p.update(PlayerInput{Right: true}, grid, cfg, dt)
	}
	if want := float64(cfg.ScreenWidth) - p.w; p.x != want {
		t.Fatalf("player ran past the right edge: x=%g, want %g", p.x, want)
	}
}
