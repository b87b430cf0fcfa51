package rope

import (
	"os"
	"path/filepath"
	"testing"

	"neonbox/config"
)

func newTestGame(t *testing.T, configPath string) *Game {
	t.Helper()
	g, err := NewGame(config.DefaultRope(), configPath)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestNewSimulationMapsConfig(t *testing.T) {
	cfg := config.DefaultRope()
	sim, err := newSimulation(cfg)
	if err != nil {
		t.Fatalf("newSimulation: %v", err)
	}

	if got := len(sim.Positions(nil)); got != cfg.PointCount {
		t.Fatalf("simulation has %d points, config says %d", got, cfg.PointCount)
	}
	if a := sim.Anchor(); a.X != cfg.AnchorX || a.Y != cfg.AnchorY {
		t.Fatalf("anchor at (%g, %g), config says (%g, %g)", a.X, a.Y, cfg.AnchorX, cfg.AnchorY)
	}
	if got := len(sim.Obstacles()); got != len(cfg.Obstacles) {
		t.Fatalf("%d obstacles, config says %d", got, len(cfg.Obstacles))
	}
}

func TestDragMovesAnchor(t *testing.T) {
	g := newTestGame(t, "")

	g.step(frameInput{dragging: true, dragX: 200, dragY: 150})
	if a := g.sim.Anchor(); a.X != 200 || a.Y != 150 {
		t.Fatalf("anchor at (%g, %g) after drag to (200, 150)", a.X, a.Y)
	}

	// Released, the locked anchor stays where the drag left it.
	for i := 0; i < 30; i++ {
		g.step(frameInput{})
	}
	if a := g.sim.Anchor(); a.X != 200 || a.Y != 150 {
		t.Fatalf("anchor drifted to (%g, %g) after release", a.X, a.Y)
	}
}

func TestSpaceTogglesPostChain(t *testing.T) {
	g := newTestGame(t, "")
	if !g.postOn {
		t.Fatal("post chain starts disabled")
	}
	g.step(frameInput{togglePost: true})
	if g.postOn {
		t.Fatal("toggle did not disable the post chain")
	}
	g.step(frameInput{togglePost: true})
	if !g.postOn {
		t.Fatal("second toggle did not re-enable the post chain")
	}
}

func TestReloadSwapsSimulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rope.yaml")
	if err := os.WriteFile(path, []byte("point_count: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newTestGame(t, path)
	if err := g.reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if g.cfg.PointCount != 10 {
		t.Fatalf("config point count %d after reload, want 10", g.cfg.PointCount)
	}
	if got := len(g.sim.Positions(nil)); got != 10 {
		t.Fatalf("simulation has %d points after reload, want 10", got)
	}
}

func TestReloadRejectsInvalidEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rope.yaml")
	if err := os.WriteFile(path, []byte("damping: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := newTestGame(t, path)
	before := len(g.sim.Positions(nil))
	if err := g.reload(); err == nil {
		t.Fatal("reload accepted damping outside (0, 1]")
	}
	if got := len(g.sim.Positions(nil)); got != before {
		t.Fatalf("rejected reload still swapped the simulation: %d points, had %d", got, before)
	}
}
