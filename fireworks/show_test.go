package fireworks

import (
	"testing"
)

func testShow(t *testing.T) *Show {
	t.Helper()
	s, err := NewShow(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAutomaticLaunches(t *testing.T) {
	s := testShow(t)
	// Worst case a launch happens within LaunchEveryMax seconds.
	steps := int(s.cfg.LaunchEveryMax/dt) + 2
	launched := false
	for i := 0; i < steps; i++ {
		s.step(dt)
		if len(s.rockets) > 0 {
			launched = true
			break
		}
	}
	if !launched {
		t.Fatal("no rocket launched within the maximum delay")
	}
}

func TestRocketClimbsAndBursts(t *testing.T) {
	s := testShow(t)
	s.launchAt(400)
	r0 := s.rockets[0]
	if r0.vy >= 0 {
		t.Fatalf("rocket initial vy = %f, want upward (negative)", r0.vy)
	}

	y0 := r0.y
	s.step(dt)
	if s.rockets[0].y >= y0 {
		t.Fatalf("rocket did not climb: y %f -> %f", y0, s.rockets[0].y)
	}

	// Gravity must stall and burst it eventually.
	for i := 0; i < 600 && len(s.sparks) == 0; i++ {
		s.step(dt)
	}
	if len(s.sparks) == 0 {
		t.Fatal("rocket never burst")
	}
	if n := len(s.sparks); n < s.cfg.SparkCountMin {
		t.Fatalf("burst threw %d sparks, want at least %d", n, s.cfg.SparkCountMin)
	}
}

func TestBurstRemovesRocket(t *testing.T) {
	s := testShow(t)
	s.rockets = append(s.rockets, rocket{x: 100, y: 100, vy: -10, clr: palette[0]})
	s.spawnIn = 1e9 // keep the auto-launcher out of the way
	s.step(dt)
	if len(s.rockets) != 0 {
		t.Fatalf("stalled rocket not removed, %d left", len(s.rockets))
	}
	if len(s.sparks) == 0 {
		t.Fatal("stalled rocket did not burst")
	}
}

func TestSparksFadeAndExpire(t *testing.T) {
	s := testShow(t)
	s.spawnIn = 1e9
	s.burst(rocket{x: 200, y: 200, clr: palette[1]})

	a0 := s.sparks[0].alpha
	s.step(dt)
	if s.sparks[0].alpha >= a0 {
		t.Fatalf("spark alpha did not fall: %f -> %f", a0, s.sparks[0].alpha)
	}

	// All sparks die within the maximum lifetime.
	steps := int(s.cfg.SparkLifetimeMax/dt) + 2
	for i := 0; i < steps; i++ {
		s.step(dt)
	}
	if len(s.sparks) != 0 {
		t.Fatalf("%d sparks outlived the maximum lifetime", len(s.sparks))
	}
}

func TestTrailFollowsRocket(t *testing.T) {
	s := testShow(t)
	s.spawnIn = 1e9
	s.launchAt(300)
	for i := 0; i < 6; i++ {
		s.step(dt)
	}
	if len(s.trail) == 0 {
		t.Fatal("climbing rocket left no trail")
	}
}
