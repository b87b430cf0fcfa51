package fireworks

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonbox/audio"
	"neonbox/fx"
)

// Simulation timestep. One step per Ebitengine tick, never wall-clock.
const dt = 1.0 / 60.0

// Show is the fireworks demo. It implements ebiten.Game.
type Show struct {
	cfg Config
	rng *rand.Rand

	rockets []rocket
	sparks  []particle
	trail   []particle

	spawnIn float64
	elapsed float64

	snd       *audio.Player // nil runs silent
	glow      *fx.Glow
	offscreen *ebiten.Image
}

// NewShow builds the demo. snd may be nil for a silent show.
func NewShow(cfg Config, snd *audio.Player) (*Show, error) {
	glow, err := fx.NewGlow(0.25, 1.4)
	if err != nil {
		return nil, fmt.Errorf("fireworks: glow shader: %w", err)
	}
	s := &Show{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(1)),
		snd:  snd,
		glow: glow,
	}
	s.spawnIn = s.nextDelay()
	return s, nil
}

func (s *Show) nextDelay() float64 {
	return s.cfg.LaunchEveryMin + s.rng.Float64()*(s.cfg.LaunchEveryMax-s.cfg.LaunchEveryMin)
}

// Update reads input and advances the show one fixed step.
func (s *Show) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		s.launchAt(float64(x))
	}
	s.step(dt)
	return nil
}

// step advances all rockets and particles. Split from Update so tests can
// drive the show without a window.
func (s *Show) step(dt float64) {
	s.elapsed += dt

	s.spawnIn -= dt
	if s.spawnIn <= 0 {
		s.launchAt(float64(s.cfg.ScreenWidth) * (0.15 + 0.7*s.rng.Float64()))
		s.spawnIn = s.nextDelay()
	}

	for i := len(s.rockets) - 1; i >= 0; i-- {
		r := &s.rockets[i]
		r.vy += s.cfg.Gravity * dt
		r.x += r.vx * dt
		r.y += r.vy * dt

		r.trailTimer += dt
		for r.trailTimer >= 0.02 {
			r.trailTimer -= 0.02
			s.trail = append(s.trail, newTrailDot(s.rng, r))
		}

		// Burst once the climb has nearly stalled.
		if r.vy > -40 {
			s.burst(*r)
			s.rockets = append(s.rockets[:i], s.rockets[i+1:]...)
		}
	}

	updateParticles(&s.sparks, s.cfg.Gravity, s.cfg.SparkDrag, dt)
	updateParticles(&s.trail, 0, 0, dt)
}

func updateParticles(ps *[]particle, gravity, drag, dt float64) {
	list := *ps
	for i := len(list) - 1; i >= 0; i-- {
		p := &list[i]
		p.age += dt
		p.vy += gravity * dt
		if drag > 0 {
			damp := 1 - drag*dt
			if damp < 0 {
				damp = 0
			}
			p.vx *= damp
			p.vy *= damp
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		a, _ := p.fade.Update(float32(dt))
		p.alpha = float64(a)

		if !p.alive() {
			list = append(list[:i], list[i+1:]...)
		}
	}
	*ps = list
}

// launchAt fires a rocket from the bottom of the screen at the given x.
func (s *Show) launchAt(x float64) {
	speed := s.cfg.RocketSpeedMin + s.rng.Float64()*(s.cfg.RocketSpeedMax-s.cfg.RocketSpeedMin)
	s.rockets = append(s.rockets, rocket{
		x:   x,
		y:   float64(s.cfg.ScreenHeight),
		vx:  (s.rng.Float64() - 0.5) * 40,
		vy:  -speed,
		clr: palette[s.rng.Intn(len(palette))],
	})
	if s.snd != nil {
		s.snd.LaunchWhoosh()
	}
}

// burst replaces a rocket with a ring of sparks.
func (s *Show) burst(r rocket) {
	n := s.cfg.SparkCountMin + s.rng.Intn(s.cfg.SparkCountMax-s.cfg.SparkCountMin+1)
	for i := 0; i < n; i++ {
		s.sparks = append(s.sparks, newSpark(
			s.rng, r.x, r.y, s.cfg.SparkSpeedMax,
			s.cfg.SparkLifetimeMin, s.cfg.SparkLifetimeMax, r.clr))
	}
	if s.snd != nil {
		s.snd.BurstPop()
	}
}

// Draw renders the show into an offscreen frame and composites it through
// the glow filter.
func (s *Show) Draw(screen *ebiten.Image) {
	if s.offscreen == nil {
		s.offscreen = ebiten.NewImage(s.cfg.ScreenWidth, s.cfg.ScreenHeight)
	}
	s.offscreen.Fill(color.NRGBA{R: 4, G: 4, B: 12, A: 255})

	for i := range s.rockets {
		r := &s.rockets[i]
		vector.DrawFilledCircle(s.offscreen, float32(r.x), float32(r.y), 2, color.NRGBA{R: 255, G: 240, B: 200, A: 255}, true)
	}
	drawParticles(s.offscreen, s.trail)
	drawParticles(s.offscreen, s.sparks)

	s.glow.Apply(screen, s.offscreen)
}

func drawParticles(dst *ebiten.Image, ps []particle) {
	for i := range ps {
		p := &ps[i]
		clr := p.clr
		clr.A = uint8(float64(clr.A) * p.alpha)
		vector.DrawFilledCircle(dst, float32(p.x), float32(p.y), float32(p.size), clr, true)
	}
}

// Layout reports the fixed logical screen size.
func (s *Show) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.cfg.ScreenWidth, s.cfg.ScreenHeight
}
