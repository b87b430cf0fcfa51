package shooter

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// particle is a short-lived debris or trail dot. Alpha falls linearly with
// remaining life, like the original demo.
type particle struct {
	x, y     float64
	vx, vy   float64
	age      float64
	lifetime float64
	clr      color.NRGBA
}

func updateShooterParticles(ps []particle, dt float64) []particle {
	for i := len(ps) - 1; i >= 0; i-- {
		p := &ps[i]
		p.age += dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		if p.age >= p.lifetime {
			ps = append(ps[:i], ps[i+1:]...)
		}
	}
	return ps
}

func drawShooterParticles(dst *ebiten.Image, ps []particle) {
	for i := range ps {
		p := &ps[i]
		clr := p.clr
		clr.A = uint8(float64(clr.A) * (1 - p.age/p.lifetime))
		vector.DrawFilledCircle(dst, float32(p.x), float32(p.y), 2, clr, false)
	}
}

// explosionBurst throws a ring of flash particles from an impact point.
func explosionBurst(rng *rand.Rand, x, y float64, lifetime float64) []particle {
	out := make([]particle, 0, 20)
	for i := 0; i < 20; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 100 + rng.Float64()*100
		out = append(out, particle{
			x: x, y: y,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle) * speed,
			lifetime: lifetime,
			clr:      colorExplode,
		})
	}
	return out
}

// debrisBurst throws a few slower fragments from a destroyed voxel.
func debrisBurst(rng *rand.Rand, x, y float64, lifetime float64) []particle {
	out := make([]particle, 0, 3)
	for i := 0; i < 3; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 50 + rng.Float64()*50
		out = append(out, particle{
			x: x, y: y,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle) * speed,
			lifetime: lifetime,
			clr:      colorDebris,
		})
	}
	return out
}
