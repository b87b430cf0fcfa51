package fireworks

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// particle is a single glowing dot: a burst spark or a piece of rocket
// trail. Alpha follows a tween instead of a raw age ratio so sparks linger
// bright and then drop off quickly.
type particle struct {
	x, y     float64
	vx, vy   float64
	age      float64
	lifetime float64
	size     float64
	clr      color.NRGBA
	alpha    float64
	fade     *gween.Tween
}

func (p *particle) alive() bool {
	return p.age < p.lifetime
}

// rocket climbs from the launch point and bursts near its apex.
type rocket struct {
	x, y       float64
	vx, vy     float64
	clr        color.NRGBA
	trailTimer float64
}

// newSpark throws one burst spark from (x, y) in a random direction.
func newSpark(rng *rand.Rand, x, y, maxSpeed float64, lifeMin, lifeMax float64, clr color.NRGBA) particle {
	angle := rng.Float64() * 2 * math.Pi
	// Bias speeds toward the rim so bursts read as shells, not blobs.
	speed := maxSpeed * (0.4 + 0.6*rng.Float64())
	lifetime := lifeMin + rng.Float64()*(lifeMax-lifeMin)
	return particle{
		x:        x,
		y:        y,
		vx:       math.Cos(angle) * speed,
		vy:       math.Sin(angle) * speed,
		lifetime: lifetime,
		size:     1.2 + rng.Float64()*1.6,
		clr:      clr,
		alpha:    1,
		fade:     gween.New(1, 0, float32(lifetime), ease.OutQuad),
	}
}

// newTrailDot leaves a short-lived ember behind a climbing rocket.
func newTrailDot(rng *rand.Rand, r *rocket) particle {
	const lifetime = 0.35
	return particle{
		x:        r.x + (rng.Float64()-0.5)*2,
		y:        r.y + (rng.Float64()-0.5)*2,
		vx:       (rng.Float64() - 0.5) * 20,
		vy:       (rng.Float64() - 0.5) * 20,
		lifetime: lifetime,
		size:     1 + rng.Float64(),
		clr:      color.NRGBA{R: 255, G: 210, B: 140, A: 255},
		alpha:    1,
		fade:     gween.New(0.8, 0, lifetime, ease.Linear),
	}
}
