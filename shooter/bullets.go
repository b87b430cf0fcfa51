package shooter

// bullet is a fast square projectile. It explodes on terrain contact and
// disappears off screen.
type bullet struct {
	x, y   float64
	vx, vy float64
}

const bulletSize = 5.0

// updateBullets moves bullets, spawns their trails and fires explosions on
// impact. It reports the impact points so the game can shake and rumble.
func (g *Game) updateBullets(dt float64) {
	for i := len(g.bullets) - 1; i >= 0; i-- {
		b := &g.bullets[i]
		b.x += b.vx * dt
		b.y += b.vy * dt

		// Roughly half the frames leave a trail dot, like the original.
		if g.rng.Intn(2) == 0 {
			g.particles = append(g.particles, particle{
				x: b.x, y: b.y,
				lifetime: g.cfg.ParticleLifetime,
				clr:      colorTrailDot,
			})
		}

		hit := g.grid.CollidesRect(b.x, b.y, bulletSize, bulletSize)
		if hit {
			g.explodeAt(b.x, b.y)
		}

		offscreen := b.x < 0 || b.x > float64(g.cfg.ScreenWidth) ||
			b.y < 0 || b.y > float64(g.cfg.ScreenHeight)
		if hit || offscreen {
			g.bullets = append(g.bullets[:i], g.bullets[i+1:]...)
		}
	}
}

// explodeAt clears terrain, spawns debris and flash particles, and kicks
// the screen shake.
func (g *Game) explodeAt(x, y float64) {
	g.shake.trigger(g.cfg.ShakeIntensity, g.cfg.ShakeDuration)
	g.particles = append(g.particles, explosionBurst(g.rng, x, y, g.cfg.ParticleLifetime)...)

	for _, pos := range g.grid.DestroyCircle(x, y, g.cfg.ExplosionRadius) {
		g.particles = append(g.particles, debrisBurst(g.rng, pos[0], pos[1], g.cfg.ParticleLifetime)...)
	}

	if g.snd != nil {
		g.snd.Explosion()
	}
}
