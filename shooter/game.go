package shooter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonbox/audio"
	"neonbox/fx"
)

// Simulation timestep. One step per Ebitengine tick, never wall-clock.
const dt = 1.0 / 60.0

// frameInput is everything the step logic needs from the input devices,
// gathered once per Update so the step itself stays window-free.
type frameInput struct {
	player   PlayerInput
	painting bool
	fire     bool
	cursorX  float64
	cursorY  float64
}

// Game is the voxel-destruction shooter. It implements ebiten.Game.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	player Player
	grid   *VoxelGrid

	bullets   []bullet
	particles []particle
	shake     shake
	elapsed   float64

	snd  *audio.Player // nil runs silent
	bg   *fx.Background
	glow *fx.Glow

	worldLayer  *ebiten.Image
	bulletLayer *ebiten.Image
	glowLayer   *ebiten.Image
}

// NewGame builds the demo. snd may be nil for a silent game.
func NewGame(cfg Config, snd *audio.Player) (*Game, error) {
	bg, err := fx.NewBackground()
	if err != nil {
		return nil, fmt.Errorf("shooter: background shader: %w", err)
	}
	glow, err := fx.NewGlow(0.3, 1.6)
	if err != nil {
		return nil, fmt.Errorf("shooter: glow shader: %w", err)
	}
	return &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(1)),
		player: newPlayer(cfg),
		grid:   NewVoxelGrid(cfg.VoxelSize),
		snd:    snd,
		bg:     bg,
		glow:   glow,
	}, nil
}

// Update gathers input and advances the game one fixed step.
func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	in := frameInput{
		player: PlayerInput{
			Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
			Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
		},
		painting: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		fire:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		cursorX:  float64(cx),
		cursorY:  float64(cy),
	}
	g.step(in, dt)
	return nil
}

// step advances the whole game. Split from Update so tests can drive it
// without a window.
func (g *Game) step(in frameInput, dt float64) {
	g.elapsed += dt

	if in.painting {
		g.grid.PaintCircle(in.cursorX, in.cursorY, g.cfg.DrawRadius)
	}
	if in.fire {
		g.fireAt(in.cursorX, in.cursorY)
	}

	g.player.update(in.player, g.grid, g.cfg, dt)
	g.updateBullets(dt)
	g.particles = updateShooterParticles(g.particles, dt)
	g.shake.step(g.rng, dt)
}

// fireAt shoots a bullet from the player center toward the target. A target
// on top of the player has no direction, so nothing fires.
func (g *Game) fireAt(tx, ty float64) {
	px, py := g.player.center()
	dx, dy := tx-px, ty-py
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	g.bullets = append(g.bullets, bullet{
		x:  px,
		y:  py,
		vx: dx / length * g.cfg.BulletSpeed,
		vy: dy / length * g.cfg.BulletSpeed,
	})
}

// Draw renders the shader background, then the shaken world, then the
// bullet layer composited through the glow filter.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.worldLayer == nil {
		g.worldLayer = ebiten.NewImage(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
		g.bulletLayer = ebiten.NewImage(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
		g.glowLayer = ebiten.NewImage(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}

	g.bg.Draw(screen, g.elapsed)

	g.worldLayer.Clear()
	g.grid.Draw(g.worldLayer, colorVoxel)
	drawShooterParticles(g.worldLayer, g.particles)
	vector.DrawFilledRect(g.worldLayer,
		float32(g.player.x), float32(g.player.y),
		float32(g.player.w), float32(g.player.h), colorPlayer, false)

	g.bulletLayer.Clear()
	for i := range g.bullets {
		b := &g.bullets[i]
		vector.DrawFilledRect(g.bulletLayer,
			float32(b.x), float32(b.y), bulletSize, bulletSize, colorBullet, false)
	}
	g.glowLayer.Clear()
	g.glow.Apply(g.glowLayer, g.bulletLayer)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.shake.offsetX, g.shake.offsetY)
	screen.DrawImage(g.worldLayer, op)
	screen.DrawImage(g.glowLayer, op)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
