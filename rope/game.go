// Package rope is the Verlet rope demo: a constraint chain hanging from a
// draggable anchor, colliding with circular obstacles, rendered through a
// pixelate and CRT post-processing chain.
package rope

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"neonbox/config"
	"neonbox/fx"
	"neonbox/verlet"
)

var (
	colorBackdrop = color.NRGBA{R: 12, G: 10, B: 24, A: 255}
	colorObstacle = color.NRGBA{R: 60, G: 50, B: 110, A: 255}
	colorSegment  = color.NRGBA{R: 255, G: 120, B: 200, A: 255}
	colorPoint    = color.NRGBA{R: 255, G: 230, B: 250, A: 255}
	colorAnchor   = color.NRGBA{R: 120, G: 255, B: 180, A: 255}
	colorHUD      = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
)

// frameInput is one frame of input state, gathered in Update so the step
// logic stays window-free.
type frameInput struct {
	dragging   bool
	dragX      float64
	dragY      float64
	togglePost bool
}

// Game is the rope demo. It implements ebiten.Game.
type Game struct {
	cfg config.Rope
	sim *verlet.Simulation

	pixelate *fx.Pixelate
	crt      *fx.CRT
	post     *fx.Chain
	postOn   bool

	watcher    *config.Watcher
	configPath string

	scene   *ebiten.Image
	hudFace ebtext.Face
	elapsed float64

	prevAltEnter bool

	segBuf [][2]verlet.Vec2
	posBuf []verlet.Vec2
}

// NewGame builds the demo from cfg. If configPath is non-empty the demo
// watches that file and hot-swaps the simulation when it changes.
func NewGame(cfg config.Rope, configPath string) (*Game, error) {
	sim, err := newSimulation(cfg)
	if err != nil {
		return nil, err
	}

	pixelate, err := fx.NewPixelate(cfg.Post.PixelSize)
	if err != nil {
		return nil, fmt.Errorf("rope: pixelate shader: %w", err)
	}
	crt, err := fx.NewCRT(cfg.Post.Curvature, cfg.Post.ScanlineIntensity, cfg.Post.ChromaticOffset)
	if err != nil {
		return nil, fmt.Errorf("rope: crt shader: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		sim:        sim,
		pixelate:   pixelate,
		crt:        crt,
		post:       fx.NewChain(pixelate, crt),
		postOn:     true,
		configPath: configPath,
		hudFace:    ebtext.NewGoXFace(basicfont.Face7x13),
	}

	if configPath != "" {
		w, err := config.NewWatcher(watchDir(configPath))
		if err != nil {
			return nil, fmt.Errorf("rope: watch config: %w", err)
		}
		g.watcher = w
	}
	return g, nil
}

// newSimulation maps the demo config onto the solver's.
func newSimulation(cfg config.Rope) (*verlet.Simulation, error) {
	obstacles := make([]verlet.Obstacle, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		obstacles[i] = verlet.Obstacle{Center: verlet.Vec2{X: o.X, Y: o.Y}, Radius: o.Radius}
	}
	return verlet.New(verlet.Config{
		PointCount: cfg.PointCount,
		Spacing:    cfg.Spacing,
		Anchor:     verlet.Vec2{X: cfg.AnchorX, Y: cfg.AnchorY},
		Gravity:    cfg.Gravity,
		Iterations: cfg.Iterations,
		Damping:    cfg.Damping,
		DT:         cfg.TimeStep,
		Obstacles:  obstacles,
	})
}

// Update gathers input, applies pending config reloads and advances the
// simulation exactly one fixed step.
func (g *Game) Update() error {
	g.handleWindowKeys()
	g.drainWatcher()

	cx, cy := ebiten.CursorPosition()
	in := frameInput{
		dragging:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		dragX:      float64(cx),
		dragY:      float64(cy),
		togglePost: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	g.step(in)
	return nil
}

// step advances the demo one fixed timestep. Split from Update so tests can
// drive it without a window.
func (g *Game) step(in frameInput) {
	if in.togglePost {
		g.postOn = !g.postOn
	}
	if in.dragging {
		g.sim.Drag(verlet.Vec2{X: in.dragX, Y: in.dragY})
	} else {
		g.sim.Release()
	}

	g.sim.Step()
	g.elapsed += g.cfg.TimeStep
	g.crt.Time = g.elapsed
}

// handleWindowKeys toggles fullscreen on Alt+Enter.
func (g *Game) handleWindowKeys() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnter := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnter && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnter
}

// drainWatcher applies any config file change the watcher picked up. A bad
// edit is logged and ignored; the running simulation keeps its tuning.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if filepath.Clean(path) != filepath.Clean(g.configPath) {
				continue
			}
			if err := g.reload(); err != nil {
				log.Printf("rope: config reload rejected: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("rope: config watcher: %v", err)
		default:
			return
		}
	}
}

// reload re-reads the config file and replaces the simulation and post
// parameters wholesale. The old simulation keeps running if anything fails.
func (g *Game) reload() error {
	cfg, err := config.LoadRope(g.configPath)
	if err != nil {
		return err
	}
	sim, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.sim = sim
	g.pixelate.Size = cfg.Post.PixelSize
	g.crt.Curvature = cfg.Post.Curvature
	g.crt.ScanlineIntensity = cfg.Post.ScanlineIntensity
	g.crt.ChromaticOffset = cfg.Post.ChromaticOffset
	log.Printf("rope: config reloaded from %s (%d points)", g.configPath, cfg.PointCount)
	return nil
}

// Draw renders the scene into an offscreen image and pushes it through the
// post chain, or straight to the screen when post is off.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == nil {
		g.scene = ebiten.NewImage(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}
	g.scene.Fill(colorBackdrop)

	for _, o := range g.sim.Obstacles() {
		vector.DrawFilledCircle(g.scene,
			float32(o.Center.X), float32(o.Center.Y), float32(o.Radius), colorObstacle, true)
	}

	g.segBuf = g.sim.Segments(g.segBuf[:0])
	for _, seg := range g.segBuf {
		if seg[0] == seg[1] {
			continue // zero-length, no direction to stroke along
		}
		vector.StrokeLine(g.scene,
			float32(seg[0].X), float32(seg[0].Y),
			float32(seg[1].X), float32(seg[1].Y), 3, colorSegment, true)
	}

	g.posBuf = g.sim.Positions(g.posBuf[:0])
	for i, p := range g.posBuf {
		clr := colorPoint
		if i == 0 {
			clr = colorAnchor
		}
		vector.DrawFilledCircle(g.scene, float32(p.X), float32(p.Y), 4, clr, true)
	}

	g.drawHUD(g.scene)

	if g.postOn {
		g.post.Apply(screen, g.scene)
	} else {
		screen.DrawImage(g.scene, nil)
	}
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	hud := fmt.Sprintf("FPS %0.1f | %d points | post %s\ndrag: LMB  toggle post: space",
		ebiten.ActualFPS(), g.cfg.PointCount, onOff(g.postOn))
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colorHUD)
	ebtext.Draw(dst, hud, g.hudFace, op)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// watchDir returns the directory the config file lives in, which is what
// fsnotify wants to watch.
func watchDir(configPath string) string {
	return filepath.Dir(configPath)
}

// Close stops the config watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
