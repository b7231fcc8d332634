//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sims/sand"
	"sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// materialKeys binds digit keys to the paintable materials in order.
var materialKeys = func() map[ebiten.Key]sand.Material {
	keys := make(map[ebiten.Key]sand.Material)
	for i, m := range sand.Paintable() {
		if i >= len(digitKeys) {
			break
		}
		keys[digitKeys[i]] = m
	}
	return keys
}()

// Game adapts the sand world to the ebiten.Game interface. Each frame it
// feeds pointer input into the world, runs whatever whole ticks the fixed-step
// accumulator says are due, then pulls one snapshot for display.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep
	log     core.Logger

	colors     []color.RGBA
	background color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config, logger core.Logger) *Game {
	if logger == nil {
		logger = core.NopLogger()
	}
	size := world.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		world:      world,
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(world, scale),
		hud:        ui.NewHUD(world, cfg.HUD),
		clock:      core.NewFixedStep(cfg.TPS),
		log:        logger,
		background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		scale:      scale,
		seed:       world.Config().Seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.clock.Reset()
	g.tickOnce = false
	g.log.Infof("reset with seed %d", seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debugf("paused=%v at tick %d", g.paused, g.world.Tick())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	g.world.Apply(g.input())

	ticks := g.clock.Due()
	if g.paused {
		ticks = 0
		if g.tickOnce {
			ticks = 1
		}
	}
	for i := 0; i < ticks; i++ {
		g.world.Step()
	}
	g.tickOnce = false
	return nil
}

// input samples the mouse, wheel and material hotkeys into a sand.Input.
func (g *Game) input() sand.Input {
	mx, my := ebiten.CursorPosition()
	in := sand.Input{X: mx / g.scale, Y: my / g.scale}
	for key, m := range materialKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Material = m
		}
	}
	_, wheel := ebiten.Wheel()
	in.WheelDelta = wheel
	if mx >= g.viewWidth() || g.hud.Contains(mx, my) {
		return in
	}
	in.Paint = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Erase = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	return in
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.colors = g.world.SnapshotInto(g.colors)
	g.painter.Blit(screen, g.colors, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return g.viewWidth() + g.hudWidth(), s.H * g.scale
}

func (g *Game) viewWidth() int { return g.world.Size().W * g.scale }

func (g *Game) hudWidth() int {
	if g.hud == nil {
		return 0
	}
	return g.hud.Width()
}
