// Package term drives the sand world from a terminal: mouse and keys become
// sand.Input, ticks follow a fixed-step accumulator, and each snapshot is
// drawn as half-block glyphs so one terminal cell shows two grid rows.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

// materialRunes binds '1'..'9' to the paintable materials in order.
var materialRunes = hotkeys(sand.Paintable())

func hotkeys(materials []sand.Material) map[rune]sand.Material {
	keys := make(map[rune]sand.Material, len(materials))
	for i, m := range materials {
		if i >= 9 {
			break
		}
		keys[rune('1'+i)] = m
	}
	return keys
}

// Frontend owns the terminal screen and serializes input, ticks and drawing.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	clock  *core.FixedStep
	log    core.Logger

	colors     []color.RGBA
	background color.RGBA

	pointerX, pointerY int
	paint, erase       bool
	pending            sand.Input

	paused   bool
	tickOnce bool
	seed     int64
}

// New wraps an initialized screen. The caller keeps ownership of the screen.
func New(screen tcell.Screen, world *sand.World, tps int, logger core.Logger) *Frontend {
	if logger == nil {
		logger = core.NopLogger()
	}
	return &Frontend{
		screen:     screen,
		world:      world,
		clock:      core.NewFixedStep(tps),
		log:        logger,
		background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		seed:       world.Config().Seed,
	}
}

// FitConfig sizes the grid to a terminal of cols x rows, keeping the last row
// for the status line. Explicit dimensions in cfg win when they fit.
func FitConfig(cfg sand.Config, cols, rows int, explicit bool) sand.Config {
	maxW := max(cols, 1)
	maxH := max((rows-1)*2, 2)
	if !explicit || cfg.Width > maxW {
		cfg.Width = maxW
	}
	if !explicit || cfg.Height > maxH {
		cfg.Height = maxH
	}
	return cfg
}

// HandleEvent folds one terminal event into the pending input. It returns
// false when the user asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	r := ev.Rune()
	if m, ok := materialRunes[r]; ok {
		f.pending.Material = m
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		f.paused = !f.paused
		f.log.Debugf("paused=%v at tick %d", f.paused, f.world.Tick())
	case 'n':
		f.tickOnce = true
	case 'r':
		f.reset(f.seed)
	case 's':
		f.reset(time.Now().UnixNano())
	case '+', '=':
		f.pending.WheelDelta++
	case '-':
		f.pending.WheelDelta--
	}
	return true
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	f.pointerX, f.pointerY = col, row*2
	btn := ev.Buttons()
	f.paint = btn&tcell.Button1 != 0
	f.erase = btn&tcell.Button2 != 0
	if btn&tcell.WheelUp != 0 {
		f.pending.WheelDelta++
	}
	if btn&tcell.WheelDown != 0 {
		f.pending.WheelDelta--
	}
}

func (f *Frontend) reset(seed int64) {
	f.seed = seed
	f.world.Reset(seed)
	f.clock.Reset()
	f.log.Infof("reset with seed %d", seed)
}

// Frame applies the pending input, runs ticks whole ticks unless paused, and
// redraws. It returns the number of ticks actually run.
func (f *Frontend) Frame(ticks int) int {
	in := f.pending
	in.X, in.Y = f.pointerX, f.pointerY
	in.Paint, in.Erase = f.paint, f.erase
	f.world.Apply(in)
	f.pending = sand.Input{}

	if f.paused {
		ticks = 0
		if f.tickOnce {
			ticks = 1
		}
	}
	for i := 0; i < ticks; i++ {
		f.world.Step()
	}
	f.tickOnce = false
	f.Draw()
	return ticks
}

// Draw renders the current snapshot and the status line.
func (f *Frontend) Draw() {
	size := f.world.Size()
	f.colors = f.world.SnapshotInto(f.colors)
	cols, rows := f.screen.Size()
	for ty := 0; ty < rows-1 && ty*2 < size.H; ty++ {
		for x := 0; x < cols && x < size.W; x++ {
			top := f.cellColor(x, ty*2)
			bottom := f.background
			if ty*2+1 < size.H {
				bottom = f.cellColor(x, ty*2+1)
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			f.screen.SetContent(x, ty, upperHalf, nil, style)
		}
	}
	f.drawStatus(rows-1, cols)
	f.screen.Show()
}

func (f *Frontend) cellColor(x, y int) color.RGBA {
	return render.Over(f.colors[x+y*f.world.Size().W], f.background)
}

// StatusLine summarizes tick, material counts and brush state.
func (f *Frontend) StatusLine() string {
	stats := f.world.Stats()
	line := fmt.Sprintf("tick %d  sand %d  water %d  wood %d  brush %.0f %s",
		stats.Tick, stats.Counts[sand.Sand], stats.Counts[sand.Water], stats.Counts[sand.Wood],
		f.world.Brush(), f.world.Selected())
	if f.paused {
		line += "  [paused]"
	}
	return line
}

func (f *Frontend) drawStatus(row, cols int) {
	if row < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	line := []rune(f.StatusLine())
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		f.screen.SetContent(x, row, r, nil, style)
	}
}

// Run polls terminal events and renders at the given frame interval until
// the user quits or ctx is cancelled. It stops only between ticks.
func (f *Frontend) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	f.screen.EnableMouse()
	defer f.screen.DisableMouse()
	f.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				f.log.Infof("quit at tick %d", f.world.Tick())
				return nil
			}
		case <-ticker.C:
			f.Frame(f.clock.Due())
		}
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
