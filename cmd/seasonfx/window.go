package main

import (
	"context"
	"math/rand"
	"time"

	"seasonfx/internal/config"
	"seasonfx/internal/controls"
	"seasonfx/internal/debug"
	"seasonfx/internal/desktop"
	"seasonfx/internal/engine2D"
	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/prefs"
	"seasonfx/internal/season"
	"seasonfx/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

var digitKeys = []int32{rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

type WindowOptions struct {
	Config     *config.Config
	ConfigPath string
	Tables     particle.Tables
	Store      *prefs.FileStore
	Clock      season.Clock
	// Preview is a preference applied for this run without storing it.
	Preview string
}

type Window struct {
	cfg        *config.Config
	system     *particle.System
	surface    *engine2D.Surface
	frameClock *engine2D.FrameClock
	resizes    *engine2D.ResizeQueue
	binding    *controls.Binding
	strip      controls.Strip
	clicks     *controls.ClickDetector
	picks      chan string
	picking    bool
	preview    string
	display    *desktop.Display
	overlay    bool
	pixelRatio float64
	hover      int

	debugOverlay *debug.DebugOverlay
	info         debug.Info
}

func NewWindow(opts WindowOptions) *Window {
	system := particle.NewSystem(opts.Tables, rand.New(rand.NewSource(time.Now().UnixNano())))

	window := &Window{
		cfg:        opts.Config,
		system:     system,
		surface:    engine2D.NewSurface(),
		frameClock: engine2D.NewFrameClock(opts.Clock),
		resizes:    engine2D.NewResizeQueue(),
		binding:    controls.NewBinding(controls.DefaultTokens(), opts.Store, opts.Clock, system),
		strip:      controls.DefaultStrip(),
		clicks:     controls.NewClickDetector(),
		picks:      make(chan string, 1),
		preview:    opts.Preview,
		overlay:    opts.Config.Window.Overlay,
		pixelRatio: 1,
		hover:      -1,
		info: debug.Info{
			ConfigPath: opts.ConfigPath,
			PrefsPath:  opts.Store.Path(),
		},
	}
	window.surface.Background, _ = opts.Config.BackdropColor()
	return window
}

// openWindow creates the raylib window. Overlay mode needs the X server for
// the root size and pointer; without it the window mode is used.
func (window *Window) openWindow() error {
	width, height := window.cfg.Window.Width, window.cfg.Window.Height

	if window.overlay {
		display, err := desktop.Open()
		if err == nil {
			var w, h int
			w, h, err = display.RootSize()
			if err == nil {
				window.display = display
				width, height = w, h
			} else {
				display.Close()
			}
		}
		if err != nil {
			utils.Warn("Overlay unavailable, using a normal window: %v", err)
			window.overlay = false
		}
	}

	var flags uint32 = rl.FlagMsaa4xHint | rl.FlagWindowHighdpi
	if window.overlay {
		flags |= rl.FlagWindowUndecorated | rl.FlagWindowTransparent | rl.FlagWindowMousePassthrough | rl.FlagWindowTopmost
	} else {
		flags |= rl.FlagWindowResizable
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(width), int32(height), "seasonfx")
	if !rl.IsWindowReady() {
		return errors.New("could not open a window")
	}
	if window.overlay {
		rl.SetWindowPosition(0, 0)
		rl.SetExitKey(rl.KeyNull)
	}

	fps := window.cfg.Window.FPS
	if fps == 0 {
		fps = rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())
	}
	rl.SetTargetFPS(int32(fps))

	window.pixelRatio = engine2D.ClampPixelRatio(float64(rl.GetWindowScaleDPI().X))
	window.info.Overlay = window.overlay
	return nil
}

func (window *Window) Run(ctx context.Context) error {
	if err := window.openWindow(); err != nil {
		return err
	}
	defer rl.CloseWindow()
	defer window.surface.Unload()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if window.display != nil {
		defer window.display.Close()
		go func() {
			err := window.display.WatchRoot(ctx, func(w, h int) {
				window.resizes.Push(engine2D.Size{
					Width:      float64(w) / window.pixelRatio,
					Height:     float64(h) / window.pixelRatio,
					PixelRatio: window.pixelRatio,
				})
			})
			if err != nil && ctx.Err() == nil {
				utils.Warn("Root watcher stopped: %v", err)
			}
		}()
	}

	window.pushWindowSize()
	window.applyResize()

	window.binding.Init()
	if window.preview != "" {
		window.binding.Preview(window.preview)
	}
	window.syncInfo()

	window.debugOverlay = debug.NewDebugOverlay()
	defer window.debugOverlay.Unload()

	utils.Info("Starting frame loop...")
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
	return nil
}

func (window *Window) pushWindowSize() {
	window.resizes.Push(engine2D.Size{
		Width:      float64(rl.GetScreenWidth()),
		Height:     float64(rl.GetScreenHeight()),
		PixelRatio: float64(rl.GetWindowScaleDPI().X),
	})
}

// applyResize applies the latest pending size, if any.
func (window *Window) applyResize() {
	size, ok := window.resizes.Take()
	if !ok {
		return
	}
	if window.overlay && (int(size.Width) != rl.GetScreenWidth() || int(size.Height) != rl.GetScreenHeight()) {
		rl.SetWindowSize(int(size.Width), int(size.Height))
	}
	if window.surface.Resize(size.Width, size.Height, size.PixelRatio) {
		vp := window.surface.Viewport()
		window.system.SetBounds(vp.Width, vp.Height)
	}
}

func (window *Window) activate(token string) {
	window.binding.Activate(token)
	window.syncInfo()
}

func (window *Window) syncInfo() {
	token, _ := window.binding.ActiveToken()
	window.info.Preference = token
}

func (window *Window) Update() {
	if rl.IsWindowResized() {
		window.pushWindowSize()
	}
	window.applyResize()

	window.pollControls()

	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) pollControls() {
	select {
	case token := <-window.picks:
		window.picking = false
		if token != "" {
			window.activate(token)
		}
	default:
	}

	for i, key := range digitKeys {
		if rl.IsKeyPressed(key) {
			if token, ok := window.binding.Token(i); ok {
				window.activate(token)
			}
		}
	}

	if rl.IsKeyPressed(rl.KeyP) && !window.picking {
		window.picking = true
		current, _ := window.binding.ActiveToken()
		startPicker(current, window.picks)
	}

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}

	if !window.cfg.Window.Controls {
		return
	}

	x, y, down := window.pointer()
	if utils.ShowDebugUI && window.debugOverlay.Contains(x, y) {
		x, y = -1, -1
	}
	vp := window.surface.Viewport()
	rects := window.strip.Layout(window.binding.Len(), vp.Width, vp.Height)
	hit := controls.HitTest(rects, x, y)
	window.hover = hit
	if clicked := window.clicks.Update(hit, down); clicked >= 0 {
		if token, ok := window.binding.Token(clicked); ok {
			window.activate(token)
		}
	}
}

// pointer returns the pointer in logical window units. A click-through
// overlay receives no mouse events, so the X server is asked instead.
func (window *Window) pointer() (x, y float64, down bool) {
	if window.display != nil {
		p, err := window.display.Pointer()
		if err != nil {
			return -1, -1, false
		}
		return float64(p.X) / window.pixelRatio, float64(p.Y) / window.pixelRatio, p.Primary
	}
	pos := rl.GetMousePosition()
	return float64(pos.X), float64(pos.Y), rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

func (window *Window) Draw() {
	dt := window.frameClock.Tick()

	if window.surface.Begin() {
		window.system.Frame(dt, window.surface)
		window.surface.End()
	}

	rl.ClearBackground(rl.Blank)
	window.surface.Present()

	if window.cfg.Window.Controls {
		window.drawStrip()
	}

	if utils.ShowDebugUI {
		window.info.Frames = window.frameClock.Frames()
		window.info.Elapsed = window.frameClock.Elapsed()
		window.debugOverlay.Draw(window.system, window.surface.Viewport(), window.info)
	}
}

var (
	stripFill       = rl.NewColor(20, 22, 30, 150)
	stripFillHover  = rl.NewColor(40, 44, 58, 190)
	stripFillActive = rl.NewColor(235, 235, 240, 210)
	stripBorder     = rl.NewColor(255, 255, 255, 60)
	stripText       = rl.NewColor(235, 235, 240, 255)
	stripTextActive = rl.NewColor(20, 22, 30, 255)
)

func (window *Window) drawStrip() {
	vp := window.surface.Viewport()
	rects := window.strip.Layout(window.binding.Len(), vp.Width, vp.Height)
	const fontSize = 12

	for i, c := range window.binding.Controls() {
		r := rects[i]
		rec := rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))

		fill, text := stripFill, stripText
		switch {
		case c.Active:
			fill, text = stripFillActive, stripTextActive
		case i == window.hover || i == window.clicks.Pressed():
			fill = stripFillHover
		}

		rl.DrawRectangleRounded(rec, 0.35, 6, fill)
		rl.DrawRectangleLinesEx(rec, 1, stripBorder)

		tw := rl.MeasureText(c.Label, fontSize)
		tx := int32(r.X + (r.W-float64(tw))/2)
		ty := int32(r.Y + (r.H-fontSize)/2)
		rl.DrawText(c.Label, tx, ty, fontSize, text)
	}
}
