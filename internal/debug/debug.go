// Package debug draws the F8 inspector sidebar.
package debug

import (
	"math"
	"os"
	"runtime"
	"time"

	"seasonfx/internal/engine2D"
	"seasonfx/internal/engine2D/particle"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DebugTab int

const (
	TabParticles DebugTab = iota
	TabPerformance
)

var tabNames = []string{"Particles", "Performance"}

// Info is the session state shown next to the simulation.
type Info struct {
	Preference string
	ConfigPath string
	PrefsPath  string
	Overlay    bool
	Frames     uint64
	Elapsed    time.Duration
}

type DebugOverlay struct {
	ActiveTab         DebugTab
	ShowBoundingBoxes bool
	ScrollOffset      float64

	fontHeight   int
	lineHeight   int
	tabHeight    int
	sidebarWidth int
	uiScale      float64

	prevLeftMouseButton bool
	mouseX              int
	mouseY              int
	clicked             bool

	uiBuffer          rl.RenderTexture2D
	font              rl.Font
	cachedWidth       int
	cachedHeight      int
	monitorHeight     int
	bufferInitialized bool

	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

var fontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// NewDebugOverlay must be called after the window is open.
func NewDebugOverlay() *DebugOverlay {
	monitor := rl.GetCurrentMonitor()

	d := &DebugOverlay{
		ActiveTab:      TabParticles,
		monitorHeight:  rl.GetMonitorHeight(monitor),
		lastUpdateTime: time.Now(),
	}
	d.updateLayout()

	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			d.font = rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
			break
		}
	}
	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(d.monitorHeight)/1080.0)
	d.fontHeight = int(14 * scale)
	d.lineHeight = int(22 * scale)
	d.tabHeight = int(32 * scale)
	d.sidebarWidth = int(340 * scale)
	d.uiScale = scale
}

// Contains reports whether a window point is over the sidebar, so clicks
// there are not handled twice.
func (d *DebugOverlay) Contains(x, y float64) bool {
	return x >= 0 && x < float64(d.sidebarWidth) && y >= 0 && y < float64(d.cachedHeight)
}

func (d *DebugOverlay) Update() {
	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	mPos := rl.GetMousePosition()
	d.mouseX = int(mPos.X)
	d.mouseY = int(mPos.Y)
	x := float64(d.mouseX)
	y := float64(d.mouseY)

	leftPressed := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed

	if d.clicked && y < float64(d.tabHeight) && x < float64(d.sidebarWidth) {
		tabWidth := float64(d.sidebarWidth) / float64(len(tabNames))
		d.ActiveTab = DebugTab(int(x / tabWidth))
	}

	toggleRect := d.getBoundingBoxToggleRect()
	if d.clicked && rl.CheckCollisionPointRec(mPos, toggleRect) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}

	if d.ActiveTab == TabParticles && x < float64(d.sidebarWidth) {
		d.ScrollOffset -= float64(rl.GetMouseWheelMove()) * 20
		if d.ScrollOffset < 0 {
			d.ScrollOffset = 0
		}
	}
}

// Draw paints the sidebar and, when enabled, particle bounds. Call it after
// the surface has been presented.
func (d *DebugOverlay) Draw(sys *particle.System, vp engine2D.Viewport, info Info) {
	sh := rl.GetScreenHeight()

	if d.cachedWidth != d.sidebarWidth || d.cachedHeight != sh {
		if d.bufferInitialized {
			rl.UnloadRenderTexture(d.uiBuffer)
		}
		d.uiBuffer = rl.LoadRenderTexture(int32(d.sidebarWidth), int32(sh))
		d.bufferInitialized = true
		d.cachedWidth = d.sidebarWidth
		d.cachedHeight = sh
	}

	if d.ShowBoundingBoxes {
		d.drawParticleBoundingBoxes(sys)
	}

	rl.BeginTextureMode(d.uiBuffer)
	rl.ClearBackground(rl.Blank)
	rl.DrawRectangle(0, 0, int32(d.sidebarWidth), int32(sh), rl.NewColor(0, 0, 0, 200))

	d.drawTabs()
	d.drawBoundingBoxToggle()

	contentY := d.tabHeight + int(float64(d.tabHeight)*0.9)
	switch d.ActiveTab {
	case TabParticles:
		d.drawParticleInspector(sys, info, contentY-int(d.ScrollOffset))
	case TabPerformance:
		d.drawPerformance(vp, info, contentY)
	}
	rl.EndTextureMode()

	sourceRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), -float32(sh))
	destRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), float32(sh))
	rl.DrawTexturePro(d.uiBuffer.Texture, sourceRec, destRec, rl.NewVector2(0, 0), 0, rl.White)
}

func (d *DebugOverlay) Unload() {
	if d.bufferInitialized {
		rl.UnloadRenderTexture(d.uiBuffer)
		d.bufferInitialized = false
	}
	if d.font.BaseSize > 0 {
		rl.UnloadFont(d.font)
	}
}

func (d *DebugOverlay) drawTabs() {
	tabWidth := d.sidebarWidth / len(tabNames)

	for i, name := range tabNames {
		color := rl.NewColor(100, 100, 100, 255)
		if d.ActiveTab == DebugTab(i) {
			color = rl.NewColor(150, 150, 150, 255)
		}

		x := int32(i * tabWidth)
		rl.DrawRectangle(x, 0, int32(tabWidth), int32(d.tabHeight), color)
		d.DrawText(name, x+10, int32(float64(d.tabHeight)*0.3), int32(d.fontHeight), rl.White)
	}
}

func (d *DebugOverlay) DrawText(text string, x, y int32, fontSize int32, color rl.Color) {
	if d.font.BaseSize > 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, color)
	} else {
		rl.DrawText(text, x, y, fontSize, color)
	}
}
