package debug

import (
	"fmt"
	"runtime"
	"time"

	"seasonfx/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawPerformance(vp engine2D.Viewport, info Info, startY int) {
	ui := NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %.1f (raylib %d)", d.fps, rl.GetFPS()), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)
	ui.IndentLabel(fmt.Sprintf("Frames: %d in %s", info.Frames, info.Elapsed.Round(time.Second)), 10)

	monitor := rl.GetCurrentMonitor()
	ui.IndentLabel(fmt.Sprintf("Refresh Rate: %d Hz", rl.GetMonitorRefreshRate(monitor)), 10)
	ui.Separator()

	ui.Header("Memory Usage:")
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Process Total: %.2f MB", float64(d.memStats.Sys)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("GC Cycles: %d", d.memStats.NumGC), 10)
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)
	ui.Separator()

	ui.Header("Surface:")
	ui.IndentLabel(fmt.Sprintf("Logical: %.0fx%.0f", vp.Width, vp.Height), 10)
	bw, bh := vp.Backing()
	ui.IndentLabel(fmt.Sprintf("Backing: %dx%d @%.2f", bw, bh, vp.PixelRatio), 10)
	ui.IndentLabel(fmt.Sprintf("Window: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight()), 10)
	ui.IndentLabel(fmt.Sprintf("Monitor: %s", rl.GetMonitorName(monitor)), 10)
	ui.IndentLabel(fmt.Sprintf("Overlay: %v", info.Overlay), 10)
	ui.IndentLabel(fmt.Sprintf("UI Scale: %.2fx", d.uiScale), 10)
	ui.Separator()

	ui.Header("Files:")
	config := info.ConfigPath
	if config == "" {
		config = "(defaults)"
	}
	ui.IndentLabel(fmt.Sprintf("Config: %s", config), 10)
	ui.IndentLabel(fmt.Sprintf("Prefs: %s", info.PrefsPath), 10)
}
