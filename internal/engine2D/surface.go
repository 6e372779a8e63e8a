package engine2D

import (
	"image/color"

	"seasonfx/internal/engine2D/particle"
	"seasonfx/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the full-window drawing target. Drawing happens in logical units
// into a render texture sized at the device pixel ratio; a Camera2D zoom maps
// one to the other. The texture holds premultiplied color.
type Surface struct {
	viewport   Viewport
	target     *rl.RenderTexture2D
	camera     rl.Camera2D
	drawing    bool
	Background color.NRGBA
}

var _ particle.Canvas = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{camera: rl.NewCamera2D(rl.NewVector2(0, 0), rl.NewVector2(0, 0), 0, 1)}
}

func (s *Surface) Viewport() Viewport { return s.viewport }

// Resize adopts a new logical size and pixel ratio and reallocates the
// backing texture when its pixel size changes. A zero size is ignored and
// reported as false.
func (s *Surface) Resize(width, height, ratio float64) bool {
	vp := NewViewport(width, height, ratio)
	if vp.Empty() {
		utils.Debug("Ignoring resize to %.0fx%.0f", width, height)
		return false
	}

	bw, bh := vp.Backing()
	if s.target == nil || s.target.Texture.Width != bw || s.target.Texture.Height != bh {
		if s.target != nil {
			rl.UnloadRenderTexture(*s.target)
		}
		rt := rl.LoadRenderTexture(bw, bh)
		rl.SetTextureFilter(rt.Texture, rl.FilterBilinear)
		s.target = &rt
		utils.Debug("Surface backing %dx%d (logical %.0fx%.0f @%.2f)", bw, bh, vp.Width, vp.Height, vp.PixelRatio)
	}

	s.viewport = vp
	s.camera.Zoom = float32(vp.PixelRatio)
	return true
}

// Begin starts a frame on the backing texture and clears it. It returns false
// and draws nothing when the surface is not allocated.
func (s *Surface) Begin() bool {
	if s.target == nil {
		return false
	}
	rl.BeginTextureMode(*s.target)
	rl.ClearBackground(premultiply(s.Background))
	rl.BeginMode2D(s.camera)
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	s.drawing = true
	return true
}

func (s *Surface) End() {
	if !s.drawing {
		return
	}
	rl.EndBlendMode()
	rl.EndMode2D()
	rl.EndTextureMode()
	s.drawing = false
}

// Present blits the backing texture over the whole window.
func (s *Surface) Present() {
	if s.target == nil {
		return
	}
	tex := s.target.Texture
	// Render textures are stored bottom-up.
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	dst := rl.NewRectangle(0, 0, float32(s.viewport.Width), float32(s.viewport.Height))
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	rl.EndBlendMode()
}

func (s *Surface) Unload() {
	if s.target != nil {
		rl.UnloadRenderTexture(*s.target)
		s.target = nil
	}
}

func (s *Surface) FillCircle(center particle.Vec2, radius float64, c color.NRGBA) {
	if !s.drawing || c.A == 0 {
		return
	}
	rl.DrawCircleV(vec(center), float32(radius), premultiply(c))
}

func (s *Surface) StrokeLine(from, to particle.Vec2, width float64, c color.NRGBA) {
	if !s.drawing || c.A == 0 {
		return
	}
	rl.DrawLineEx(vec(from), vec(to), float32(width), premultiply(c))
}

// FillFan fills ring as triangles around center. Each triangle is emitted in
// the winding raylib expects, whichever way the ring turns.
func (s *Surface) FillFan(center particle.Vec2, ring []particle.Vec2, c color.NRGBA) {
	if !s.drawing || c.A == 0 || len(ring) < 2 {
		return
	}
	col := premultiply(c)
	v1 := vec(center)
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		cross := (a.X-center.X)*(b.Y-center.Y) - (a.Y-center.Y)*(b.X-center.X)
		if cross > 0 {
			a, b = b, a
		}
		rl.DrawTriangle(v1, vec(a), vec(b), col)
	}
}

func vec(v particle.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// premultiply scales the color channels by alpha, rounding to nearest.
func premultiply(c color.NRGBA) color.RGBA {
	mul := func(v uint8) uint8 { return uint8((uint32(v)*uint32(c.A) + 127) / 255) }
	return rl.NewColor(mul(c.R), mul(c.G), mul(c.B), c.A)
}
