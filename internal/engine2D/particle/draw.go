package particle

import (
	"image/color"
	"math"

	"seasonfx/internal/season"
)

// Canvas is the drawing surface shapes are painted on. Coordinates are in
// logical units and colors are not premultiplied.
type Canvas interface {
	FillCircle(center Vec2, radius float64, c color.NRGBA)
	// FillFan fills the polygon ring, which must be star-shaped about center.
	FillFan(center Vec2, ring []Vec2, c color.NRGBA)
	StrokeLine(from, to Vec2, width float64, c color.NRGBA)
}

const (
	curveSegments = 8
	glowSteps     = 3
	seedRays      = 6
	crystalArms   = 3
)

// pen paints one particle in its local frame: origin at the particle center,
// rotated by the particle rotation.
type pen struct {
	canvas   Canvas
	origin   Vec2
	cos, sin float64
	ring     []Vec2
}

func (p *pen) place(pt *Particle) {
	p.origin = Vec2{pt.X, pt.Y}
	p.sin, p.cos = math.Sincos(pt.Rotation)
	p.ring = p.ring[:0]
}

// at maps local coordinates to surface coordinates.
func (p *pen) at(x, y float64) Vec2 {
	return Vec2{
		X: p.origin.X + x*p.cos - y*p.sin,
		Y: p.origin.Y + x*p.sin + y*p.cos,
	}
}

func (p *pen) line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	p.canvas.StrokeLine(p.at(x0, y0), p.at(x1, y1), width, c)
}

// cubic appends the Bézier from (x0,y0) to (x3,y3) to the ring, without its
// start point.
func (p *pen) cubic(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		p.ring = append(p.ring, p.at(a*x0+b*x1+c*x2+d*x3, a*y0+b*y1+c*y2+d*y3))
	}
}

// glow paints a soft halo of the given radius, blending from the glow color
// at the rim to the core color at the center.
func (p *pen) glow(radius float64, pal Palette, alpha float64) {
	if !pal.Glow.Visible() || pal.GlowBlur <= 0 {
		return
	}
	for i := glowSteps; i >= 1; i-- {
		t := float64(i) / glowSteps
		tint := Tint{
			Color: pal.Primary.Color.BlendRgb(pal.Glow.Color, t),
			Alpha: pal.Glow.Alpha / glowSteps,
		}
		p.canvas.FillCircle(p.origin, radius+pal.GlowBlur*t, tint.NRGBA(alpha))
	}
}

type shapeFunc func(p *pen, pt *Particle, pal Palette)

var shapes = map[season.Mode]shapeFunc{
	season.Spring: drawPetal,
	season.Summer: drawSeed,
	season.Autumn: drawLeaf,
	season.Winter: drawCrystal,
}

// drawPetal fills a lens closed by two mirrored cubic curves.
func drawPetal(p *pen, pt *Particle, pal Palette) {
	s := pt.Size
	p.ring = append(p.ring, p.at(0, -0.9*s))
	p.cubic(0, -0.9*s, 0.9*s, -0.4*s, 0.8*s, 0.8*s, 0, s)
	p.cubic(0, s, -0.8*s, 0.8*s, -0.9*s, -0.4*s, 0, -0.9*s)
	p.ring = p.ring[:len(p.ring)-1]
	p.canvas.FillFan(p.origin, p.ring, pal.Primary.NRGBA(pt.Alpha))
}

// drawSeed paints a dandelion seed: a ring of rays, a stem and a tip dot.
func drawSeed(p *pen, pt *Particle, pal Palette) {
	s := pt.Size
	alpha := math.Min(0.55, pt.Alpha+0.18)

	p.glow(1.4*s, pal, alpha)
	ray := pal.Primary.NRGBA(alpha)
	for i := 0; i < seedRays; i++ {
		sin, cos := math.Sincos(tau / seedRays * float64(i))
		p.line(0, 0, cos*1.4*s, sin*1.4*s, 1.2, ray)
	}
	p.line(0, 0, 0, 2.1*s, 1, pal.Secondary.NRGBA(alpha))
	p.canvas.FillCircle(p.at(0, 2.2*s), 1.4, pal.Detail.NRGBA(alpha))
}

var leafOutline = [...]Vec2{
	{0, -1}, {0.35, -0.2}, {1, -0.25}, {0.45, 0.1}, {0.7, 0.85},
	{0, 0.4}, {-0.7, 0.85}, {-0.45, 0.1}, {-1, -0.25}, {-0.35, -0.2},
}

// drawLeaf fills a ten-point maple outline and adds a short stem.
func drawLeaf(p *pen, pt *Particle, pal Palette) {
	s := pt.Size
	for _, v := range leafOutline {
		p.ring = append(p.ring, p.at(v.X*s, v.Y*s))
	}
	p.canvas.FillFan(p.origin, p.ring, pal.Primary.NRGBA(pt.Alpha))
	p.line(0, 0.35*s, 0, 1.15*s, 1, pal.Secondary.NRGBA(pt.Alpha))
}

// drawCrystal strokes three lines through the center, 60° apart.
func drawCrystal(p *pen, pt *Particle, pal Palette) {
	s := pt.Size
	alpha := math.Min(0.55, pt.Alpha+0.16)

	p.glow(s, pal, alpha)
	c := pal.Primary.NRGBA(alpha)
	for i := 0; i < crystalArms; i++ {
		sin, cos := math.Sincos(math.Pi / crystalArms * float64(i))
		p.line(-cos*s, -sin*s, cos*s, sin*s, 1.3, c)
	}
}

// Draw paints orbs, then particles. It never modifies the pools.
func (s *System) Draw(c Canvas) {
	s.DrawOrbs(c)
	s.DrawParticles(c)
}

func (s *System) DrawOrbs(c Canvas) {
	for i := range s.orbs {
		o := &s.orbs[i]
		c.FillCircle(Vec2{o.X, o.Y}, o.R, s.tables.OrbTint.NRGBA(o.A))
	}
}

// DrawParticles paints each particle with the shape of its kind. Kinds with
// no shape are skipped.
func (s *System) DrawParticles(c Canvas) {
	p := &pen{canvas: c, ring: make([]Vec2, 0, 2*curveSegments+1)}
	for i := range s.particles {
		pt := &s.particles[i]
		shape, ok := shapes[pt.Kind]
		if !ok {
			continue
		}
		p.place(pt)
		shape(p, pt, s.tables.Palettes[pt.Kind])
	}
}
