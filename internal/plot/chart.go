// Package plot renders diagnostic charts for waves and closest-point scenes.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"geomkit/internal/mathutil"
	"geomkit/internal/scenario"
)

// Options controls chart size and quality.
type Options struct {
	Size        int // output width and height in pixels
	Supersample int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	return o
}

const margin = 24.0

var (
	background = color.RGBA{0x16, 0x18, 0x1d, 0xff}
	axisColor  = color.RGBA{0x55, 0x5a, 0x66, 0xff}
	textColor  = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colorA     = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	colorB     = color.RGBA{0xff, 0xb7, 0x4d, 0xff}
	colorPair  = color.RGBA{0xef, 0x53, 0x50, 0xff}

	// Palette colors successive wave series.
	Palette = []color.RGBA{colorA, colorB, {0x81, 0xc7, 0x84, 0xff}, {0xba, 0x68, 0xc8, 0xff}, colorPair}
)

// Series is one sampled curve.
type Series struct {
	Name   string
	Values []float64
}

// Waves draws each series left to right over the full chart width.
func Waves(opts Options, series []Series) *image.RGBA {
	opts = opts.withDefaults()
	c := NewCanvas(opts.Size, opts.Size, opts.Supersample, background)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		lo, hi = 0, 1
	}
	if hi-lo < 1e-9 {
		lo, hi = lo-0.5, hi+0.5
	}
	pad := (hi - lo) * 0.1
	lo, hi = lo-pad, hi+pad

	w, h := float64(c.Width()), float64(c.Height())
	toY := func(v float64) float64 {
		return h - margin - (v-lo)/(hi-lo)*(h-2*margin)
	}

	c.Line(margin, h-margin, w-margin, h-margin, 1, axisColor)
	c.Line(margin, margin, margin, h-margin, 1, axisColor)
	if lo < 0 && hi > 0 {
		c.Line(margin, toY(0), w-margin, toY(0), 1, axisColor)
	}

	for i, s := range series {
		if len(s.Values) < 2 {
			continue
		}
		xs := make([]float64, len(s.Values))
		ys := make([]float64, len(s.Values))
		for j, v := range s.Values {
			xs[j] = margin + float64(j)/float64(len(s.Values)-1)*(w-2*margin)
			ys[j] = toY(v)
		}
		c.Polyline(xs, ys, 2, Palette[i%len(Palette)])
	}

	img := c.Image()
	for i, s := range series {
		Label(img, int(margin)+4, int(margin)+12+i*14, s.Name, Palette[i%len(Palette)])
	}
	return img
}

// Scene draws both inputs of a scenario and the solved closest pair,
// projected through view (an orthographic camera rotation).
func Scene(opts Options, s scenario.Scenario, r scenario.Result, view mathutil.Mat3) *image.RGBA {
	opts = opts.withDefaults()
	c := NewCanvas(opts.Size, opts.Size, opts.Supersample, background)

	a0, a1 := s.A0, s.A1
	b0, b1 := s.B0, s.B1
	if s.Mode == scenario.Lines {
		a0, a1 = extend(s.A0, s.A1, r.OnA)
		b0, b1 = extend(s.B0, s.B1, r.OnB)
	}

	pts := []mathutil.Vec3{a0, a1, b0, b1, r.OnA, r.OnB}
	proj := make([][2]float64, len(pts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range pts {
		v := view.MulVec3(p)
		proj[i] = [2]float64{v[0], -v[1]} // screen y points down
		minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
		minY, maxY = math.Min(minY, -v[1]), math.Max(maxY, -v[1])
	}

	w, h := float64(c.Width()), float64(c.Height())
	span := math.Max(maxX-minX, maxY-minY)
	if span < 1e-9 {
		span = 1
	}
	k := (math.Min(w, h) - 2*margin) / span
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	screen := func(i int) (float64, float64) {
		return w/2 + (proj[i][0]-cx)*k, h/2 + (proj[i][1]-cy)*k
	}

	x0, y0 := screen(0)
	x1, y1 := screen(1)
	c.Line(x0, y0, x1, y1, 2.5, colorA)
	x0, y0 = screen(2)
	x1, y1 = screen(3)
	c.Line(x0, y0, x1, y1, 2.5, colorB)

	pax, pay := screen(4)
	pbx, pby := screen(5)
	c.Line(pax, pay, pbx, pby, 1.5, colorPair)
	c.Dot(pax, pay, 4, colorPair)
	c.Dot(pbx, pby, 4, colorPair)

	img := c.Image()
	Label(img, 8, 16, fmt.Sprintf("%s (%s)", s.Name, s.Mode), textColor)
	Label(img, 8, opts.Size-8, fmt.Sprintf("d = %.4f", r.Distance), colorPair)
	return img
}

// extend widens the drawn span of an infinite line so it covers p0, p1 and
// the closest point on it, with some slack on both sides.
func extend(p0, p1, on mathutil.Vec3) (mathutil.Vec3, mathutil.Vec3) {
	u := p1.Sub(p0)
	uu := u.Dot(u)
	if uu == 0 {
		return p0, p1
	}
	t := on.Sub(p0).Dot(u) / uu
	lo, hi := math.Min(0, t)-0.5, math.Max(1, t)+0.5
	return p0.Add(u.Scale(lo)), p0.Add(u.Scale(hi))
}
