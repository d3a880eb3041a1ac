package plot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is a supersampled drawing surface. Coordinates are in output
// pixels; the backing image is Supersample times larger.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64
	w, h  int
}

// NewCanvas allocates a w×h canvas filled with bg.
func NewCanvas(w, h, supersample int, bg color.Color) *Canvas {
	if supersample < 1 {
		supersample = 1
	}
	sw, sh := w*supersample, h*supersample
	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		img:   img,
		z:     vector.NewRasterizer(sw, sh),
		scale: float64(supersample),
		w:     w,
		h:     h,
	}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

func (c *Canvas) pt(x, y float64) (float32, float32) {
	return float32(x * c.scale), float32(y * c.scale)
}

func (c *Canvas) fill(col color.Color) {
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Line strokes a straight line of the given width.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		c.Dot(x0, y0, width/2, col)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(c.pt(x0+nx, y0+ny))
	c.z.LineTo(c.pt(x1+nx, y1+ny))
	c.z.LineTo(c.pt(x1-nx, y1-ny))
	c.z.LineTo(c.pt(x0-nx, y0-ny))
	c.fill(col)
}

// Polyline strokes consecutive points.
func (c *Canvas) Polyline(xs, ys []float64, width float64, col color.Color) {
	for i := 1; i < len(xs) && i < len(ys); i++ {
		c.Line(xs[i-1], ys[i-1], xs[i], ys[i], width, col)
	}
}

// Dot fills a disc of radius r.
func (c *Canvas) Dot(x, y, r float64, col color.Color) {
	const sides = 24
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(c.pt(x+r, y))
	for i := 1; i < sides; i++ {
		a := float64(i) / sides * 2 * math.Pi
		c.z.LineTo(c.pt(x+r*math.Cos(a), y+r*math.Sin(a)))
	}
	c.fill(col)
}

// Image returns the canvas reduced to its output size.
func (c *Canvas) Image() *image.RGBA {
	return Downsample(c.img, c.w, c.h)
}

// Label draws text with its baseline at (x, y) on an output-sized image.
func Label(img draw.Image, x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
