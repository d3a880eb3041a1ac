package plot

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"

	"geomkit/internal/mathutil"
	"geomkit/internal/scenario"
	"geomkit/internal/wave"
)

func differsFromBackground(img *image.RGBA) bool {
	bg := color.RGBAModel.Convert(background).(color.RGBA)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				return true
			}
		}
	}
	return false
}

func TestCanvasDownsample(t *testing.T) {
	c := NewCanvas(40, 30, 3, background)
	c.Line(2, 2, 38, 28, 2, colorA)
	c.Dot(20, 15, 5, colorPair)
	img := c.Image()
	if got := img.Bounds(); got.Dx() != 40 || got.Dy() != 30 {
		t.Fatalf("bounds %v, want 40x30", got)
	}
	if img.RGBAAt(20, 15) == color.RGBAModel.Convert(background).(color.RGBA) {
		t.Error("dot centre left at background color")
	}
	if img.RGBAAt(38, 2) != color.RGBAModel.Convert(background).(color.RGBA) {
		t.Error("far corner was painted")
	}
}

func TestWaves(t *testing.T) {
	w := wave.Unit()
	series := []Series{
		{Name: "triangle", Values: wave.Sample(func(x float64) float64 { return w.Triangle(x) }, 0, 2, 200)},
		{Name: "square", Values: wave.Sample(func(x float64) float64 { return w.Square(x) }, 0, 2, 200)},
	}
	img := Waves(Options{Size: 128, Supersample: 2}, series)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 128 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if !differsFromBackground(img) {
		t.Fatal("nothing drawn")
	}

	// flat and empty input must not panic
	Waves(Options{}, []Series{{Name: "flat", Values: []float64{2, 2, 2}}})
	Waves(Options{}, nil)
}

func TestScene(t *testing.T) {
	for _, s := range scenario.Builtin() {
		r, err := s.Solve()
		if err != nil {
			t.Fatal(err)
		}
		img := Scene(Options{Size: 96, Supersample: 2}, s, r, mathutil.SceneView)
		if img.Bounds().Dx() != 96 {
			t.Fatalf("%s: bounds %v", s.Name, img.Bounds())
		}
		if !differsFromBackground(img) {
			t.Fatalf("%s: nothing drawn", s.Name)
		}
	}
}

func TestExtend(t *testing.T) {
	p0, p1 := extend(mathutil.Vec3{0, 0, 0}, mathutil.Vec3{1, 0, 0}, mathutil.Vec3{3, 0, 0})
	if p0 != (mathutil.Vec3{-0.5, 0, 0}) || p1 != (mathutil.Vec3{3.5, 0, 0}) {
		t.Fatalf("extend = %v, %v", p0, p1)
	}
}

func TestSaveTGA(t *testing.T) {
	img := Waves(Options{Size: 32}, []Series{{Name: "x", Values: []float64{0, 1}}})
	path := filepath.Join(t.TempDir(), "nested", "chart.tga")
	if err := Save(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := tga.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("decoded bounds %v", b)
	}
}

func TestEncodeWebP(t *testing.T) {
	img := Waves(Options{Size: 32}, nil)
	var buf bytes.Buffer
	if err := Encode(&buf, img, "WEBP"); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Fatalf("not a RIFF/WEBP stream: % x", b[:min(len(b), 12)])
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.bmp")
	if err := Save(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("partial file left behind")
	}
}
