package scalar

import (
	"math"
	"testing"

	gscalar "gonum.org/v1/gonum/floats/scalar"
)

func TestScalarHelpers(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"ToRad", ToRad(90), math.Pi / 2},
		{"ToDeg", ToDeg(math.Pi), 180},
		{"Map", Map(5, 0, 10, 100, 200), 150},
		{"Map inverted", Map(2, 0, 4, 1, -1), 0},
		{"Clamp low", Clamp(-3.0, 0, 1), 0},
		{"Clamp high", Clamp(3.0, 0, 1), 1},
		{"Clamp inside", Clamp(0.25, 0, 1), 0.25},
		{"Norm", Norm(10, 20, 15), 0.5},
		{"Lerp", Lerp(2.0, 4.0, 0.25), 2.5},
		{"Lerp end", Lerp(0.1, 0.7, 1), 0.7},
		{"Fract", Fract(3.75), 0.75},
		{"Fract negative", Fract(-0.25), 0.75},
		{"Step below", Step(1, 0.5), 0},
		{"Step at edge", Step(1, 1), 1},
		{"NearZero small", NearZero(1e-7), 0},
		{"NearZero edge", NearZero(-1e-6), 0},
		{"NearZero keeps", NearZero(1e-3), 1e-3},
		{"SmoothStep mid", SmoothStep(0, 2, 1), 0.5},
		{"SmoothStep below", SmoothStep(0, 2, -1), 0},
		{"SmoothStep above", SmoothStep(0, 2, 5), 1},
	}
	for _, tt := range tests {
		if !gscalar.EqualWithinAbs(tt.got, tt.want, 1e-12) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if Clamp(7, 1, 5) != 5 {
		t.Error("integer Clamp")
	}
}

func TestBezierLinearControls(t *testing.T) {
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if got := Bezier3(1.0/3, 2.0/3, x); !gscalar.EqualWithinAbs(got, x, 1e-12) {
			t.Errorf("Bezier3(%v) = %v", x, got)
		}
		if got := Bezier7(1.0/7, 2.0/7, 3.0/7, 4.0/7, 5.0/7, 6.0/7, x); !gscalar.EqualWithinAbs(got, x, 1e-12) {
			t.Errorf("Bezier7(%v) = %v", x, got)
		}
	}
}

func TestBezierEndPoints(t *testing.T) {
	if Bezier3(0.9, -0.4, 0) != 0 || Bezier3(0.9, -0.4, 1) != 1 {
		t.Error("Bezier3 end points")
	}
	if Bezier7(3, -2, 1, 0.5, 9, -1, 0) != 0 || Bezier7(3, -2, 1, 0.5, 9, -1, 1) != 1 {
		t.Error("Bezier7 end points")
	}
}

func TestRnd(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if v := Rnd(-2, 3); v < -2 || v >= 3 {
			t.Fatalf("Rnd out of range: %v", v)
		}
	}
}

func TestLCG(t *testing.T) {
	a, b := NewLCG(42), NewLCG(42)
	for i := 0; i < 1000; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("step %d: %v != %v for the same seed", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("step %d: %v out of [0,1)", i, x)
		}
	}

	// 42·48271 = 2027382, then 2027382·48271 mod (2^31-1) on the first draw
	g := NewLCG(42)
	want := float64(uint64(2027382)*48271%2147483647) / (1 << 31)
	if got := g.Float64(); got != want {
		t.Fatalf("first draw %v, want %v", got, want)
	}

	if z := NewLCG(0); z.state == 0 {
		t.Fatal("zero seed left the generator stuck at zero")
	}
}
