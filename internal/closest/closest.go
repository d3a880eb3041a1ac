// Package closest computes nearest points between points, infinite lines
// and bounded segments.
//
// Lines and segments are given by two points P0, P1 with direction
// u = P1 - P0; a segment restricts the parameter t of P0 + t·u to [0, 1].
// All functions are pure and safe for concurrent use. Zero-length
// directions are not rejected: the result is then non-finite. Callers that
// need validation use Degenerate first.
package closest

import (
	"errors"
	"math"

	"geomkit/internal/mathutil"
)

// ParallelEpsilon is the Gram determinant below which two directions are
// treated as parallel.
const ParallelEpsilon = mathutil.Epsilon

// ErrDegenerate reports a line or segment whose two points coincide.
var ErrDegenerate = errors.New("closest: zero-length line or segment")

// Vec3 is the point and direction type of every query.
type Vec3 = mathutil.Vec3

// Degenerate reports whether p0 and p1 define no direction.
func Degenerate(p0, p1 Vec3) bool {
	return p1.Sub(p0).LenSq() == 0
}

// PointOnLine2D returns the point on the infinite line (x0,y0)-(x1,y1)
// nearest to (px,py).
func PointOnLine2D(x0, y0, x1, y1, px, py float64) (float64, float64) {
	dx := x1 - x0
	dy := y1 - y0
	t := ((px-x0)*dx + (py-y0)*dy) / (dx*dx + dy*dy)
	return x0 + dx*t, y0 + dy*t
}

// PointOnLine3D returns the point on the infinite line through a and b
// nearest to p. If out is non-nil the result is also stored there.
func PointOnLine3D(a, b, p Vec3, out *Vec3) Vec3 {
	d := b.Sub(a)
	t := p.Sub(a).Dot(d) / d.Dot(d)
	r := a.Add(d.Scale(t))
	if out != nil {
		*out = r
	}
	return r
}

// gram holds the pairwise dot products shared by the line and segment
// solvers: u = a1-a0, v = b1-b0, w = a0-b0.
type gram struct {
	u, v          Vec3
	a, b, c, d, e float64
	det           float64 // a·c - b², never negative in exact arithmetic
}

func newGram(a0, a1, b0, b1 Vec3) gram {
	g := gram{u: a1.Sub(a0), v: b1.Sub(b0)}
	w := a0.Sub(b0)
	g.a = g.u.Dot(g.u)
	g.b = g.u.Dot(g.v)
	g.c = g.v.Dot(g.v)
	g.d = g.u.Dot(w)
	g.e = g.v.Dot(w)
	g.det = g.a*g.c - g.b*g.b
	return g
}

// Lines returns the closest pair of points between the infinite line
// through a0, a1 and the infinite line through b0, b1. The first point lies
// on line A, the second on line B.
//
// For (nearly) parallel lines the point on A is pinned to a0.
func Lines(a0, a1, b0, b1 Vec3) (Vec3, Vec3) {
	g := newGram(a0, a1, b0, b1)
	tU, tV := lineParams(g)
	return a0.Add(g.u.Scale(tU)), b0.Add(g.v.Scale(tV))
}

func lineParams(g gram) (tU, tV float64) {
	if g.det < ParallelEpsilon {
		// use the larger denominator
		if g.b > g.c {
			return 0, g.d / g.b
		}
		return 0, g.e / g.c
	}
	return (g.b*g.e - g.c*g.d) / g.det, (g.a*g.e - g.b*g.d) / g.det
}

// Segments returns the closest pair of points between segment a0-a1 and
// segment b0-b1. Both points always lie on their segment.
func Segments(a0, a1, b0, b1 Vec3) (Vec3, Vec3) {
	g := newGram(a0, a1, b0, b1)
	sc, tc := segmentParams(g)
	return a0.Add(g.u.Scale(sc)), b0.Add(g.v.Scale(tc))
}

// segmentParams returns s, t in [0,1]. The parameters are kept as
// numerator/denominator pairs so the clamps below stay exact. The t-edge
// pass must see the values already clamped by the s-edge pass.
func segmentParams(g gram) (sc, tc float64) {
	sD, tD := g.det, g.det
	var sN, tN float64

	if g.det < ParallelEpsilon {
		// parallel: pin s to a0 and solve t alone
		sN, sD = 0, 1
		tN, tD = g.e, g.c
	} else {
		sN = g.b*g.e - g.c*g.d
		tN = g.a*g.e - g.b*g.d
		switch {
		case sN < 0: // s=0 edge
			sN = 0
			tN, tD = g.e, g.c
		case sN > sD: // s=1 edge
			sN = sD
			tN, tD = g.e+g.b, g.c
		}
	}

	switch {
	case tN < 0: // t=0 edge
		tN = 0
		switch {
		case -g.d < 0:
			sN = 0
		case -g.d > g.a:
			sN = sD
		default:
			sN, sD = -g.d, g.a
		}
	case tN > tD: // t=1 edge
		tN = tD
		switch s := g.b - g.d; {
		case s < 0:
			sN = 0
		case s > g.a:
			sN = sD
		default:
			sN, sD = s, g.a
		}
	}

	return ratio(sN, sD), ratio(tN, tD)
}

func ratio(n, d float64) float64 {
	if math.Abs(n) < mathutil.Epsilon {
		return 0
	}
	return n / d
}
