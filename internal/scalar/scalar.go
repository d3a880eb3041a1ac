// Package scalar holds single-value interpolation and easing helpers.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
	gscalar "gonum.org/v1/gonum/floats/scalar"

	"geomkit/internal/mathutil"
)

// ToRad converts degrees to radians.
func ToRad(deg float64) float64 { return mathutil.Deg2Rad(deg) }

// ToDeg converts radians to degrees.
func ToDeg(rad float64) float64 { return mathutil.Rad2Deg(rad) }

// Map remaps x from [xMin, xMax] onto [zMin, zMax] without clamping.
func Map(x, xMin, xMax, zMin, zMax float64) float64 {
	return (x-xMin)/(xMax-xMin)*(zMax-zMin) + zMin
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// Norm returns where v sits in [lo, hi] as a fraction (0 at lo, 1 at hi).
func Norm(lo, hi, v float64) float64 {
	return (v - lo) / (hi - lo)
}

// Lerp interpolates between a and b. The (1-t)·a + t·b form returns b
// exactly at t = 1.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// Fract returns the fractional part of f, always in [0, 1).
func Fract(f float64) float64 {
	return f - math.Floor(f)
}

// Step returns 0 below edge and 1 from edge upward.
func Step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// NearZero snaps values within mathutil.Epsilon of zero to zero.
func NearZero(v float64) float64 {
	if gscalar.EqualWithinAbs(v, 0, mathutil.Epsilon) {
		return 0
	}
	return v
}

// SmoothStep is the cubic Hermite ease between edge1 and edge2.
// See https://en.wikipedia.org/wiki/Smoothstep.
func SmoothStep(edge1, edge2, v float64) float64 {
	x := Clamp((v-edge1)/(edge2-edge1), 0, 1)
	return x * x * (3 - 2*x)
}
