// Package wave generates periodic signals between a minimum and a maximum.
package wave

import (
	"math"

	"geomkit/internal/mathutil"
)

// Wave describes the range and period shared by every generator.
// A zero Period is treated as 1.
type Wave struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Period float64 `json:"period"`
}

// Unit is the 0..1 wave with period 1.
func Unit() Wave {
	return Wave{Min: 0, Max: 1, Period: 1}
}

func (w Wave) period() float64 {
	if w.Period == 0 {
		return 1
	}
	return w.Period
}

// phase maps t onto [0, 2π) for the wave period.
func (w Wave) phase(t float64) float64 {
	p := w.period()
	if math.Mod(t, p) == 0 {
		return 0
	}
	ph := math.Mod(t*(mathutil.Pi2/p), mathutil.Pi2)
	if ph < 0 {
		ph += mathutil.Pi2
	}
	return ph
}

// Sawtooth rises linearly from Min towards Max over each period and drops
// back to Min.
func (w Wave) Sawtooth(t float64) float64 {
	amplitude := (w.Max - w.Min) * 0.5
	return 2*(w.phase(t)/mathutil.Pi2)*amplitude + w.Min
}

// Triangle peaks at a quarter period and bottoms out at three quarters.
func (w Wave) Triangle(t float64) float64 {
	amplitude := (w.Max - w.Min) * 0.5
	ph := w.phase(t + w.period()*0.25)
	return 2*amplitude*(1-math.Abs(ph/mathutil.Pi2*2-1)) + w.Min
}

// Square is Max for the first half of each period and Min for the second.
func (w Wave) Square(t float64) float64 {
	p := w.period()
	if math.Mod(t, p) < p*0.5 {
		return w.Max
	}
	return w.Min
}

// Func is a named generator, used by the CLI and the charts.
type Func func(Wave, float64) float64

// Generators maps generator names to their methods.
var Generators = map[string]Func{
	"sawtooth": Wave.Sawtooth,
	"triangle": Wave.Triangle,
	"square":   Wave.Square,
}

// Sample evaluates f at n evenly spaced times over [from, to].
func Sample(f func(float64) float64, from, to float64, n int) []float64 {
	if n < 2 {
		return []float64{f(from)}
	}
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = f(from + step*float64(i))
	}
	return out
}
