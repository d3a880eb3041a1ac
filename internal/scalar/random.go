package scalar

import "math/rand/v2"

// Lehmer (Park–Miller) generator constants.
const (
	lcgMul = 48271
	lcgMod = 2147483647 // 2^31 - 1
)

// Rnd returns a uniform value in [lo, hi).
func Rnd(lo, hi float64) float64 {
	return rand.Float64()*(hi-lo) + lo
}

// LCG is a small deterministic Lehmer random generator. It is not safe for
// concurrent use.
type LCG struct {
	state uint64
}

// NewLCG seeds a generator. A zero seed (or a multiple of 2^31-1) picks a
// random one.
func NewLCG(seed uint32) *LCG {
	s := uint64(seed) % lcgMod
	if s == 0 {
		s = rand.Uint64N(lcgMod-1) + 1
	}
	g := &LCG{state: s}
	g.next()
	return g
}

func (g *LCG) next() uint64 {
	g.state = g.state * lcgMul % lcgMod
	return g.state
}

// Float64 returns the next value in [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.next()) / (1 << 31)
}
