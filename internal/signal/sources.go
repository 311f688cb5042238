package signal

import (
	"math"
	"math/rand/v2"
)

// Point is one plotted sample.
type Point struct {
	X float64
	Y float64
}

// Sine walks x forward by interval and yields sin(x/period)*scale.
type Sine struct {
	x        float64
	interval float64
	period   float64
	scale    float64
}

func NewSine(interval, period, scale float64) *Sine {
	return &Sine{interval: interval, period: period, scale: scale}
}

func (s *Sine) Next() Point {
	p := Point{X: s.x, Y: math.Sin(s.x/s.period) * s.scale}
	s.x += s.interval
	return p
}

// Random yields uniform integers in [lower, upper).
type Random struct {
	rng   *rand.Rand
	lower uint64
	upper uint64
}

// NewRandom returns a seeded stream so runs can be reproduced.
func NewRandom(lower, upper, seed uint64) *Random {
	return &Random{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // chart noise, not crypto.
		lower: lower,
		upper: upper,
	}
}

func (r *Random) Next() uint64 {
	if r.upper <= r.lower {
		return r.lower
	}
	return r.lower + r.rng.Uint64N(r.upper-r.lower)
}
