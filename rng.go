package qnoise

import (
	"math/rand/v2"
)

/*
RNG draws weighted integers. Weights are non-negative and need not be
normalized; the returned index is in [0, len(weights)).
*/
type RNG interface {
	RandInt(weights []float64) int
}

/*
Engine is the seeded random source handed to each shot. It is not safe
for concurrent use; give every goroutine its own Engine.
*/
type Engine struct {
	src *rand.PCG
	rnd *rand.Rand
}

// NewEngine returns an engine seeded deterministically from seed.
func NewEngine(seed uint64) *Engine {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Engine{
		src: src,
		rnd: rand.New(src),
	}
}

// Seed resets the engine to the start of the stream for seed.
func (e *Engine) Seed(seed uint64) {
	e.src.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// Float64 returns a uniform value in [0, 1).
func (e *Engine) Float64() float64 {
	return e.rnd.Float64()
}

/*
RandInt selects an index by inverse CDF: one uniform draw scaled by the
weight total, then a linear scan of the running sum. Zero weights are
never selected. If every weight is zero, index 0 is returned.
*/
func (e *Engine) RandInt(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}

	r := e.rnd.Float64() * total
	last := 0

	var cumulative float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = i
		if r < cumulative {
			return i
		}
	}

	// Rounding in the running sum can leave r just past the end.
	return last
}
