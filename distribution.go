package qnoise

import "math"

/*
Distribution is a weighted index generator over {identity, 1..N}. Index 0
is the no-error outcome with weight 1 - sum(probs). A Distribution is
never modified after construction, so it can be shared by any number of
sampling goroutines.
*/
type Distribution struct {
	weights []float64
}

/*
NewDistribution validates probs and builds the distribution. Every entry
must be finite and within [0, 1], and the implied identity probability
must itself land in [0, 1]. No tolerance is applied to the sum.
*/
func NewDistribution(probs []float64) (*Distribution, error) {
	weights := make([]float64, len(probs)+1)
	weights[0] = 1

	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, configErrorf("probability %d is %v, want a value in [0, 1]", i, p)
		}
		weights[0] -= p
		weights[i+1] = p
	}

	if weights[0] < 0 || weights[0] > 1 {
		return nil, configErrorf("probabilities sum past 1 (identity probability %v)", weights[0])
	}

	return &Distribution{weights: weights}, nil
}

// Outcomes is the number of non-identity outcomes.
func (d *Distribution) Outcomes() int {
	return len(d.weights) - 1
}

// Identity is the implied no-error probability.
func (d *Distribution) Identity() float64 {
	return d.weights[0]
}

// Probability returns the weight of outcome i, with 0 being identity.
func (d *Distribution) Probability(i int) float64 {
	return d.weights[i]
}

// Probabilities returns a copy of the non-identity entries.
func (d *Distribution) Probabilities() []float64 {
	out := make([]float64, len(d.weights)-1)
	copy(out, d.weights[1:])
	return out
}

// Sample draws an outcome index from rng.
func (d *Distribution) Sample(rng RNG) int {
	return rng.RandInt(d.weights)
}
