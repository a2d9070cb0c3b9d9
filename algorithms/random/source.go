package random

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces the random draws used across the library. A seeded
// source replays the exact same sequence on every run and platform,
// which is what makes tensors, rotations and synth phases reproducible.
type Source struct {
	rng *rand.Rand
}

// NewSeeded creates a source whose draw sequence is fully determined by seed
func NewSeeded(seed uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// New creates a time-seeded source for callers that do not need reproducibility
func New() *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Normal draws from the standard normal distribution
func (s *Source) Normal() float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: s.rng}
	return dist.Rand()
}

// Uniform draws from the half-open interval [lo, hi)
func (s *Source) Uniform(lo, hi float64) float64 {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: s.rng}
	return dist.Rand()
}
