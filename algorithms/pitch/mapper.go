package pitch

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default audible band for eigenvalue sonification, A3 up to A5.
const (
	DefaultFMin = 220.0
	DefaultFMax = 880.0
)

// Tolerances for deciding that a spectrum is degenerate, meaning all
// eigenvalues coincide and the affine map has no spread to work with.
const (
	degenerateAbsTol = 1e-8
	degenerateRelTol = 1e-5
)

// Mapper rescales eigenvalues linearly into an audible frequency band.
type Mapper struct {
	FMin float64
	FMax float64
}

// NewMapper creates a mapper targeting the [fmin, fmax] band
func NewMapper(fmin, fmax float64) *Mapper {
	return &Mapper{
		FMin: fmin,
		FMax: fmax,
	}
}

// Map converts eigenvalues to frequencies. The smallest eigenvalue lands
// on FMin, the largest on FMax, everything between scales linearly, so
// the ordering of the input is preserved. A degenerate spectrum maps
// every value onto the midpoint of the band rather than dividing by a
// vanishing spread.
func (m *Mapper) Map(eigenvalues []float64) []float64 {
	if len(eigenvalues) == 0 {
		return []float64{}
	}

	vmin := floats.Min(eigenvalues)
	vmax := floats.Max(eigenvalues)

	freqs := make([]float64, len(eigenvalues))

	if scalar.EqualWithinAbsOrRel(vmax, vmin, degenerateAbsTol, degenerateRelTol) {
		mid := (m.FMin + m.FMax) * 0.5
		for i := range freqs {
			freqs[i] = mid
		}
		return freqs
	}

	for i, v := range eigenvalues {
		freqs[i] = m.FMin + (v-vmin)*(m.FMax-m.FMin)/(vmax-vmin)
	}
	return freqs
}
