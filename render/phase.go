package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultPhaseSteps is the number of samples in the phase sweep from 0
// to 2*pi.
const DefaultPhaseSteps = 400

// ErrNoFrequencies indicates that a phase field was requested for an
// empty frequency set.
var ErrNoFrequencies = errors.New("render: no frequencies")

// Field is the sampled phase-cube surface. Rows follow the phase sweep,
// columns follow the tone index, and V[p][i] = cos(2*pi * Freq[i] * Phase[p]).
type Field struct {
	// Index is the normalized tone position in [0, 1]
	Index []float64
	// Freq is the min-max normalized frequency per tone in [0, 1]
	Freq []float64
	// Phase is the sweep over [0, 2*pi], endpoints included
	Phase []float64
	// V holds the vibration surface, one row per phase step
	V [][]float64
}

// PhaseField samples the toy vibration surface relating tone index,
// normalized frequency and phase. Frequencies are min-max normalized
// with the spread floored at 1e-9, so a single tone or a flat spectrum
// yields a flat surface instead of a division blowup.
func PhaseField(freqs []float64, steps int) (*Field, error) {
	if len(freqs) == 0 {
		return nil, ErrNoFrequencies
	}
	if steps < 2 {
		return nil, fmt.Errorf("render: phase sweep needs at least 2 steps, got %d", steps)
	}

	n := len(freqs)

	index := make([]float64, n)
	if n > 1 {
		for i := range index {
			index[i] = float64(i) / float64(n-1)
		}
	}

	fmin := floats.Min(freqs)
	spread := floats.Max(freqs) - fmin
	if spread < 1e-9 {
		spread = 1e-9
	}

	fnorm := make([]float64, n)
	for i, f := range freqs {
		fnorm[i] = (f - fmin) / spread
	}

	phase := make([]float64, steps)
	for p := range phase {
		phase[p] = 2 * math.Pi * float64(p) / float64(steps-1)
	}

	v := make([][]float64, steps)
	for p := range v {
		row := make([]float64, n)
		for i := range row {
			row[i] = math.Cos(2 * math.Pi * fnorm[i] * phase[p])
		}
		v[p] = row
	}

	return &Field{
		Index: index,
		Freq:  fnorm,
		Phase: phase,
		V:     v,
	}, nil
}
