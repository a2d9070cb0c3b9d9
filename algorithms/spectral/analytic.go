package spectral

import (
	"github.com/RyanBlaney/eigentone/algorithms/common"
)

// quadratureEpsilon keeps the energy-matching divisor away from zero so a
// silent signal produces a silent partner instead of NaN.
const quadratureEpsilon = 1e-12

// PhaseLock derives a quadrature partner for a real signal through its
// analytic signal. The partner carries the same spectral content shifted
// by 90 degrees, which is what makes a stereo pair sound phase-locked.
type PhaseLock struct {
	fft *FFT
}

// NewPhaseLock creates a new phase-lock engine
func NewPhaseLock() *PhaseLock {
	return &PhaseLock{
		fft: NewFFT(),
	}
}

// AnalyticSignal computes the analytic signal of x by suppressing the
// negative-frequency half of the spectrum. Bin 0 keeps weight 1, strictly
// positive bins are doubled, and for even lengths the Nyquist bin keeps
// weight 1. The real part of the result reproduces x up to numeric error;
// the imaginary part is the quadrature component.
func (p *PhaseLock) AnalyticSignal(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	spectrum := p.fft.Compute(x)
	n := len(spectrum)
	half := n / 2

	if n%2 == 0 {
		// Positive bins double, bin 0 and the Nyquist bin stay as they are
		for k := 1; k < half; k++ {
			spectrum[k] *= 2
		}
	} else {
		for k := 1; k <= half; k++ {
			spectrum[k] *= 2
		}
	}
	for k := half + 1; k < n; k++ {
		spectrum[k] = 0
	}

	return p.fft.ComputeInverse(spectrum)
}

// Pair splits the analytic signal of x into an in-phase channel and its
// quadrature partner, with the partner rescaled so both channels carry
// the same RMS energy. Silent input stays silent on both sides.
func (p *PhaseLock) Pair(x []float64) (inPhase, quadrature []float64) {
	if len(x) == 0 {
		return []float64{}, []float64{}
	}

	analytic := p.AnalyticSignal(x)

	inPhase = make([]float64, len(analytic))
	quadrature = make([]float64, len(analytic))
	for i, val := range analytic {
		inPhase[i] = real(val)
		quadrature[i] = imag(val)
	}

	gain := common.RMS(inPhase) / (common.RMS(quadrature) + quadratureEpsilon)
	for i := range quadrature {
		quadrature[i] *= gain
	}

	return inPhase, quadrature
}
