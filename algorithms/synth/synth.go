package synth

import (
	"errors"
	"fmt"
	"math"

	"github.com/RyanBlaney/eigentone/algorithms/common"
	"github.com/RyanBlaney/eigentone/algorithms/random"
	"github.com/RyanBlaney/eigentone/algorithms/spectral"
)

// Default render parameters
const (
	DefaultSampleRate = 48000
	DefaultDuration   = 2.0
)

// Buffer holds rendered stereo audio in [-1, 1], left in column 0 and
// right in column 1.
type Buffer struct {
	Rate    int
	Samples [][2]float64
}

// Len returns the number of sample frames
func (b *Buffer) Len() int {
	return len(b.Samples)
}

// Synth renders a bank of cosine tones into a phase-locked stereo pair.
// The left channel is the plain sum of the tones, the right channel is
// its quadrature partner, so the two stay at a constant 90 degree offset
// across the whole spectrum.
type Synth struct {
	SampleRate int
	Duration   float64

	lock *spectral.PhaseLock
}

// New creates a synthesizer for the given sample rate in Hz and duration
// in seconds
func New(sampleRate int, duration float64) *Synth {
	return &Synth{
		SampleRate: sampleRate,
		Duration:   duration,
		lock:       spectral.NewPhaseLock(),
	}
}

// Render synthesizes one cosine per frequency, each with a uniform random
// starting phase in [0, 2*pi), sums them into the left channel, derives
// the right channel as the quadrature partner, and jointly peak-normalizes
// the pair. The sample count is floor(SampleRate * Duration) over the
// half-open interval [0, Duration).
func (s *Synth) Render(freqs []float64, src *random.Source) (*Buffer, error) {
	if len(freqs) == 0 {
		return nil, errors.New("synth: no frequencies to render")
	}
	if s.SampleRate <= 0 {
		return nil, fmt.Errorf("synth: sample rate must be positive, got %d", s.SampleRate)
	}
	if s.Duration <= 0 {
		return nil, fmt.Errorf("synth: duration must be positive, got %g", s.Duration)
	}

	n := int(float64(s.SampleRate) * s.Duration)

	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * s.Duration / float64(n)
	}

	left := make([]float64, n)
	for _, f := range freqs {
		phase := src.Uniform(0, 2*math.Pi)
		omega := 2 * math.Pi * f
		for i, t := range ts {
			left[i] += math.Cos(omega*t + phase)
		}
	}

	_, right := s.lock.Pair(left)

	left, right = common.PeakNormalizeJoint(left, right)

	samples := make([][2]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{left[i], right[i]}
	}

	return &Buffer{
		Rate:    s.SampleRate,
		Samples: samples,
	}, nil
}
