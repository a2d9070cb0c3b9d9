package common

import (
	"math"
)

// SilenceFloor is the smallest peak the joint normalizer will divide by.
// Silent material scales by 1/SilenceFloor of nothing and stays silent
// instead of producing NaN or Inf.
const SilenceFloor = 1e-9

// Peak returns the maximum absolute value of the signal
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, val := range signal {
		abs := math.Abs(val)
		if abs > peak {
			peak = abs
		}
	}
	return peak
}

// PeakNormalizeJoint scales both channels by their shared peak absolute
// value so the louder channel spans [-1, 1] and the balance between the
// channels is preserved. The divisor never drops below SilenceFloor.
func PeakNormalizeJoint(left, right []float64) ([]float64, []float64) {
	peak := math.Max(Peak(left), Peak(right))
	if peak < SilenceFloor {
		peak = SilenceFloor
	}

	normalizedLeft := make([]float64, len(left))
	for i, val := range left {
		normalizedLeft[i] = val / peak
	}

	normalizedRight := make([]float64, len(right))
	for i, val := range right {
		normalizedRight[i] = val / peak
	}

	return normalizedLeft, normalizedRight
}
