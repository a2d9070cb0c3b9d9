package render_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/eigentone/render"
)

// TestPhaseField_Dimensions verifies the sampled grid shape and the
// sweep endpoints.
func TestPhaseField_Dimensions(t *testing.T) {
	field, err := render.PhaseField([]float64{220, 550, 880}, render.DefaultPhaseSteps)
	require.NoError(t, err)

	assert.Len(t, field.Index, 3)
	assert.Len(t, field.Freq, 3)
	assert.Len(t, field.Phase, 400)
	require.Len(t, field.V, 400)
	for _, row := range field.V {
		assert.Len(t, row, 3)
	}

	assert.Zero(t, field.Phase[0], "sweep starts at zero")
	assert.InDelta(t, 2*math.Pi, field.Phase[399], 1e-12, "sweep ends on 2*pi inclusive")

	assert.Equal(t, []float64{0, 0.5, 1}, field.Index)
}

// TestPhaseField_NormalizedFrequencies verifies min-max normalization of
// the tone frequencies.
func TestPhaseField_NormalizedFrequencies(t *testing.T) {
	field, err := render.PhaseField([]float64{220, 550, 880}, 16)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, field.Freq[0], 1e-12)
	assert.InDelta(t, 0.5, field.Freq[1], 1e-12)
	assert.InDelta(t, 1.0, field.Freq[2], 1e-12)
}

// TestPhaseField_SurfaceFormula verifies V against a direct evaluation
// of cos(2*pi * freq * phase) at every grid point.
func TestPhaseField_SurfaceFormula(t *testing.T) {
	field, err := render.PhaseField([]float64{220, 330, 880}, 32)
	require.NoError(t, err)

	for p, phase := range field.Phase {
		for i, fn := range field.Freq {
			want := math.Cos(2 * math.Pi * fn * phase)
			assert.InDelta(t, want, field.V[p][i], 1e-12, "V[%d][%d]", p, i)
		}
	}
}

// TestPhaseField_SingleTone verifies the degenerate single-frequency
// grid: one column, zero normalized frequency, flat unit surface.
func TestPhaseField_SingleTone(t *testing.T) {
	field, err := render.PhaseField([]float64{440}, 8)
	require.NoError(t, err)

	assert.Equal(t, []float64{0}, field.Index)
	assert.Equal(t, []float64{0}, field.Freq)

	for p := range field.V {
		assert.InDelta(t, 1.0, field.V[p][0], 1e-12, "cos(0) everywhere")
	}
}

// TestPhaseField_FlatSpectrum verifies the spread floor: identical
// frequencies normalize to zero instead of dividing by zero.
func TestPhaseField_FlatSpectrum(t *testing.T) {
	field, err := render.PhaseField([]float64{440, 440, 440}, 8)
	require.NoError(t, err)

	for i, fn := range field.Freq {
		assert.Zero(t, fn, "freq %d", i)
		assert.False(t, math.IsNaN(fn) || math.IsInf(fn, 0))
	}
}

// TestPhaseField_Errors verifies input validation.
func TestPhaseField_Errors(t *testing.T) {
	_, err := render.PhaseField(nil, 400)
	assert.ErrorIs(t, err, render.ErrNoFrequencies)

	_, err = render.PhaseField([]float64{440}, 1)
	assert.Error(t, err, "a sweep needs at least two steps")
}

// TestSavePhaseCube_WritesPNG smoke tests the heatmap sink end to end.
func TestSavePhaseCube_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phase_cube.png")

	err := render.SavePhaseCube(path, []float64{220, 550, 880})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "png must not be empty")
}

// TestSavePhaseCube_NoFrequencies verifies the error path before any
// file is touched.
func TestSavePhaseCube_NoFrequencies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phase_cube.png")

	err := render.SavePhaseCube(path, nil)
	assert.ErrorIs(t, err, render.ErrNoFrequencies)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file on error")
}
