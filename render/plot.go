package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RyanBlaney/eigentone/logging"
)

// fieldGrid adapts a Field to plotter's grid interface. Columns walk the
// tone index, rows walk the phase sweep.
type fieldGrid struct {
	field *Field
}

func (g fieldGrid) Dims() (c, r int) {
	return len(g.field.Index), len(g.field.Phase)
}

func (g fieldGrid) Z(c, r int) float64 {
	return g.field.V[r][c]
}

func (g fieldGrid) X(c int) float64 {
	return g.field.Index[c]
}

func (g fieldGrid) Y(r int) float64 {
	return g.field.Phase[r]
}

// SavePhaseCube renders the phase field of freqs as a heatmap and saves
// it to path. The image format follows the file extension, normally png.
func SavePhaseCube(path string, freqs []float64) error {
	field, err := PhaseField(freqs, DefaultPhaseSteps)
	if err != nil {
		return err
	}

	logger := logging.WithFields(logging.Fields{
		"component": "render",
		"function":  "SavePhaseCube",
	})

	p := plot.New()
	p.Title.Text = "Phase Cube (toy)"
	p.X.Label.Text = "Index (space)"
	p.Y.Label.Text = "Phase (time)"

	heatmap := plotter.NewHeatMap(fieldGrid{field: field}, palette.Heat(64, 1))
	p.Add(heatmap)

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save phase cube: %w", err)
	}

	logger.Debug("wrote phase cube", logging.Fields{
		"path":  path,
		"tones": len(freqs),
		"steps": DefaultPhaseSteps,
	})

	return nil
}
