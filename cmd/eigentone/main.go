package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/eigentone/logging"
	"github.com/RyanBlaney/eigentone/render"
	"github.com/RyanBlaney/eigentone/sonify"
)

const (
	wavName = "tensor_demo.wav"
	pngName = "phase_cube.png"
)

func main() {
	cfg := sonify.ConfigFromEnv()

	logging.Debug("starting demo", logging.Fields{
		"seed":        cfg.Seed,
		"dim":         cfg.Dim,
		"sample_rate": cfg.SampleRate,
		"duration":    cfg.Duration,
	})

	result, err := sonify.Run(cfg)
	if err != nil {
		logging.Fatal(err, "demo pipeline failed")
	}

	fmt.Print(result.Report())

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		logging.Fatal(err, "failed to create output directory", logging.Fields{
			"dir": cfg.OutDir,
		})
	}

	wavPath := filepath.Join(cfg.OutDir, wavName)
	if err := render.WriteWAV(wavPath, result.Audio); err != nil {
		logging.Fatal(err, "failed to write wav")
	}
	fmt.Printf("Wrote WAV: %s\n", wavPath)

	pngPath := filepath.Join(cfg.OutDir, pngName)
	if err := render.SavePhaseCube(pngPath, result.Freqs); err != nil {
		logging.Fatal(err, "failed to write phase cube")
	}
	fmt.Printf("Wrote figure: %s\n", pngPath)
}
