package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/RyanBlaney/eigentone/algorithms/synth"
	"github.com/RyanBlaney/eigentone/logging"
)

// bufferStreamer adapts a rendered buffer to the beep.Streamer interface
// so the wav encoder can drain it.
type bufferStreamer struct {
	samples [][2]float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}

	n = copy(samples, b.samples[b.pos:])
	b.pos += n
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}

// WriteWAV persists the stereo buffer to path as a 16-bit PCM WAV file
func WriteWAV(path string, buf *synth.Buffer) error {
	if buf == nil || buf.Len() == 0 {
		return errors.New("render: nothing to write, buffer is empty")
	}

	logger := logging.WithFields(logging.Fields{
		"component": "render",
		"function":  "WriteWAV",
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(buf.Rate),
		NumChannels: 2,
		Precision:   2,
	}

	if err := wav.Encode(f, &bufferStreamer{samples: buf.Samples}, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode wav: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close wav file: %w", err)
	}

	logger.Debug("wrote wav file", logging.Fields{
		"path":        path,
		"sample_rate": buf.Rate,
		"frames":      buf.Len(),
	})

	return nil
}
