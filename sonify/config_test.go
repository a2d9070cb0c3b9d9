package sonify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/eigentone/logging"
	"github.com/RyanBlaney/eigentone/sonify"
)

// TestDefaultConfig pins the canonical demo parameters.
func TestDefaultConfig(t *testing.T) {
	cfg := sonify.DefaultConfig()

	assert.Equal(t, uint64(1337), cfg.Seed)
	assert.Equal(t, 3, cfg.Dim)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 2.0, cfg.Duration)
	assert.Equal(t, 220.0, cfg.FMin)
	assert.Equal(t, 880.0, cfg.FMax)
	assert.Equal(t, "figures", cfg.OutDir)
}

// TestConfigFromEnv_Overrides verifies that every recognized variable
// lands in the config.
func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv(sonify.EnvSeed, "42")
	t.Setenv(sonify.EnvDim, "5")
	t.Setenv(sonify.EnvSampleRate, "22050")
	t.Setenv(sonify.EnvDuration, "0.5")
	t.Setenv(sonify.EnvFMin, "110")
	t.Setenv(sonify.EnvFMax, "440")
	t.Setenv(sonify.EnvOutDir, "out")

	cfg := sonify.ConfigFromEnv()

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 5, cfg.Dim)
	assert.Equal(t, 22050, cfg.SampleRate)
	assert.Equal(t, 0.5, cfg.Duration)
	assert.Equal(t, 110.0, cfg.FMin)
	assert.Equal(t, 440.0, cfg.FMax)
	assert.Equal(t, "out", cfg.OutDir)
}

// TestConfigFromEnv_InvalidValues verifies that malformed overrides are
// ignored in favor of the defaults instead of failing the run.
func TestConfigFromEnv_InvalidValues(t *testing.T) {
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })

	t.Setenv(sonify.EnvSeed, "-3")
	t.Setenv(sonify.EnvDim, "banana")
	t.Setenv(sonify.EnvDuration, "fast")

	cfg := sonify.ConfigFromEnv()
	def := sonify.DefaultConfig()

	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.Dim, cfg.Dim)
	assert.Equal(t, def.Duration, cfg.Duration)
}

// TestConfigFromEnv_EmptyValueIsUnset verifies that an empty variable
// counts as absent rather than malformed.
func TestConfigFromEnv_EmptyValueIsUnset(t *testing.T) {
	t.Setenv(sonify.EnvSeed, "")
	t.Setenv(sonify.EnvOutDir, "")

	cfg := sonify.ConfigFromEnv()
	def := sonify.DefaultConfig()

	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.OutDir, cfg.OutDir)
}
