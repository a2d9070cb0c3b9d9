package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/eigentone/logging"
)

// TestLevel_String verifies the level names that prefix every log line.
func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", logging.DebugLevel.String())
	assert.Equal(t, "INFO", logging.InfoLevel.String())
	assert.Equal(t, "WARN", logging.WarnLevel.String())
	assert.Equal(t, "ERROR", logging.ErrorLevel.String())
	assert.Equal(t, "FATAL", logging.FatalLevel.String())
	assert.Equal(t, "UNKNOWN", logging.Level(42).String())
}

// TestSetGlobalLogger_NilFallsBackToNoOp verifies that clearing the
// global logger installs a no-op instead of leaving a nil interface
// behind the package-level helpers.
func TestSetGlobalLogger_NilFallsBackToNoOp(t *testing.T) {
	prev := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })

	logging.SetGlobalLogger(nil)
	assert.IsType(t, &logging.NoOpLogger{}, logging.GetGlobalLogger())

	// The helpers must stay callable
	logging.Debug("dropped")
	logging.Info("dropped")
	logging.Warn("dropped")
	logging.Error(nil, "dropped")
}

// TestNoOpLogger_WithFields verifies that a silenced logger keeps
// handing out usable loggers.
func TestNoOpLogger_WithFields(t *testing.T) {
	prev := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })
	logging.SetGlobalLogger(&logging.NoOpLogger{})

	child := logging.WithFields(logging.Fields{"component": "test"})
	assert.NotNil(t, child)
	child.Debug("dropped", logging.Fields{"extra": 1})
}

// TestDefaultLogger_WithFields verifies that deriving a logger yields a
// new instance rather than mutating the parent.
func TestDefaultLogger_WithFields(t *testing.T) {
	parent := logging.NewDefaultLoggerNoColor()
	child := parent.WithFields(logging.Fields{"component": "demo"})

	assert.IsType(t, &logging.DefaultLogger{}, child)
	assert.NotSame(t, parent, child)
}
