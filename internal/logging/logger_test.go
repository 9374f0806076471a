package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewHonorsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("debug", &buf)
	logger.Debug("stage", zap.String("word", "Dr"))
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "stage")
	assert.Contains(t, buf.String(), `"word": "Dr"`)
}

func TestNewDefaultsToWarn(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"", "nonsense"} {
		var buf bytes.Buffer
		logger := New(level, &buf)
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden", "level %q", level)
		assert.Contains(t, buf.String(), "shown", "level %q", level)
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "warn", Level(false, ""))
	assert.Equal(t, "debug", Level(true, ""))
	assert.Equal(t, "error", Level(true, "error"))
}
