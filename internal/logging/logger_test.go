package logging_test

import (
	"bytes"
	"testing"

	"github.com/fivetwenty-io/canny-cli/internal/logging"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_Quiet(t *testing.T) {
	t.Parallel()

	logger, err := logging.NewZapLogger(false)
	require.NoError(t, err)

	var _ canny.Logger = logger

	logger.Debug("ignored", map[string]interface{}{"k": "v"})
	assert.False(t, logger.Zap().Core().Enabled(-1))
}

func TestNewZapLogger_Verbose(t *testing.T) {
	t.Parallel()

	logger, err := logging.NewZapLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Zap().Core().Enabled(-1))
}

func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewWriterLogger(&buf)
	logger.Debug("HTTP Request", map[string]interface{}{"method": "POST", "url": "https://canny.io/api/v1/boards/list"})
	logger.Warn("Cache clear failed", nil)

	out := buf.String()
	assert.Contains(t, out, "HTTP Request")
	assert.Contains(t, out, `"method": "POST"`)
	assert.Contains(t, out, "Cache clear failed")
}
