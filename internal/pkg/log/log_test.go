package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")
	assert.NoError(t, logger.Sync())

	// Stdout contains info only, debug is hidden without verbose
	assert.Equal(t, "info msg\n", stdout.String())

	// Stderr contains warn and error
	assert.Equal(t, "warn msg\nerror msg\n", stderr.String())
}

func TestNewLoggerVerbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, true)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	assert.NoError(t, logger.Sync())

	// Stdout contains debug and info, prefixed with the level
	assert.Equal(t, "DEBUG\tdebug msg\nINFO\tinfo msg\n", stdout.String())

	// Stderr contains warn, prefixed with the level
	assert.Equal(t, "WARN\twarn msg\n", stderr.String())
}

func TestDebugLogger(t *testing.T) {
	t.Parallel()
	logger := NewDebugLogger()
	logger.Debugf("first %s", "message")
	logger.Info("second message")

	out := logger.AllMessages()
	assert.True(t, strings.Contains(out, "DEBUG  first message"))
	assert.True(t, strings.Contains(out, "INFO  second message"))

	logger.Truncate()
	assert.Equal(t, "", logger.AllMessages())
}
