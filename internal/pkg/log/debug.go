package log

import (
	"bufio"
	"bytes"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogger collects all messages to a buffer, used in tests.
type DebugLogger struct {
	*zap.SugaredLogger
	writer *bufio.Writer
	buffer *bytes.Buffer
}

func NewDebugLogger() *DebugLogger {
	var buffer bytes.Buffer
	writer := bufio.NewWriter(&buffer)

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zapcore.DebugLevel)

	return &DebugLogger{
		SugaredLogger: zap.New(core).Sugar(),
		writer:        writer,
		buffer:        &buffer,
	}
}

// AllMessages returns all logged messages as one string.
func (l *DebugLogger) AllMessages() string {
	if err := l.writer.Flush(); err != nil {
		panic(err)
	}
	return l.buffer.String()
}

// Truncate clears all recorded messages.
func (l *DebugLogger) Truncate() {
	if err := l.writer.Flush(); err != nil {
		panic(err)
	}
	l.buffer.Reset()
}
