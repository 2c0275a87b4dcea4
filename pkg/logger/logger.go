package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type writerLogger struct {
	l *logrus.Logger
}

// NewWriterLogger builds a logrus-backed logger that writes text lines to w.
func NewWriterLogger(w io.Writer) Logger {
	if w == nil {
		return NopLogger{}
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableColors:   true,
	})
	return writerLogger{l: l}
}

// entry turns obj into structured fields. Maps become fields directly,
// anything else is JSON-encoded under "obj".
func (w writerLogger) entry(obj any) *logrus.Entry {
	switch v := obj.(type) {
	case nil:
		return logrus.NewEntry(w.l)
	case map[string]any:
		return w.l.WithFields(logrus.Fields(v))
	case error:
		return w.l.WithError(v)
	}

	b, err := json.Marshal(obj)
	if err != nil {
		return w.l.WithField("obj", fmt.Sprintf("%+v", obj))
	}
	return w.l.WithField("obj", string(b))
}

func (w writerLogger) Info(msg string, obj any)  { w.entry(obj).Info(msg) }
func (w writerLogger) Warn(msg string, obj any)  { w.entry(obj).Warn(msg) }
func (w writerLogger) Debug(msg string, obj any) { w.entry(obj).Debug(msg) }
func (w writerLogger) Error(msg string, obj any) { w.entry(obj).Error(msg) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
