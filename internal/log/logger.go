package log

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	current atomic.Pointer[Logger]
)

func init() {
	current.Store(NewLogger())
}

// std returns the package-level logger.
func std() *Logger {
	return current.Load()
}

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger writes leveled, optionally structured, log lines.
type Logger struct {
	entry *logrus.Entry
}

// Option configures a Logger at construction time.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithFormatter replaces the default text formatter.
func WithFormatter(f logrus.Formatter) Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(f)
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return WithFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// SetDebug toggles debug output for every logger in the process.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return isDebug.Load()
}

// Configure replaces the package-level logger. Goroutines already logging
// pick up the new logger on their next call.
func Configure(opts ...Option) {
	current.Store(NewLogger(opts...))
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs only when debug output is enabled.
func (l *Logger) Debug(msg string) {
	if IsDebug() {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only when debug output is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if IsDebug() {
		l.entry.Debugf(format, args...)
	}
}

// ErrorWithStack logs err together with a message. The error chain is
// flattened into the "error" field.
func (l *Logger) ErrorWithStack(err error, msg string) {
	if err == nil {
		l.entry.Error(msg)
		return
	}
	l.entry.WithField("error", err.Error()).Error(msg)
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return std().With(fields...)
}

func Info(format string, args ...interface{}) {
	std().Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	std().Debugf(msg, args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	std().Debugf(format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	std().Errorf(msg, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	std().Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	std().Warnf(msg, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	std().Warnf(format, args...)
}
