package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a Logger writing to stdout at the given level.
// Unknown level strings fall back to info.
func New(levelName string) Logger {
	return NewWithWriter(os.Stdout, levelName)
}

// NewWithWriter creates a Logger writing to w, used by tests to capture
// output.
func NewWithWriter(w io.Writer, levelName string) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		min:    parseLevel(levelName),
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelDebug, "[DEBUG] "+msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelInfo, "[INFO] "+msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelWarn, "[WARN] "+msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.printf(levelError, "[ERROR] "+msg, args...)
}

func (l *implLogger) printf(lv level, msg string, args ...interface{}) {
	if lv < l.min {
		return
	}
	l.logger.Printf(msg, args...)
}
