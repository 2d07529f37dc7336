package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

// Logger is the leveled, printf-style logger used across the pipeline.
// The context is accepted on every call so implementations can pick up
// request-scoped values without changing call sites.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[string]level{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

type implLogger struct {
	logger *log.Logger
	min    level
}

// New creates a Logger writing to stdout. Unknown level names default to info.
func New(levelName string) Logger {
	min, ok := levelNames[strings.ToLower(levelName)]
	if !ok {
		min = levelInfo
	}
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		min:    min,
	}
}

func (l *implLogger) logf(lv level, tag, msg string, args []interface{}) {
	if lv < l.min {
		return
	}
	l.logger.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelDebug, "[DEBUG]", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelInfo, "[INFO]", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelWarn, "[WARN]", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelError, "[ERROR]", msg, args)
}
