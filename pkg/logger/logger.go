package logger

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is satisfied by *charmlog.Logger.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// Level is the name of a log level as given on the command line.
type Level string

const (
	DebugLevel    Level = "debug"
	InfoLevel     Level = "info"
	WarnLevel     Level = "warn"
	ErrorLevel    Level = "error"
	DisabledLevel Level = "disabled"
)

var charmLevels = map[Level]charmlog.Level{
	DebugLevel:    charmlog.DebugLevel,
	InfoLevel:     charmlog.InfoLevel,
	WarnLevel:     charmlog.WarnLevel,
	ErrorLevel:    charmlog.ErrorLevel,
	DisabledLevel: charmlog.Level(1000),
}

// charm maps l onto charmlog, unknown names meaning info.
func (l Level) charm() charmlog.Level {
	if level, ok := charmLevels[l]; ok {
		return level
	}
	return charmlog.InfoLevel
}

type Config struct {
	Level     Level
	Output    io.Writer // stderr if nil
	JSON      bool
	AddSource bool
}

func NewLogger(cfg Config) Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	formatter := charmlog.TextFormatter
	if cfg.JSON {
		formatter = charmlog.JSONFormatter
	}
	return charmlog.NewWithOptions(output, charmlog.Options{
		Level:           cfg.Level.charm(),
		Formatter:       formatter,
		ReportCaller:    cfg.AddSource,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewLogger(Config{Level: DisabledLevel, Output: io.Discard})
}

type ctxKey struct{}

var defaultLogger = NewLogger(Config{Level: InfoLevel})

func ContextWithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return defaultLogger
}

// SetDefault replaces the logger FromContext falls back to.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger = l
	}
}
