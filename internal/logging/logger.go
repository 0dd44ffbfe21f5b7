package logging

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"pingdash/internal/paths"
)

// FileName is the name of the diagnostic log inside the log directory.
const FileName = "pingdash.log"

// Options controls where diagnostics go.
type Options struct {
	Dir   string
	Level string
	// Console, when set, receives a human readable copy of every entry.
	Console io.Writer
}

// ParseLevel maps a config level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zap.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// NewLogger builds the diagnostic logger: JSON lines into a rotating file,
// optionally teed to a console writer.
func NewLogger(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDir(opts.Dir); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, FileName),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, level)

	if opts.Console != nil {
		ccfg := zap.NewDevelopmentEncoderConfig()
		ccfg.EncodeLevel = zapcore.CapitalLevelEncoder
		console := zapcore.NewCore(zapcore.NewConsoleEncoder(ccfg), zapcore.AddSync(opts.Console), level)
		core = zapcore.NewTee(core, console)
	}
	return zap.New(core), nil
}
