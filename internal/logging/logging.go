// Package logging builds the zap logger shared by the CLI and the engine.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// File receives JSON logs with rotation. Empty disables file logging.
	File string
	// Verbose adds a debug-level console core on Console.
	Verbose bool
	Console io.Writer
}

// New returns a logger tagged with a fresh run_id and a func that flushes
// and closes the log file. With no file and no console it is a no-op logger.
func New(opts Options) (*zap.Logger, func()) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		level := zap.InfoLevel
		if opts.Verbose {
			level = zap.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotator), level))
	}
	if opts.Verbose && opts.Console != nil {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(opts.Console), zap.DebugLevel))
	}
	if len(cores) == 0 {
		return zap.NewNop(), func() {}
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("run_id", uuid.NewString()))
	closer := func() {
		_ = logger.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return logger, closer
}
