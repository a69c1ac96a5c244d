// Package logging builds the zap logger used by the primes CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConsoleLevel is the stderr threshold: debug under --verbose, warn
// otherwise so normal runs keep stderr quiet.
func ConsoleLevel(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// FileLevel is the log file threshold. The file also keeps info entries
// that the console drops.
func FileLevel(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// New returns a console logger writing to stderr at ConsoleLevel(verbose).
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(ConsoleLevel(verbose))
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OpenSink opens path for appending through zap's sink registry. An empty
// path yields a nil sink and a no-op close.
func OpenSink(path string) (zapcore.WriteSyncer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return sink, closeSink, nil
}

// WithFileSink tees base into a JSON core on sink at FileLevel(verbose).
// Entries written there carry the "primes" logger name. A nil sink returns
// base unchanged.
func WithFileSink(base *zap.Logger, sink zapcore.WriteSyncer, verbose bool) *zap.Logger {
	if sink == nil {
		return base
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, FileLevel(verbose))
	return base.Named("primes").WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}
