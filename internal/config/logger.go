package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns the console logger used by the program: info and debug go
// to stdout, errors to stderr. Level "none" discards everything.
func NewLogger(level string) *zap.Logger {
	return newLogger(level, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
}

func newLogger(level string, stdout, stderr zapcore.WriteSyncer) *zap.Logger {
	floor := zapcore.InfoLevel
	switch level {
	case "debug":
		floor = zapcore.DebugLevel
	case "none":
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	enc := zapcore.NewConsoleEncoder(ec)

	low := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return floor <= lvl && lvl < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	return zap.New(zapcore.NewTee(
		zapcore.NewCore(enc, stdout, low),
		zapcore.NewCore(enc, stderr, high),
	))
}
