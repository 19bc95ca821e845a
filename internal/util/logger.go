package util

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the service logger. Console output is always on; when
// logFile is set the same stream is teed into an append-only file.
// Unrecognized levels fall back to info.
func NewLogger(level, logFile string) (*zap.Logger, error) {
	lvl := parseLevel(level)

	cores := []zapcore.Core{
		zapcore.NewCore(newConsoleEncoder(), zapcore.AddSync(os.Stdout), lvl),
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(newConsoleEncoder(), zapcore.AddSync(file), lvl))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func newConsoleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.ConsoleSeparator = " | "
	return zapcore.NewConsoleEncoder(cfg)
}

func parseLevel(level string) zapcore.Level {
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		return parsed
	}
	return zapcore.InfoLevel
}
