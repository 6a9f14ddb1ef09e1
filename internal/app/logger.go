package app

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/heartmarshall/dictionary-api/internal/config"
)

// NewLogger creates a *zap.Logger based on the provided LogConfig
// and installs it as the global logger via zap.ReplaceGlobals.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable console output with caller info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output is always os.Stderr.
func NewLogger(cfg config.LogConfig) *zap.Logger {
	logger := newLogger(cfg, zapcore.Lock(os.Stderr))
	zap.ReplaceGlobals(logger)
	return logger
}

func newLogger(cfg config.LogConfig, out zapcore.WriteSyncer) *zap.Logger {
	var (
		enc  zapcore.Encoder
		opts = []zap.Option{zap.ErrorOutput(out)}
	)

	if strings.EqualFold(cfg.Format, "text") {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.AddCaller())
	} else {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	}

	return zap.New(zapcore.NewCore(enc, out, parseLevel(cfg.Level)), opts...)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
