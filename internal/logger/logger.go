package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

// Init initializes the zap logger depending on the environment.
// Output goes to stderr so the storefront's own output on stdout stays clean.
func Init(env string) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if env == "test" {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	global.Store(log)
}

// L returns the global logger.
func L() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	Init(os.Getenv("APP_ENV"))
	return global.Load()
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := global.Swap(l)
	return func() { global.Store(prev) }
}

// Sync flushes logs.
func Sync() {
	if l := global.Load(); l != nil {
		_ = l.Sync()
	}
}
