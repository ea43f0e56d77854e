// Package debug provides optional file-based diagnostics logging.
//
// When the GOOEY_DEBUG environment variable is set to a file path, engine
// diagnostics (id collisions, capacity warnings) are appended there as
// structured log lines. Otherwise logging is a no-op.
package debug

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// Logger returns the shared diagnostics logger. It is a nop logger unless
// GOOEY_DEBUG names a writable file.
func Logger() *zap.Logger {
	once.Do(func() {
		logger = zap.NewNop()
		path := os.Getenv("GOOEY_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		enc := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.Lock(f),
			zapcore.DebugLevel,
		)
		logger = zap.New(core)
	})
	return logger
}
