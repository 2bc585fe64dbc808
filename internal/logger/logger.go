package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.Mutex
	log = zap.NewNop()
)

// Initialize sets up the process-wide logger. Level is "debug" or "info";
// env "production" selects JSON output, anything else gets console output.
func Initialize(level, env string) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	logLevel := zapcore.InfoLevel
	if level == "debug" {
		logLevel = zapcore.DebugLevel
	}

	var core zapcore.Core
	if env == "production" {
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			logLevel,
		)
	} else {
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			logLevel,
		)
	}

	mu.Lock()
	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	mu.Unlock()
}

// InitializeFromEnv configures the logger from QUIZFORGE_LOG_LEVEL and
// QUIZFORGE_ENV.
func InitializeFromEnv() {
	Initialize(os.Getenv("QUIZFORGE_LOG_LEVEL"), os.Getenv("QUIZFORGE_ENV"))
}

// Get returns the process-wide logger. Before Initialize it is a no-op
// logger, so library code can log unconditionally.
func Get() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Get().Sync()
}
