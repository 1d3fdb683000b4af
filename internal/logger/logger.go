// Package logger wraps zap for pcal diagnostics. Logs go to stderr so they
// never mix with command output on stdout.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daviddao/persiancal/internal/config"
)

// Logger wraps zap.SugaredLogger to provide application-specific logging.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger from cfg.
func New(cfg config.LoggerConfig) (*Logger, error) {
	var zapConfig zap.Config
	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapConfig.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// FromCore wraps an existing zap core. Tests use it with zaptest/observer.
func FromCore(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

// WithFields adds structured fields to the logger.
func (l *Logger) WithFields(fields ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(fields...)}
}

// WithError adds an error field to the logger.
func (l *Logger) WithError(err error) *Logger {
	return l.WithFields("error", err.Error())
}

// WithCommand tags entries with the running subcommand.
func (l *Logger) WithCommand(name string) *Logger {
	return l.WithFields("command", name)
}

// LogStoreOp records a store call at debug level, or at error level when
// it failed.
func (l *Logger) LogStoreOp(op string, durationMs float64, err error) {
	fields := []interface{}{
		"op", op,
		"duration_ms", durationMs,
	}
	if err != nil {
		fields = append(fields, "error", err.Error())
		l.Errorw("store operation failed", fields...)
		return
	}
	l.Debugw("store operation", fields...)
}

// Close flushes any buffered log entries. Sync errors on stderr are
// ignored; they are reported by some platforms for unsyncable fds.
func (l *Logger) Close() error {
	_ = l.SugaredLogger.Sync()
	return nil
}
