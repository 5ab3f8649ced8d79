// SPDX-License-Identifier: MIT

package assert

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	reporter        atomic.Pointer[zap.Logger]
	defaultOnce     sync.Once
	defaultReporter *zap.Logger
)

// Logger returns the logger violations are reported to.
func Logger() *zap.Logger {
	if l := reporter.Load(); l != nil {
		return l
	}
	defaultOnce.Do(func() { defaultReporter = newDefaultLogger() })
	return defaultReporter
}

// SetLogger replaces the violation reporter. A nil logger restores the
// default. It returns the previous logger so tests can put it back.
func SetLogger(l *zap.Logger) *zap.Logger {
	prev := Logger()
	reporter.Store(l)
	return prev
}

// newDefaultLogger builds a production JSON logger on stderr at error level.
func newDefaultLogger() *zap.Logger {
	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.ErrorLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	l, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("yama")
}
