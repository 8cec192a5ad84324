// Package logging defines the structured logging seam used across the
// SCM engine and its service layer. The interface shape mirrors
// *zap.SugaredLogger's keyed-argument methods so that a real zap logger
// satisfies it directly, with no adapter boilerplate.
package logging

import "go.uber.org/zap"

// Logger is the minimal structured-logging contract propagation,
// sensitivity, service, and http packages depend on.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// nopLogger discards everything. Used as the zero-value default so
// callers that don't care about logging never need a nil check.
type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Warnw(string, ...interface{})  {}
func (nopLogger) Errorw(string, ...interface{}) {}

// Nop is the no-op Logger.
var Nop Logger = nopLogger{}

// NewZap wraps a *zap.Logger for use as a Logger, matching the
// zap.NewProductionConfig() setup the rest of the service layer uses.
func NewZap(z *zap.Logger) Logger {
	return z.Sugar()
}

// New builds the process-default production zap logger. Callers that
// want development-mode formatting should construct their own
// *zap.Logger and call NewZap directly.
func New() (Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewZap(z), nil
}
