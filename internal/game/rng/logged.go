package rng

import "go.uber.org/zap"

// loggedSource wraps a Source and logs every draw at debug level, giving
// fights a full audit trail of randomness.
type loggedSource struct {
	src    Source
	logger *zap.Logger
}

// NewLogged returns a Source that forwards to src and debug-logs each draw
// with its bound and value.
//
// Precondition: src and logger must be non-nil.
func NewLogged(src Source, logger *zap.Logger) Source {
	return &loggedSource{src: src, logger: logger}
}

func (l *loggedSource) Intn(n int) int {
	v := l.src.Intn(n)
	l.logger.Debug("rng draw",
		zap.String("kind", "intn"),
		zap.Int("bound", n),
		zap.Int("value", v),
	)
	return v
}

func (l *loggedSource) Float64() float64 {
	v := l.src.Float64()
	l.logger.Debug("rng draw",
		zap.String("kind", "float64"),
		zap.Float64("value", v),
	)
	return v
}
