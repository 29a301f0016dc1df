package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/observability"
)

// Logging decorates a RoundTripper with a per-request correlation ID,
// structured request logging, and request counters.
type Logging struct {
	next    http.RoundTripper
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewLogging wraps next with request logging.
func NewLogging(next http.RoundTripper, logger *zap.Logger, metrics *observability.Metrics) *Logging {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Logging{next: next, logger: logger, metrics: metrics}
}

// RoundTrip implements http.RoundTripper.
func (l *Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := l.next.RoundTrip(clone)
	duration := time.Since(start)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Duration("duration", duration),
	}
	if err != nil {
		l.logger.Warn("request failed", append(fields, zap.Error(err))...)
		return resp, err
	}

	l.metrics.RecordRequest(req.URL.Path, req.Method, resp.StatusCode, duration)
	l.logger.Debug("request completed", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
