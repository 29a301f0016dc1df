package transport_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/observability"
	"github.com/spec-kit/gradebook-console/internal/transport"
)

type errTransport struct{}

func (errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection reset")
}

func TestLogging_SetsRequestID(t *testing.T) {
	next := &recordingTransport{}
	logging := transport.NewLogging(next, zap.NewNop(), observability.NewMetrics())

	req := newRequest(t, "/api/classes")
	_, err := logging.RoundTrip(req)
	require.NoError(t, err)

	assert.NotEmpty(t, next.req.Header.Get("X-Request-ID"))
	assert.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestLogging_RequestIDsAreUnique(t *testing.T) {
	next := &recordingTransport{}
	logging := transport.NewLogging(next, zap.NewNop(), observability.NewMetrics())

	_, err := logging.RoundTrip(newRequest(t, "/api/classes"))
	require.NoError(t, err)
	first := next.req.Header.Get("X-Request-ID")

	_, err = logging.RoundTrip(newRequest(t, "/api/classes"))
	require.NoError(t, err)

	assert.NotEqual(t, first, next.req.Header.Get("X-Request-ID"))
}

func TestLogging_RecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	logging := transport.NewLogging(&recordingTransport{}, zap.NewNop(), metrics)

	_, err := logging.RoundTrip(newRequest(t, "/api/classes"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), metrics.Requests()["/api/classes|GET|200"])
}

func TestLogging_TransportError(t *testing.T) {
	metrics := observability.NewMetrics()
	logging := transport.NewLogging(errTransport{}, zap.NewNop(), metrics)

	_, err := logging.RoundTrip(newRequest(t, "/api/classes"))
	assert.Error(t, err)
	assert.Empty(t, metrics.Requests())
}
