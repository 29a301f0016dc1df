package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/api"
	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/observability"
	"github.com/spec-kit/gradebook-console/internal/transport"
	apperrors "github.com/spec-kit/gradebook-console/pkg/util"
)

func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL+"/api", server.Client(), zap.NewNop(), observability.NewMetrics())
	return client, server
}

func TestClient_SignIn(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signin", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token": "signed.jwt.token",
			"type": "Bearer",
			"id": 7,
			"username": "jdoe",
			"email": "jdoe@school.edu",
			"roles": ["ROLE_STUDENT"],
			"studentIdNum": "S-100"
		}`))
	}))

	resp, err := client.SignIn(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, []string{"ROLE_STUDENT"}, resp.Roles)
	assert.Equal(t, "S-100", resp.CurrentUser().StudentIDNum)
}

func TestClient_SignInFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))

	expiredCalls := 0
	client.OnSessionExpired(func(context.Context) { expiredCalls++ })

	_, err := client.SignIn(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindLoginFailure))
	assert.Zero(t, expiredCalls, "a login failure must not trigger logout")
}

func TestClient_SessionExpiredFiresLogoutHook(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Token-Expired", "true")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"JWT token has expired"}`))
	}))

	expiredCalls := 0
	client.OnSessionExpired(func(context.Context) { expiredCalls++ })

	_, err := client.Grades.List(context.Background())
	require.Error(t, err)

	apiErr, ok := apperrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindSessionExpired, apiErr.Kind)
	assert.Equal(t, apperrors.MsgSessionExpired, apiErr.Message)
	assert.Equal(t, 1, expiredCalls)
}

func TestClient_ForbiddenDoesNotLogout(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Access Denied"}`))
	}))

	expiredCalls := 0
	client.OnSessionExpired(func(context.Context) { expiredCalls++ })

	_, err := client.Users.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	assert.Zero(t, expiredCalls)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := api.NewClient(server.URL+"/api", server.Client(), zap.NewNop(), observability.NewMetrics())
	server.Close()

	_, err := client.Grades.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindClient))
}

func TestClient_DecodesCollections(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/grades/student/S-100", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"value":9.5,"studentIdNum":"S-100","subjectCode":"MATH"}]`))
	}))

	grades, err := client.Grades.ListByStudent(context.Background(), "S-100")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 9.5, grades[0].Value)
	assert.Equal(t, "MATH", grades[0].SubjectCode)
}

func TestClient_AverageEndpoint(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/grades/averages/student/overall/S-100", r.URL.Path)
		_, _ = w.Write([]byte(`8.25`))
	}))

	avg, err := client.Grades.StudentOverallAverage(context.Background(), "S-100")
	require.NoError(t, err)
	assert.Equal(t, 8.25, avg)
}

func TestClient_DeleteWithEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.NoError(t, client.Grades.Delete(context.Background(), 42))
}

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

// Exercises the full outbound chain: logging wraps the wire, the
// authenticator decides per path whether the bearer token rides along.
func TestClient_PipelineAttachesToken(t *testing.T) {
	var authHeaders []string
	var requestIDs []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		requestIDs = append(requestIDs, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	metrics := observability.NewMetrics()
	logging := transport.NewLogging(http.DefaultTransport, zap.NewNop(), metrics)
	authenticated := transport.NewAuthenticator(logging, staticTokens("tok-123"))
	httpClient := &http.Client{Transport: authenticated}

	client := api.NewClient(server.URL+"/api", httpClient, zap.NewNop(), metrics)

	_, err := client.Grades.List(context.Background())
	require.NoError(t, err)
	_, err = client.SignIn(context.Background(), dto.LoginRequest{})
	require.Error(t, err) // empty body does not decode into a sign-in payload

	require.Len(t, authHeaders, 2)
	assert.Equal(t, "Bearer tok-123", authHeaders[0])
	assert.Empty(t, authHeaders[1], "sign-in must never carry a stored token")
	assert.NotEmpty(t, requestIDs[0])
	assert.NotEmpty(t, requestIDs[1])
}
