package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/observability"
	apperrors "github.com/spec-kit/gradebook-console/pkg/util"
)

// Client is the typed REST client for the grade-management backend. Every
// request rides the same pipeline: outbound token attachment happens in the
// transport, inbound failures are classified centrally in do.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics

	onSessionExpired func(context.Context)

	Users       *UsersService
	Classes     *ClassesService
	Subjects    *SubjectsService
	Enrollments *EnrollmentsService
	Grades      *GradesService
}

// NewClient builds the client. httpClient carries the transport chain
// (authenticator + logging); pass nil for http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger, metrics *observability.Metrics) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
		metrics: metrics,
	}
	c.Users = &UsersService{client: c}
	c.Classes = &ClassesService{client: c}
	c.Subjects = &SubjectsService{client: c}
	c.Enrollments = &EnrollmentsService{client: c}
	c.Grades = &GradesService{client: c}
	return c
}

// OnSessionExpired registers the hook fired when a response classifies as
// session expiry. Expected to be the session manager's Logout.
func (c *Client) OnSessionExpired(fn func(context.Context)) {
	c.onSessionExpired = fn
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do executes one request. Failures are classified exactly once; the error
// is always returned to the caller, and only a session-expiry
// classification triggers the logout hook.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return apperrors.NewClientError(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.NewClientError(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := apperrors.NewClientError(err)
		c.metrics.RecordError(path, method, string(apiErr.Kind))
		return apiErr
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := apperrors.NewClientError(err)
		c.metrics.RecordError(path, method, string(apiErr.Kind))
		return apiErr
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := classify(req.URL.Path, resp, data)
		c.metrics.RecordError(path, method, string(apiErr.Kind))
		if apiErr.Kind == apperrors.KindSessionExpired && c.onSessionExpired != nil {
			c.logger.Info("session expired, logging out",
				zap.String("path", req.URL.Path))
			c.onSessionExpired(ctx)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewClientError(fmt.Errorf("decode response for %s %s: %w", method, path, err))
	}
	return nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
