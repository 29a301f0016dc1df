package transport

import (
	"net/http"
	"strings"
)

// authNamespace marks requests that must never carry a stored token:
// sign-in with a stale Authorization header would be rejected outright.
const authNamespace = "/auth/"

// TokenSource supplies the current session token, empty when signed out.
type TokenSource interface {
	Token() string
}

// Authenticator is outbound middleware attaching the bearer token to every
// request outside the auth namespace. It is a pure per-request transform:
// the original request is never mutated.
type Authenticator struct {
	next   http.RoundTripper
	tokens TokenSource
}

// NewAuthenticator wraps next with bearer-token attachment.
func NewAuthenticator(next http.RoundTripper, tokens TokenSource) *Authenticator {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Authenticator{next: next, tokens: tokens}
}

// RoundTrip implements http.RoundTripper.
func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.Contains(req.URL.Path, authNamespace) {
		return a.next.RoundTrip(req)
	}

	token := ""
	if a.tokens != nil {
		token = a.tokens.Token()
	}
	if token == "" {
		// no session: pass through and let the backend reject it
		return a.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return a.next.RoundTrip(clone)
}
