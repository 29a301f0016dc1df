package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	apperrors "github.com/spec-kit/gradebook-console/pkg/util"
)

// signinPath identifies the one 401 source that is a login failure rather
// than a session problem.
const signinPath = "/auth/signin"

// classify maps one failed response to the error taxonomy. A 401 is never
// classified on status alone: sign-in requests are login failures, and only
// an explicit expiry signal (header or message) means the session died.
func classify(path string, resp *http.Response, body []byte) *apperrors.APIError {
	var payload dto.ErrorResponse
	_ = json.Unmarshal(body, &payload)
	message := payload.Message

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		switch {
		case strings.Contains(path, signinPath):
			return apperrors.NewLoginFailure(message)
		case tokenExpired(message, resp.Header):
			return apperrors.NewSessionExpired()
		default:
			return apperrors.NewUnauthorized(message)
		}
	case http.StatusForbidden:
		return apperrors.NewForbidden(message)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(message)
	case http.StatusNotFound:
		return apperrors.NewNotFound(message)
	case http.StatusInternalServerError:
		return apperrors.NewServerError(message)
	default:
		return apperrors.NewUnknown(message, resp.StatusCode)
	}
}

// tokenExpired checks the backend's expiry signaling convention: a
// Token-Expired header, or an error message mentioning expiry or an invalid
// token (case-insensitive).
func tokenExpired(message string, header http.Header) bool {
	if header.Get("Token-Expired") == "true" {
		return true
	}
	msg := strings.ToLower(message)
	return strings.Contains(msg, "expired") || strings.Contains(msg, "invalid token")
}
