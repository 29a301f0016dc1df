package events

import (
	"time"

	"github.com/spec-kit/gradebook-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventSessionChanged fires whenever the current user changes: after a
	// successful login (non-nil user) and after logout (nil user).
	EventSessionChanged EventType = "session_changed"
)

// Event represents a session lifecycle event published by the session
// manager.
type Event struct {
	Type      EventType
	Timestamp time.Time
	User      *domain.CurrentUser
}
