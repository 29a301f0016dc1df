package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
	"github.com/spec-kit/gradebook-console/internal/auth"
	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/events"
	apperrors "github.com/spec-kit/gradebook-console/pkg/util"
)

var (
	errAPINotBound = errors.New("auth api not bound")
	errEmptyToken  = errors.New("signin response missing token")
)

// AuthAPI is the slice of the backend client the manager needs.
type AuthAPI interface {
	SignIn(ctx context.Context, req dto.LoginRequest) (*dto.SignInResponse, error)
}

// Manager owns the current-user state. It is the single shared mutable cell
// of the client: login and logout mutate it, predicates read it, and every
// change is published synchronously to subscribers.
type Manager struct {
	store  Store
	nav    Navigator
	events events.Dispatcher
	logger *zap.Logger
	api    AuthAPI

	mu    sync.RWMutex
	token string
	user  *domain.CurrentUser
}

// NewManager builds the manager. The auth API is bound separately because
// the request pipeline that carries it needs the manager as token source.
func NewManager(store Store, nav Navigator, dispatcher events.Dispatcher, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		nav:    nav,
		events: dispatcher,
		logger: logger,
	}
}

// BindAPI attaches the backend client used by Login.
func (m *Manager) BindAPI(api AuthAPI) {
	m.api = api
}

// Restore loads a previously persisted session into the cell. A load
// failure starts the client unauthenticated rather than aborting.
func (m *Manager) Restore(ctx context.Context) {
	rec, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn("failed to restore session", zap.Error(err))
		return
	}
	if rec == nil {
		return
	}

	m.mu.Lock()
	m.token = rec.Token
	m.user = rec.User
	m.mu.Unlock()

	m.publish(rec.User)
}

// Login authenticates against the backend. On success the token and user
// are persisted as one unit and the new user is published before Login
// returns. On failure any prior session is left untouched.
func (m *Manager) Login(ctx context.Context, creds dto.LoginRequest) (*domain.CurrentUser, error) {
	if m.api == nil {
		return nil, apperrors.NewClientError(errAPINotBound)
	}

	resp, err := m.api.SignIn(ctx, creds)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, apperrors.NewClientError(errEmptyToken)
	}

	user := resp.CurrentUser()
	if err := m.store.Save(ctx, &Record{Token: resp.Token, User: user}); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.token = resp.Token
	m.user = user
	m.mu.Unlock()

	m.publish(user)
	m.logger.Info("session established",
		zap.String("username", user.Username),
		zap.Strings("roles", user.Roles))
	return user, nil
}

// Logout clears the store and the cell, publishes nil, and navigates to the
// login entry point. Safe to call with no session.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("failed to clear session store", zap.Error(err))
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.publish(nil)
	m.nav.NavigateTo(RouteLogin)
}

// IsAuthenticated reports whether a non-expired token is stored. Expiry is
// checked lazily on each call; a malformed token is simply not-authenticated.
func (m *Manager) IsAuthenticated() bool {
	token := m.Token()
	if token == "" {
		return false
	}

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		return false
	}
	return claims.ExpiresAfter(time.Now())
}

// HasRole reports whether the current user's role-tag set contains the tag
// for role. Always false without a session.
func (m *Manager) HasRole(role domain.Role) bool {
	return m.CurrentUser().HasRole(role)
}

// CurrentUser returns the cached user projection, nil when signed out.
func (m *Manager) CurrentUser() *domain.CurrentUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Token returns the stored session token, empty when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// NavigateByRole dispatches to the landing page for the user's role,
// checked in fixed priority order so a multi-tag token routes
// deterministically. Without a matching role it falls back to login.
func (m *Manager) NavigateByRole() {
	switch {
	case m.HasRole(domain.RoleAdmin):
		m.nav.NavigateTo(RouteAdminDashboard)
	case m.HasRole(domain.RoleTeacher):
		m.nav.NavigateTo(RouteTeacherDashboard)
	case m.HasRole(domain.RoleStudent):
		m.nav.NavigateTo(RouteStudentDashboard)
	default:
		m.nav.NavigateTo(RouteLogin)
	}
}

// Subscribe registers a handler invoked with the new current user (or nil)
// on every session change. The returned func cancels the subscription.
func (m *Manager) Subscribe(fn func(*domain.CurrentUser)) (cancel func()) {
	return m.events.Subscribe(events.EventSessionChanged, func(e events.Event) {
		fn(e.User)
	})
}

func (m *Manager) publish(user *domain.CurrentUser) {
	m.events.Publish(events.Event{
		Type:      events.EventSessionChanged,
		Timestamp: time.Now(),
		User:      user,
	})
}
