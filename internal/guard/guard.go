package guard

import (
	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/session"
)

// Session is the slice of the session manager guards consult.
type Session interface {
	IsAuthenticated() bool
	HasRole(role domain.Role) bool
	NavigateByRole()
}

// Guard decides whether a protected route may be activated. A denying
// guard is responsible for redirecting before returning false.
type Guard interface {
	CanActivate(path string) bool
}

// AuthGuard denies unauthenticated access and redirects to login.
type AuthGuard struct {
	sessions Session
	nav      session.Navigator
}

// NewAuthGuard constructs the guard.
func NewAuthGuard(sessions Session, nav session.Navigator) *AuthGuard {
	return &AuthGuard{sessions: sessions, nav: nav}
}

// CanActivate allows authenticated sessions through; otherwise it
// redirects to the login entry point and denies.
func (g *AuthGuard) CanActivate(string) bool {
	if g.sessions.IsAuthenticated() {
		return true
	}
	g.nav.NavigateTo(session.RouteLogin)
	return false
}

// RoleGuard denies access when the user holds none of the allowed roles.
// An authenticated user with the wrong role is valid, just misrouted, so
// the guard sends them to their own landing page instead of login.
// Unauthenticated access defers to the authentication guard.
type RoleGuard struct {
	auth     *AuthGuard
	sessions Session
	allowed  map[domain.Role]struct{}
}

// NewRoleGuard constructs a guard permitting the given roles.
func NewRoleGuard(sessions Session, nav session.Navigator, allowed ...domain.Role) *RoleGuard {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return &RoleGuard{
		auth:     NewAuthGuard(sessions, nav),
		sessions: sessions,
		allowed:  allowedSet,
	}
}

// CanActivate implements Guard.
func (g *RoleGuard) CanActivate(path string) bool {
	if !g.sessions.IsAuthenticated() {
		return g.auth.CanActivate(path)
	}
	for role := range g.allowed {
		if g.sessions.HasRole(role) {
			return true
		}
	}
	g.sessions.NavigateByRole()
	return false
}

// Chain runs guards in order; the first denial wins.
type Chain []Guard

// CanActivate implements Guard.
func (c Chain) CanActivate(path string) bool {
	for _, g := range c {
		if !g.CanActivate(path) {
			return false
		}
	}
	return true
}
