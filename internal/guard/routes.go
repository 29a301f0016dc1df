package guard

import (
	"strings"

	"github.com/spec-kit/gradebook-console/internal/domain"
	"github.com/spec-kit/gradebook-console/internal/session"
)

// Table holds the guard decision logic for the client-side route surface:
// /auth/* is public, the three dashboard namespaces chain the
// authentication guard before the namespace's role guard, and unmatched
// paths redirect to login.
type Table struct {
	nav     session.Navigator
	student Chain
	teacher Chain
	admin   Chain
}

// NewTable wires the guard chains for every protected namespace.
func NewTable(sessions Session, nav session.Navigator) *Table {
	return &Table{
		nav:     nav,
		student: Chain{NewAuthGuard(sessions, nav), NewRoleGuard(sessions, nav, domain.RoleStudent)},
		teacher: Chain{NewAuthGuard(sessions, nav), NewRoleGuard(sessions, nav, domain.RoleTeacher)},
		admin:   Chain{NewAuthGuard(sessions, nav), NewRoleGuard(sessions, nav, domain.RoleAdmin)},
	}
}

// CanActivate evaluates the guard chain for path.
func (t *Table) CanActivate(path string) bool {
	switch {
	case strings.HasPrefix(path, "/auth"):
		return true
	case strings.HasPrefix(path, "/student"):
		return t.student.CanActivate(path)
	case strings.HasPrefix(path, "/teacher"):
		return t.teacher.CanActivate(path)
	case strings.HasPrefix(path, "/admin"):
		return t.admin.CanActivate(path)
	default:
		t.nav.NavigateTo(session.RouteLogin)
		return false
	}
}
