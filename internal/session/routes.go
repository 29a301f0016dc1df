package session

// Client-side route surface. /auth/* is public; the three dashboard
// namespaces are gated by authentication and role.
const (
	RouteLogin            = "/auth/login"
	RouteAdminDashboard   = "/admin/dashboard"
	RouteTeacherDashboard = "/teacher/dashboard"
	RouteStudentDashboard = "/student/dashboard"
)

// Navigator activates a client-side route. The console implementation
// switches the active view; tests record the destination.
type Navigator interface {
	NavigateTo(route string)
}
