package dto

import "github.com/spec-kit/gradebook-console/internal/domain"

// LoginRequest payload for POST /auth/signin.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse is the backend's successful sign-in payload: the signed
// token plus the user projection cached for the session's lifetime.
type SignInResponse struct {
	Token        string   `json:"token"`
	Type         string   `json:"type"`
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	StudentIDNum string   `json:"studentIdNum,omitempty"`
	TeacherIDNum string   `json:"teacherIdNum,omitempty"`
}

// CurrentUser projects the response into the cached session user.
func (r *SignInResponse) CurrentUser() *domain.CurrentUser {
	return &domain.CurrentUser{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		Roles:        r.Roles,
		StudentIDNum: r.StudentIDNum,
		TeacherIDNum: r.TeacherIDNum,
	}
}

// ErrorResponse is the backend's failure payload. Only the message is
// consumed by the classifier.
type ErrorResponse struct {
	Message string `json:"message"`
}
