package dto

import "github.com/spec-kit/gradebook-console/internal/domain"

// UserRequest is the base payload for account registration and updates.
type UserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// UserResponse is the base account representation.
type UserResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Firstname string      `json:"firstname"`
	Lastname  string      `json:"lastname"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
}

// StudentRequest registers a student account.
type StudentRequest struct {
	UserRequest
	StudentIDNum string `json:"studentIdNum"`
}

// StudentResponse is a student account.
type StudentResponse struct {
	UserResponse
	StudentIDNum string `json:"studentIdNum"`
}

// TeacherRequest registers a teacher account.
type TeacherRequest struct {
	UserRequest
	TeacherIDNum string `json:"teacherIdNum"`
}

// TeacherResponse is a teacher account.
type TeacherResponse struct {
	UserResponse
	TeacherIDNum string `json:"teacherIdNum"`
}
