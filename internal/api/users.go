package api

import (
	"context"
	"fmt"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// UsersService covers the admin user-management endpoints.
type UsersService struct {
	client *Client
}

// RegisterStudent creates a new student account (admin only).
func (s *UsersService) RegisterStudent(ctx context.Context, req dto.StudentRequest) (*dto.StudentResponse, error) {
	out := &dto.StudentResponse{}
	if err := s.client.post(ctx, "/admin/users/students", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterTeacher creates a new teacher account (admin only).
func (s *UsersService) RegisterTeacher(ctx context.Context, req dto.TeacherRequest) (*dto.TeacherResponse, error) {
	out := &dto.TeacherResponse{}
	if err := s.client.post(ctx, "/admin/users/teachers", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a user by numeric ID.
func (s *UsersService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := s.client.get(ctx, fmt.Sprintf("/admin/users/%d", id), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByUsername fetches a user by username.
func (s *UsersService) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := s.client.get(ctx, "/admin/users/username/"+pathEscape(username), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByEmail fetches a user by email.
func (s *UsersService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := s.client.get(ctx, "/admin/users/email/"+pathEscape(email), out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all users (admin only).
func (s *UsersService) List(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := s.client.get(ctx, "/admin/users/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes account information (admin only).
func (s *UsersService) Update(ctx context.Context, id int64, req dto.UserRequest) (*dto.UserResponse, error) {
	out := &dto.UserResponse{}
	if err := s.client.put(ctx, fmt.Sprintf("/admin/users/update/%d", id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an account (admin only).
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/users/delete/%d", id))
}
