package api

import (
	"context"
	"fmt"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// ClassesService covers the class endpoints.
type ClassesService struct {
	client *Client
}

// Create adds a new class (admin only).
func (s *ClassesService) Create(ctx context.Context, req dto.ClassRequest) (*dto.ClassResponse, error) {
	out := &dto.ClassResponse{}
	if err := s.client.post(ctx, "/classes", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a class.
func (s *ClassesService) GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error) {
	out := &dto.ClassResponse{}
	if err := s.client.get(ctx, fmt.Sprintf("/classes/%d", id), out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all classes (admin only).
func (s *ClassesService) List(ctx context.Context) ([]dto.ClassResponse, error) {
	var out []dto.ClassResponse
	if err := s.client.get(ctx, "/classes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByTeacher returns the classes a teacher is assigned to.
func (s *ClassesService) ListByTeacher(ctx context.Context, teacherIDNum string) ([]dto.ClassResponse, error) {
	var out []dto.ClassResponse
	if err := s.client.get(ctx, "/classes/teacher/"+pathEscape(teacherIDNum), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStudent returns the classes a student is enrolled in.
func (s *ClassesService) ListByStudent(ctx context.Context, studentIDNum string) ([]dto.ClassResponse, error) {
	var out []dto.ClassResponse
	if err := s.client.get(ctx, "/classes/student/"+pathEscape(studentIDNum), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies a class (admin only).
func (s *ClassesService) Update(ctx context.Context, id int64, req dto.ClassRequest) (*dto.ClassResponse, error) {
	out := &dto.ClassResponse{}
	if err := s.client.put(ctx, fmt.Sprintf("/classes/%d", id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a class (admin only).
func (s *ClassesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/classes/%d", id))
}
