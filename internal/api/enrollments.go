package api

import (
	"context"
	"fmt"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// EnrollmentsService covers the enrollment endpoints.
type EnrollmentsService struct {
	client *Client
}

// Create enrolls a student in a class and subject (admin only).
func (s *EnrollmentsService) Create(ctx context.Context, req dto.EnrollmentRequest) (*dto.EnrollmentResponse, error) {
	out := &dto.EnrollmentResponse{}
	if err := s.client.post(ctx, "/enrollments", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all enrollments (admin and teacher).
func (s *EnrollmentsService) List(ctx context.Context) ([]dto.EnrollmentResponse, error) {
	var out []dto.EnrollmentResponse
	if err := s.client.get(ctx, "/enrollments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches an enrollment.
func (s *EnrollmentsService) GetByID(ctx context.Context, id int64) (*dto.EnrollmentResponse, error) {
	out := &dto.EnrollmentResponse{}
	if err := s.client.get(ctx, fmt.Sprintf("/enrollments/%d", id), out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStudent returns a student's enrollments.
func (s *EnrollmentsService) ListByStudent(ctx context.Context, studentIDNum string) ([]dto.EnrollmentResponse, error) {
	var out []dto.EnrollmentResponse
	if err := s.client.get(ctx, "/enrollments/student/"+pathEscape(studentIDNum), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an enrollment (admin only).
func (s *EnrollmentsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/enrollments/%d", id))
}
