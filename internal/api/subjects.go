package api

import (
	"context"
	"fmt"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// SubjectsService covers the subject endpoints.
type SubjectsService struct {
	client *Client
}

// Create adds a new subject (admin only).
func (s *SubjectsService) Create(ctx context.Context, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	out := &dto.SubjectResponse{}
	if err := s.client.post(ctx, "/subjects", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all subjects.
func (s *SubjectsService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	var out []dto.SubjectResponse
	if err := s.client.get(ctx, "/subjects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByCode fetches a subject by its code.
func (s *SubjectsService) GetByCode(ctx context.Context, subjectCode string) (*dto.SubjectResponse, error) {
	out := &dto.SubjectResponse{}
	if err := s.client.get(ctx, "/subjects/"+pathEscape(subjectCode), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByName fetches a subject by its display name.
func (s *SubjectsService) GetByName(ctx context.Context, name string) (*dto.SubjectResponse, error) {
	out := &dto.SubjectResponse{}
	if err := s.client.get(ctx, "/subjects/name/"+pathEscape(name), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies a subject (admin only).
func (s *SubjectsService) Update(ctx context.Context, subjectCode string, req dto.SubjectRequest) (*dto.SubjectResponse, error) {
	out := &dto.SubjectResponse{}
	if err := s.client.put(ctx, "/subjects/"+pathEscape(subjectCode), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a subject (admin only).
func (s *SubjectsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/subjects/%d", id))
}
