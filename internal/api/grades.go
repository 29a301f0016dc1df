package api

import (
	"context"
	"fmt"

	"github.com/spec-kit/gradebook-console/internal/api/dto"
)

// GradesService covers the grade and average endpoints.
type GradesService struct {
	client *Client
}

// Add records a new grade (teacher and admin).
func (s *GradesService) Add(ctx context.Context, req dto.GradeRequest) (*dto.GradeResponse, error) {
	out := &dto.GradeResponse{}
	if err := s.client.post(ctx, "/grades/add", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a grade.
func (s *GradesService) GetByID(ctx context.Context, id int64) (*dto.GradeResponse, error) {
	out := &dto.GradeResponse{}
	if err := s.client.get(ctx, fmt.Sprintf("/grades/%d", id), out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all grades (admin only).
func (s *GradesService) List(ctx context.Context) ([]dto.GradeResponse, error) {
	var out []dto.GradeResponse
	if err := s.client.get(ctx, "/grades", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByTeacher returns grades recorded by a teacher.
func (s *GradesService) ListByTeacher(ctx context.Context, teacherIDNum string) ([]dto.GradeResponse, error) {
	var out []dto.GradeResponse
	if err := s.client.get(ctx, "/grades/teacher/"+pathEscape(teacherIDNum), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStudent returns a student's grades.
func (s *GradesService) ListByStudent(ctx context.Context, studentIDNum string) ([]dto.GradeResponse, error) {
	var out []dto.GradeResponse
	if err := s.client.get(ctx, "/grades/student/"+pathEscape(studentIDNum), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBySubject returns all grades in a subject.
func (s *GradesService) ListBySubject(ctx context.Context, subjectCode string) ([]dto.GradeResponse, error) {
	var out []dto.GradeResponse
	if err := s.client.get(ctx, "/grades/subject/"+pathEscape(subjectCode), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStudentAndSubject returns a student's grades in one subject.
func (s *GradesService) ListByStudentAndSubject(ctx context.Context, studentIDNum, subjectCode string) ([]dto.GradeResponse, error) {
	var out []dto.GradeResponse
	path := "/grades/student/" + pathEscape(studentIDNum) + "/subject/" + pathEscape(subjectCode)
	if err := s.client.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifies an existing grade (teacher and admin).
func (s *GradesService) Update(ctx context.Context, id int64, req dto.GradeRequest) (*dto.GradeResponse, error) {
	out := &dto.GradeResponse{}
	if err := s.client.put(ctx, fmt.Sprintf("/grades/%d", id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a grade (admin only).
func (s *GradesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/grades/%d", id))
}

// StudentSubjectAverage returns a student's average in one subject.
func (s *GradesService) StudentSubjectAverage(ctx context.Context, studentIDNum, subjectCode string) (float64, error) {
	var out float64
	path := "/grades/averages/student/" + pathEscape(studentIDNum) + "/subject/" + pathEscape(subjectCode)
	if err := s.client.get(ctx, path, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// StudentOverallAverage returns a student's weighted average across all
// subjects.
func (s *GradesService) StudentOverallAverage(ctx context.Context, studentIDNum string) (float64, error) {
	var out float64
	if err := s.client.get(ctx, "/grades/averages/student/overall/"+pathEscape(studentIDNum), &out); err != nil {
		return 0, err
	}
	return out, nil
}

// SubjectAverage returns a subject's average across all students.
func (s *GradesService) SubjectAverage(ctx context.Context, subjectCode string) (float64, error) {
	var out float64
	if err := s.client.get(ctx, "/grades/averages/subject/"+pathEscape(subjectCode), &out); err != nil {
		return 0, err
	}
	return out, nil
}
