package dto

// GradeRequest records a grade for a student in a subject.
type GradeRequest struct {
	Value        float64 `json:"value"`
	Date         string  `json:"date"` // ISO date
	Comment      string  `json:"comment,omitempty"`
	StudentIDNum string  `json:"studentIdNum"`
	SubjectCode  string  `json:"subjectCode"`
	RecordedBy   string  `json:"recordedBy,omitempty"`
}

// GradeResponse is a recorded grade joined with student and subject names.
type GradeResponse struct {
	ID           int64   `json:"id"`
	Value        float64 `json:"value"`
	Date         string  `json:"date"`
	Comment      string  `json:"comment,omitempty"`
	StudentIDNum string  `json:"studentIdNum"`
	Firstname    string  `json:"firstname"`
	Lastname     string  `json:"lastname"`
	SubjectCode  string  `json:"subjectCode"`
	SubjectName  string  `json:"subjectName"`
	RecordedBy   string  `json:"recordedBy,omitempty"`
}
