package dto

// SubjectRequest creates or updates a subject.
type SubjectRequest struct {
	SubjectCode string  `json:"subjectCode"`
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
	Description string  `json:"description"`
}

// SubjectResponse is a subject.
type SubjectResponse struct {
	ID          int64   `json:"id"`
	SubjectCode string  `json:"subjectCode"`
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
	Description string  `json:"description"`
}
