package dto

// ClassRequest creates or updates a class.
type ClassRequest struct {
	AcademicYear string `json:"academicYear"`
	Name         string `json:"name"`
}

// ClassResponse is a class.
type ClassResponse struct {
	ID           int64  `json:"id"`
	AcademicYear string `json:"academicYear"`
	Name         string `json:"name"`
}
