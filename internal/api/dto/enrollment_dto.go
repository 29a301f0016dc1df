package dto

// EnrollmentRequest enrolls a student in a class and subject.
type EnrollmentRequest struct {
	StudentIDNum string `json:"studentIdNum"`
	ClassID      int64  `json:"classId"`
	SubjectCode  string `json:"subjectCode"`
}

// EnrollmentResponse is an enrollment with its joined entities.
type EnrollmentResponse struct {
	ID             int64           `json:"id"`
	EnrollmentDate string          `json:"enrollmentDate,omitempty"`
	Semester       string          `json:"semester,omitempty"`
	AcademicYear   string          `json:"academicYear,omitempty"`
	Student        StudentResponse `json:"student"`
	Subject        SubjectResponse `json:"subject"`
	ClassEntity    ClassResponse   `json:"classEntity"`
}
