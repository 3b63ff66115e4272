package dto

import "github.com/okanserdaroglu/campushub/internal/app/grading"

// EnterMarksRequest records or corrects one student's marks in one
// subject. Marks use pointers so an explicit zero survives binding.
type EnterMarksRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1"`
	SubjectID     int64   `json:"subjectId" binding:"required,min=1"`
	Semester      int     `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear  string  `json:"academicYear" binding:"required,academic_year"`
	InternalMarks *int    `json:"internalMarks" binding:"required,min=0,max=30"`
	ExternalMarks *int    `json:"externalMarks" binding:"required,min=0,max=70"`
	Remarks       *string `json:"remarks,omitempty"`
}

// PublishMarksRequest publishes every draft entry for a subject in an
// academic year, making them visible to students.
type PublishMarksRequest struct {
	SubjectID    int64  `json:"subjectId" binding:"required,min=1"`
	AcademicYear string `json:"academicYear" binding:"required,academic_year"`
}

// SemesterResultResponse is one semester's published results with
// their summary.
type SemesterResultResponse struct {
	Results []grading.Result        `json:"results"`
	Summary grading.SemesterSummary `json:"summary"`
}

// TranscriptResponse is the full academic history
type TranscriptResponse struct {
	Semesters []SemesterResultResponse  `json:"semesters"`
	Summary   grading.TranscriptSummary `json:"summary"`
}
