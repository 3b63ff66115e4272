package models

import "time"

// MarksEntry holds one student's raw marks in one subject for one
// semester and academic year. The grade is never stored; it is derived
// from the marks on every read so a persisted row can never disagree
// with the grading rules.
type MarksEntry struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	SubjectID     int64     `json:"subjectId" db:"subject_id"`
	Semester      int       `json:"semester" db:"semester"`
	AcademicYear  string    `json:"academicYear" db:"academic_year" example:"2024-2025"`
	InternalMarks int       `json:"internalMarks" db:"internal_marks"` // 0-30
	ExternalMarks int       `json:"externalMarks" db:"external_marks"` // 0-70
	Remarks       *string   `json:"remarks,omitempty" db:"remarks"`
	IsPublished   bool      `json:"isPublished" db:"is_published"`
	EnteredBy     int64     `json:"enteredBy" db:"entered_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relation, populated on result reads
	Subject *Subject `json:"subject,omitempty"`
}

// TotalMarks returns internal + external marks
func (m *MarksEntry) TotalMarks() int {
	return m.InternalMarks + m.ExternalMarks
}
