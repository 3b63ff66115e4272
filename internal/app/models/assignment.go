package models

import "time"

// Assignment is coursework a faculty member hands out for a subject
type Assignment struct {
	ID            int64     `json:"id" db:"id"`
	SubjectID     int64     `json:"subjectId" db:"subject_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	DueAt         time.Time `json:"dueAt" db:"due_at"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty" db:"attachment_url"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Subject *Subject `json:"subject,omitempty"`
}

// Submission is a student's uploaded answer to an assignment. One
// submission per (assignment, student); re-submitting replaces the file.
type Submission struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignmentId" db:"assignment_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	FileURL      string    `json:"fileUrl" db:"file_url"`
	Feedback     *string   `json:"feedback,omitempty" db:"feedback"`
	SubmittedAt  time.Time `json:"submittedAt" db:"submitted_at"`
}
