package dto

import "github.com/okanserdaroglu/campushub/internal/app/models"

// CreateAssignmentRequest hands out coursework for a subject. Submitted
// as multipart form data so an attachment can ride along.
type CreateAssignmentRequest struct {
	SubjectID   int64  `form:"subjectId" binding:"required,min=1"`
	Title       string `form:"title" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"required"`
	DueAt       string `form:"dueAt" binding:"required" example:"2024-10-01T23:59:00Z"`
}

// FeedbackRequest attaches faculty feedback to a submission
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// SubmissionListResponse lists a student's or assignment's submissions
type SubmissionListResponse struct {
	Submissions []models.Submission `json:"submissions"`
}
