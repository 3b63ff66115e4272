package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/services"
	"github.com/okanserdaroglu/campushub/internal/middleware"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// AssignmentController handles coursework and submission endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
	studentService    *services.StudentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, studentService *services.StudentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		studentService:    studentService,
	}
}

// CreateAssignment hands out coursework
// @Summary Create an assignment
// @Description Hands out coursework for a subject, optionally with an attachment (faculty)
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param subjectId formData int true "Subject ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param dueAt formData string true "Deadline, RFC 3339"
// @Param attachment formData file false "Attachment"
// @Success 201 {object} dto.APIResponse{data=models.Assignment} "Assignment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /assignments [post]
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	// Attachment is optional
	attachment, _ := ctx.FormFile("attachment")

	assignment, err := c.assignmentService.CreateAssignment(ctx, userID, &req, attachment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, assignment)
}

// ListAssignments lists a subject's assignments
// @Summary List assignments
// @Description Lists a subject's assignments, latest deadline first
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment} "Assignments"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /assignments/subjects/{id} [get]
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListAssignments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, assignments)
}

// GetAssignment retrieves one assignment
// @Summary Get an assignment
// @Description Retrieves one assignment with its subject
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment} "Assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (c *AssignmentController) GetAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.GetAssignment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, assignment)
}

// DeleteAssignment removes an assignment
// @Summary Delete an assignment
// @Description Removes an assignment and its stored attachment (faculty)
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment deleted"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assignmentService.DeleteAssignment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Assignment deleted"})
}

// SubmitAssignment uploads a student's answer
// @Summary Submit an assignment
// @Description Uploads the caller's answer file; re-submitting before the deadline replaces it (student)
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param file formData file true "Answer file"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission stored"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Deadline has passed"
// @Router /assignments/{id}/submissions [post]
func (c *AssignmentController) SubmitAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	student, err := c.studentService.GetStudentByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		bindingError(ctx, err)
		return
	}

	submission, err := c.assignmentService.SubmitAssignment(ctx, student.ID, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, submission)
}

// ListSubmissions lists an assignment's submissions
// @Summary List submissions
// @Description Lists every submission for an assignment (faculty)
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionListResponse} "Submissions"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.assignmentService.ListSubmissions(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dto.SubmissionListResponse{Submissions: submissions})
}

// GiveFeedback attaches feedback to a submission
// @Summary Give feedback
// @Description Attaches faculty feedback to a submission (faculty)
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.FeedbackRequest true "Feedback"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Feedback stored"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /assignments/submissions/{id}/feedback [put]
func (c *AssignmentController) GiveFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	if err := c.assignmentService.GiveFeedback(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Feedback stored"})
}
