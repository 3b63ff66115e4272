package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/services"
	"github.com/okanserdaroglu/campushub/internal/middleware"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// ResultController handles marks entry and derived result endpoints
type ResultController struct {
	resultService  *services.ResultService
	studentService *services.StudentService
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService, studentService *services.StudentService) *ResultController {
	return &ResultController{
		resultService:  resultService,
		studentService: studentService,
	}
}

// EnterMarks records one student's marks
// @Summary Enter marks
// @Description Records internal and external marks for one student in one subject (faculty)
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnterMarksRequest true "Marks"
// @Success 201 {object} dto.APIResponse{data=models.MarksEntry} "Marks entered"
// @Failure 400 {object} dto.ErrorResponse "Marks out of range"
// @Failure 404 {object} dto.ErrorResponse "Student or subject not found"
// @Failure 409 {object} dto.ErrorResponse "Marks already entered for this year"
// @Router /results/marks [post]
func (c *ResultController) EnterMarks(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.EnterMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	entry, err := c.resultService.EnterMarks(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, entry)
}

// CorrectMarks rewrites an unpublished entry
// @Summary Correct marks
// @Description Rewrites an unpublished marks entry (faculty)
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marks entry ID"
// @Param request body dto.EnterMarksRequest true "Corrected marks"
// @Success 200 {object} dto.APIResponse{data=models.MarksEntry} "Marks corrected"
// @Failure 404 {object} dto.ErrorResponse "Marks entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry already published"
// @Router /results/marks/{id} [put]
func (c *ResultController) CorrectMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnterMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	entry, err := c.resultService.CorrectMarks(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, entry)
}

// PublishMarks publishes a subject's marks for an academic year
// @Summary Publish marks
// @Description Makes every entry for a subject and academic year visible to students. Idempotent.
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PublishMarksRequest true "Subject and academic year"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marks published"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /results/publish [post]
func (c *ResultController) PublishMarks(ctx *gin.Context) {
	var req dto.PublishMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	count, err := c.resultService.PublishMarks(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"published": count})
}

// GetSubjectMarks lists a subject's raw entries
// @Summary List a subject's marks
// @Description Lists raw entries for a subject, including drafts (faculty)
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param academicYear query string false "Academic year, e.g. 2024-2025"
// @Success 200 {object} dto.APIResponse{data=[]models.MarksEntry} "Marks entries"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /results/subjects/{id} [get]
func (c *ResultController) GetSubjectMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	entries, err := c.resultService.GetSubjectMarks(ctx, id, ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, entries)
}

// GetSemesterResult derives a student's semester result
// @Summary Get a semester result
// @Description Derives results and SGPA for one semester. Students see only their own published rows.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param semester path int true "Semester"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResultResponse} "Semester result"
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /results/students/{id}/semesters/{semester} [get]
func (c *ResultController) GetSemesterResult(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	semester, err := strconv.Atoi(ctx.Param("semester"))
	if err != nil || semester < 1 {
		bindingError(ctx, err)
		return
	}

	publishedOnly, ok := c.authorizeStudentAccess(ctx, studentID)
	if !ok {
		return
	}

	result, err := c.resultService.GetSemesterResult(ctx, studentID, semester, publishedOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, result)
}

// GetTranscript derives a student's full transcript
// @Summary Get a transcript
// @Description Derives per-semester results with SGPA and the overall CGPA
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResponse} "Transcript"
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /results/students/{id}/transcript [get]
func (c *ResultController) GetTranscript(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	publishedOnly, ok := c.authorizeStudentAccess(ctx, studentID)
	if !ok {
		return
	}

	transcript, err := c.resultService.GetTranscript(ctx, studentID, publishedOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, transcript)
}

// authorizeStudentAccess decides whether the caller may read the given
// student's results. Students reach only their own record and only
// published rows; faculty and admins see everything including drafts.
func (c *ResultController) authorizeStudentAccess(ctx *gin.Context, studentID int64) (publishedOnly bool, ok bool) {
	role, hasRole := middleware.CurrentRole(ctx)
	if !hasRole {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return false, false
	}
	if role != models.RoleStudent {
		return false, true
	}

	userID, hasUser := middleware.CurrentUserID(ctx)
	if !hasUser {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return false, false
	}

	student, err := c.studentService.GetStudentByUserID(ctx, userID)
	if err != nil || student.ID != studentID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return false, false
	}
	return true, true
}
