package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/services"
	"github.com/okanserdaroglu/campushub/internal/middleware"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
	studentService    *services.StudentService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, studentService *services.StudentService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		studentService:    studentService,
	}
}

// RecordAttendance marks a class for one day
// @Summary Record attendance
// @Description Marks a whole class for one subject and day; re-marking a day replaces the earlier marks (faculty)
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordAttendanceRequest true "Attendance batch"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Unknown status or bad date"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /attendance [post]
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	count, err := c.attendanceService.RecordAttendance(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{"recorded": count})
}

// GetClassAttendance lists a subject's marks for one day
// @Summary Get class attendance
// @Description Lists every mark recorded for a subject on one day (faculty)
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param date query string true "Day, e.g. 2024-01-10"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceMark} "Attendance marks"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /attendance/subjects/{id} [get]
func (c *AttendanceController) GetClassAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	marks, err := c.attendanceService.GetClassAttendance(ctx, id, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, marks)
}

// GetStudentSummary aggregates a student's attendance
// @Summary Get a student's attendance summary
// @Description Aggregates attendance percentage overall and per subject; Late counts as presence
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param subjectId query int false "Limit to one subject"
// @Param startDate query string false "Inclusive range start, e.g. 2024-01-01"
// @Param endDate query string false "Inclusive range end, e.g. 2024-06-30"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSummaryResponse} "Attendance summary"
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /attendance/students/{id} [get]
func (c *AttendanceController) GetStudentSummary(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if !c.authorizeStudentAccess(ctx, studentID) {
		return
	}

	var query dto.AttendanceQueryRequest
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, err)
		return
	}

	summary, err := c.attendanceService.GetStudentSummary(ctx, studentID, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, summary)
}

// authorizeStudentAccess lets a student reach only their own attendance
func (c *AttendanceController) authorizeStudentAccess(ctx *gin.Context, studentID int64) bool {
	role, hasRole := middleware.CurrentRole(ctx)
	if !hasRole {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return false
	}
	if role != models.RoleStudent {
		return true
	}

	userID, hasUser := middleware.CurrentUserID(ctx)
	if !hasUser {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return false
	}

	student, err := c.studentService.GetStudentByUserID(ctx, userID)
	if err != nil || student.ID != studentID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return false
	}
	return true
}
