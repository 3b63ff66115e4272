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

// FeeController handles fee structure and payment endpoints
type FeeController struct {
	feeService     *services.FeeService
	studentService *services.StudentService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService, studentService *services.StudentService) *FeeController {
	return &FeeController{
		feeService:     feeService,
		studentService: studentService,
	}
}

// CreateFeeStructure defines dues
// @Summary Create a fee structure
// @Description Defines the amount due for a program, semester and academic year (admin)
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeStructureRequest true "Fee structure"
// @Success 201 {object} dto.APIResponse{data=models.FeeStructure} "Fee structure created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /fees/structures [post]
func (c *FeeController) CreateFeeStructure(ctx *gin.Context) {
	var req dto.CreateFeeStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	fee, err := c.feeService.CreateFeeStructure(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, fee)
}

// ListFeeStructures lists fee structures
// @Summary List fee structures
// @Description Lists structures filtered by program, semester and academic year
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param program query string false "Program name"
// @Param semester query int false "Semester"
// @Param academicYear query string false "Academic year, e.g. 2024-2025"
// @Success 200 {object} dto.APIResponse{data=[]models.FeeStructure} "Fee structures"
// @Router /fees/structures [get]
func (c *FeeController) ListFeeStructures(ctx *gin.Context) {
	semester, _ := strconv.Atoi(ctx.Query("semester"))
	fees, err := c.feeService.ListFeeStructures(ctx, ctx.Query("program"), semester, ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, fees)
}

// RecordPayment records a payment
// @Summary Record a fee payment
// @Description Records a student's payment; overpaying the structure is rejected (admin)
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.APIResponse{data=models.FeePayment} "Payment recorded"
// @Failure 404 {object} dto.ErrorResponse "Student or fee structure not found"
// @Failure 409 {object} dto.ErrorResponse "Payment exceeds outstanding dues"
// @Router /fees/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	payment, err := c.feeService.RecordPayment(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, payment)
}

// GetStudentFeeStatus reports a student's dues and payments
// @Summary Get a student's fee status
// @Description Reports dues, payments and outstanding balance for the student's program
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param academicYear query string false "Academic year, e.g. 2024-2025"
// @Success 200 {object} dto.APIResponse{data=dto.FeeStatusResponse} "Fee status"
// @Failure 403 {object} dto.ErrorResponse "Not your record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /fees/students/{id} [get]
func (c *FeeController) GetStudentFeeStatus(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, hasRole := middleware.CurrentRole(ctx)
	if !hasRole {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	if role == models.RoleStudent {
		userID, hasUser := middleware.CurrentUserID(ctx)
		if !hasUser {
			middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
			return
		}
		student, err := c.studentService.GetStudentByUserID(ctx, userID)
		if err != nil || student.ID != studentID {
			middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
			return
		}
	}

	status, err := c.feeService.GetStudentFeeStatus(ctx, studentID, ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, status)
}
