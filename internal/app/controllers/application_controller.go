package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/services"
	"github.com/okanserdaroglu/campushub/internal/middleware"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

// ApplicationController handles admission application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// SubmitApplication files an admission application
// @Summary Submit an admission application
// @Description Files a new application in Pending state. Public endpoint.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application form"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	app, err := c.applicationService.SubmitApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, app)
}

// ListApplications lists applications for review
// @Summary List applications
// @Description Lists applications filtered by status and program (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Application status" Enums(Pending, Approved, Rejected)
// @Param program query string false "Program name"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	var filter dto.ApplicationFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindingError(ctx, err)
		return
	}

	apps, pagination, err := c.applicationService.ListApplications(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, gin.H{
		"applications": apps,
		"pagination":   pagination,
	})
}

// GetApplication retrieves one application
// @Summary Get an application
// @Description Retrieves one application by ID (admin)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.GetApplication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, app)
}

// ApproveApplication approves a pending application
// @Summary Approve an application
// @Description Approves a Pending application, provisioning the student account and emailing credentials
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalResponse} "Application approved"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Router /applications/{id}/approve [post]
func (c *ApplicationController) ApproveApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	result, err := c.applicationService.ApproveApplication(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, result)
}

// RejectApplication rejects a pending application
// @Summary Reject an application
// @Description Rejects a Pending application and notifies the applicant
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application rejected"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Router /applications/{id}/reject [post]
func (c *ApplicationController) RejectApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	if err := c.applicationService.RejectApplication(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Application rejected"})
}
