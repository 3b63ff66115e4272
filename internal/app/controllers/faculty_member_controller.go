package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/services"
	"github.com/okanserdaroglu/campushub/internal/middleware"
)

// FacultyMemberController handles faculty member endpoints
type FacultyMemberController struct {
	facultyService *services.FacultyMemberService
}

// NewFacultyMemberController creates a new FacultyMemberController
func NewFacultyMemberController(facultyService *services.FacultyMemberService) *FacultyMemberController {
	return &FacultyMemberController{facultyService: facultyService}
}

// CreateFacultyMember provisions a faculty member
// @Summary Create a faculty member
// @Description Provisions a faculty member and their user account (admin)
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyMemberRequest true "Faculty member information"
// @Success 201 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or employee ID already exists"
// @Router /faculty [post]
func (c *FacultyMemberController) CreateFacultyMember(ctx *gin.Context) {
	var req dto.CreateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	member, err := c.facultyService.CreateFacultyMember(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusCreated, member)
}

// ListFacultyMembers lists faculty members
// @Summary List faculty members
// @Description Lists faculty members, optionally filtered by department
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param department query string false "Department name"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyMember} "Faculty members"
// @Router /faculty [get]
func (c *FacultyMemberController) ListFacultyMembers(ctx *gin.Context) {
	members, err := c.facultyService.ListFacultyMembers(ctx, ctx.Query("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, members)
}

// GetFacultyMember retrieves a faculty member
// @Summary Get a faculty member
// @Description Retrieves one faculty member by ID
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [get]
func (c *FacultyMemberController) GetFacultyMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.facultyService.GetFacultyMember(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, member)
}

// UpdateFacultyMember edits a faculty member
// @Summary Update a faculty member
// @Description Edits designation and department (admin)
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Param request body dto.UpdateFacultyMemberRequest true "Updated fields"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [put]
func (c *FacultyMemberController) UpdateFacultyMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}

	member, err := c.facultyService.UpdateFacultyMember(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, member)
}

// DeleteFacultyMember removes a faculty member
// @Summary Delete a faculty member
// @Description Removes the record and deactivates the account (admin)
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty member deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [delete]
func (c *FacultyMemberController) DeleteFacultyMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFacultyMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, dto.SuccessResponse{Message: "Faculty member deleted"})
}
