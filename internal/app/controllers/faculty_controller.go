package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty creation
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty := &models.Faculty{FName: req.FName}
	fid, err := c.facultyService.CreateFaculty(ctx, faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faculty.FID = fid
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// GetFacultyByID retrieves a faculty by ID
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	fid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, fid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// GetAllFaculties retrieves all faculties
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculties))
}

// UpdateFaculty updates an existing faculty
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	fid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty := &models.Faculty{FID: fid, FName: req.FName}
	if err := c.facultyService.UpdateFaculty(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// DeleteFaculty deletes a faculty
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	fid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, fid); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "faculty deleted"}))
}
