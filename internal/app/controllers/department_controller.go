package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department := &models.Department{DName: req.DName, FID: req.FID}
	did, err := c.departmentService.CreateDepartment(ctx, department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department.DID = did
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// GetDepartmentByID retrieves a department by ID
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	did, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, did)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// GetAllDepartments lists departments, optionally filtered by faculty
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	if fidStr := ctx.Query("fid"); fidStr != "" {
		fid, ok := parseQueryID(ctx, "fid", fidStr)
		if !ok {
			return
		}
		departments, err := c.departmentService.GetDepartmentsByFacultyID(ctx, fid)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
		return
	}

	departments, err := c.departmentService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// UpdateDepartment updates an existing department
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	did, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department := &models.Department{DID: did, DName: req.DName, FID: req.FID}
	if err := c.departmentService.UpdateDepartment(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// DeleteDepartment deletes a department
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	did, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, did); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "department deleted"}))
}
