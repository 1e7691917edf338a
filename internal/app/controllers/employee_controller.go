package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
	"github.com/milad/unitel/internal/pkg/helpers"
)

// EmployeeController handles employee and classification operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// CreateEmployee promotes an existing user to an employee
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	empID, err := c.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.employeeService.GetEmployeeByID(ctx, empID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetEmployeeByID retrieves an employee with its classification
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, empID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employee))
}

// GetAllEmployees lists employees with optional limit/index paging
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	limit, index, paged := helpers.ParseListParams(ctx)

	employees, err := c.employeeService.GetAllEmployees(ctx, limit, index, paged)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employees))
}

// DeleteEmployee removes an employee
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, empID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "employee deleted"}))
}

// SetFacultyMember classifies an employee as faculty staff
func (c *EmployeeController) SetFacultyMember(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetFacultyMemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.employeeService.SetFacultyMember(ctx, empID, req.DID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MessageResponse{Message: "employee classified as faculty member"}))
}

// SetNonFacultyMember classifies an employee as non-faculty staff
func (c *EmployeeController) SetNonFacultyMember(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SetNonFacultyMemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.employeeService.SetNonFacultyMember(ctx, empID, req.Workarea); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MessageResponse{Message: "employee classified as non-faculty member"}))
}

// ClearClassification removes an employee's classification
func (c *EmployeeController) ClearClassification(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.employeeService.ClearClassification(ctx, empID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "classification removed"}))
}
