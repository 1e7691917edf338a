package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// ESPController handles employee-space-post assignment operations
type ESPController struct {
	espService services.ESPService
}

// NewESPController creates a new ESPController
func NewESPController(espService services.ESPService) *ESPController {
	return &ESPController{
		espService: espService,
	}
}

// CreateESP assigns an employee to a (space, post) pair
func (c *ESPController) CreateESP(ctx *gin.Context) {
	var req dto.CreateESPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	esp := &models.ESP{EmpID: req.EmpID, SID: req.SID, PID: req.PID}
	if err := c.espService.CreateESP(ctx, esp); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(esp))
}

// GetESPsByEmployee lists the assignments held by an employee
func (c *ESPController) GetESPsByEmployee(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	esps, err := c.espService.GetESPsByEmployee(ctx, empID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(esps))
}

// DeleteESP removes an assignment identified by its composite key
func (c *ESPController) DeleteESP(ctx *gin.Context) {
	empID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	sid, ok := parseIDParam(ctx, "sid")
	if !ok {
		return
	}
	pid, ok := parseIDParam(ctx, "pid")
	if !ok {
		return
	}

	esp := &models.ESP{EmpID: empID, SID: sid, PID: pid}
	if err := c.espService.DeleteESP(ctx, esp); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "assignment deleted"}))
}
