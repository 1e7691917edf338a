package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
	"github.com/milad/unitel/internal/pkg/helpers"
)

// SpaceController handles space-related operations
type SpaceController struct {
	spaceService services.SpaceService
}

// NewSpaceController creates a new SpaceController
func NewSpaceController(spaceService services.SpaceService) *SpaceController {
	return &SpaceController{
		spaceService: spaceService,
	}
}

// CreateSpace handles space creation
func (c *SpaceController) CreateSpace(ctx *gin.Context) {
	var req dto.CreateSpaceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	space := &models.Space{SName: req.SName, Room: req.Room}
	cid, err := c.spaceService.CreateSpace(ctx, space)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	space.CID = cid
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(space))
}

// GetSpaceByID retrieves a space by ID
func (c *SpaceController) GetSpaceByID(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	space, err := c.spaceService.GetSpaceByID(ctx, cid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(space))
}

// GetAllSpaces lists spaces with optional limit/index paging
func (c *SpaceController) GetAllSpaces(ctx *gin.Context) {
	limit, index, paged := helpers.ParseListParams(ctx)

	spaces, err := c.spaceService.GetAllSpaces(ctx, limit, index, paged)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(spaces))
}

// UpdateSpace updates an existing space
func (c *SpaceController) UpdateSpace(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpaceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	space := &models.Space{CID: cid, SName: req.SName, Room: req.Room}
	if err := c.spaceService.UpdateSpace(ctx, space); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(space))
}

// DeleteSpace deletes a space
func (c *SpaceController) DeleteSpace(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.spaceService.DeleteSpace(ctx, cid); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "space deleted"}))
}
