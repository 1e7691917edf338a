package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// FavoriteController handles favorite category and pin operations
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController creates a new FavoriteController
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

func (c *FavoriteController) principal(ctx *gin.Context) (*models.Principal, bool) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}
	return principal, true
}

// CreateCategory creates a favorite bucket for the caller
func (c *FavoriteController) CreateCategory(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}

	var req dto.CreateFavoriteCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.favoriteService.CreateCategory(ctx, principal.Phone, req.Title)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(category))
}

// GetCategories lists the caller's favorite categories
func (c *FavoriteController) GetCategories(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}

	categories, err := c.favoriteService.GetCategories(ctx, principal.Phone)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(categories))
}

// DeleteCategory deletes one of the caller's categories
func (c *FavoriteController) DeleteCategory(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}
	favcatID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.favoriteService.DeleteCategory(ctx, principal.Phone, favcatID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "category deleted"}))
}

// GetFavorites lists the contactables pinned in one of the caller's
// categories
func (c *FavoriteController) GetFavorites(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}
	favcatID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	cids, err := c.favoriteService.GetFavorites(ctx, principal.Phone, favcatID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(cids))
}

// AddFavorite pins a contactable into one of the caller's categories
func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}
	favcatID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.favoriteService.AddFavorite(ctx, principal.Phone, favcatID, req.CID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MessageResponse{Message: "favorite added"}))
}

// RemoveFavorite unpins a contactable from one of the caller's categories
func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	principal, ok := c.principal(ctx)
	if !ok {
		return
	}
	favcatID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	cid, ok := parseIDParam(ctx, "cid")
	if !ok {
		return
	}

	if err := c.favoriteService.RemoveFavorite(ctx, principal.Phone, favcatID, cid); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "favorite removed"}))
}
