package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
	"github.com/milad/unitel/internal/pkg/helpers"
)

// UserController handles user account operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register creates a new account
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	uid, err := c.userService.CreateUser(ctx, req.Phone, req.FullName, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.UserResponse{
		UID:      uid,
		Phone:    req.Phone,
		FullName: req.FullName,
	}))
}

// GetMe returns the authenticated user's own account
func (c *UserController) GetMe(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	user, err := c.userService.GetUserByPhone(ctx, principal.Phone)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UserResponse{
		UID:      user.UID,
		Phone:    user.Phone,
		FullName: user.FullName,
	}))
}

// GetAllUsers lists accounts with optional limit/index paging
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	limit, index, paged := helpers.ParseListParams(ctx)

	users, err := c.userService.GetAllUsers(ctx, limit, index, paged)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.UserResponse{
			UID:      user.UID,
			Phone:    user.Phone,
			FullName: user.FullName,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// EditName updates the authenticated user's display name
func (c *UserController) EditName(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.EditNameRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.userService.UpdateFullName(ctx, principal.Phone, req.FullName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "name updated"}))
}

// ChangePassword rotates the authenticated user's password
func (c *UserController) ChangePassword(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.userService.ChangePassword(ctx, principal.Phone, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "password updated"}))
}

// DeleteMe removes the authenticated user's account
func (c *UserController) DeleteMe(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	if err := c.userService.DeleteUser(ctx, principal.Phone); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "account deleted"}))
}
