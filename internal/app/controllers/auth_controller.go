package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SendOTP dispatches a verification code to a phone number
func (c *AuthController) SendOTP(ctx *gin.Context) {
	var req dto.SendOTPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.SendOTP(ctx, req.Phone)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// VerifyOTP checks a submitted code and issues a token pair
func (c *AuthController) VerifyOTP(ctx *gin.Context) {
	var req dto.VerifyOTPRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.VerifyOTP(ctx, req.Phone, req.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// Login authenticates with phone and password
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx, req.Phone, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}
