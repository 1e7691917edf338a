package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/pkg/apperrors"
	"github.com/milad/unitel/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Anything not in the
// taxonomy is reported as a generic 500 with the cause logged, never echoed.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrInvalidRole):
		respondError(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidRole, "Invalid user role"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrOTPCooldown):
		respondError(c, http.StatusTooManyRequests, dto.NewErrorDetail(dto.ErrorCodeOTPCooldown, "A code was already sent, wait before requesting another"))
	case errors.Is(err, apperrors.ErrOTPExpired):
		respondError(c, http.StatusGone, dto.NewErrorDetail(dto.ErrorCodeOTPExpired, "Verification code expired"))
	case errors.Is(err, apperrors.ErrOTPMismatch):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeOTPMismatch, "Verification code does not match"))
	case errors.Is(err, apperrors.ErrOTPNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeOTPNotFound, "No pending verification code"))
	case errors.Is(err, apperrors.ErrUserAlreadyExists),
		errors.Is(err, apperrors.ErrEmployeeAlreadyExists),
		errors.Is(err, apperrors.ErrESPAlreadyExists),
		errors.Is(err, apperrors.ErrContactInfoExists),
		errors.Is(err, apperrors.ErrFavoriteExists),
		errors.Is(err, apperrors.ErrClassificationExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))
	case errors.Is(err, apperrors.ErrFacultyHasDepartments):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceInUse, err.Error()))
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrEmployeeNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrSpaceNotFound),
		errors.Is(err, apperrors.ErrESPNotFound),
		errors.Is(err, apperrors.ErrContactInfoNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrMembershipNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrFavoriteNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
