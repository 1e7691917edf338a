package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// ContactsController exposes the related-contacts aggregation
type ContactsController struct {
	contactsService services.ContactsService
}

// NewContactsController creates a new ContactsController
func NewContactsController(contactsService services.ContactsService) *ContactsController {
	return &ContactsController{
		contactsService: contactsService,
	}
}

// GetRelatedContacts computes the role-scoped contact blocks for the
// authenticated principal. The response body is the aggregation result
// itself, not the standard envelope, for compatibility with existing
// clients.
func (c *ContactsController) GetRelatedContacts(ctx *gin.Context) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	result, err := c.contactsService.GetRelatedContacts(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
