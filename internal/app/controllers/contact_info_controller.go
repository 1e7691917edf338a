package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// ContactInfoController handles contact line operations
type ContactInfoController struct {
	contactInfoService services.ContactInfoService
}

// NewContactInfoController creates a new ContactInfoController
func NewContactInfoController(contactInfoService services.ContactInfoService) *ContactInfoController {
	return &ContactInfoController{
		contactInfoService: contactInfoService,
	}
}

func phoneNumberParam(ctx *gin.Context) (string, bool) {
	number := strings.TrimSpace(ctx.Param("number"))
	if number == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid phone number").
			WithField("number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return "", false
	}
	return number, true
}

// CreateContactInfo attaches a phone line to a contactable
func (c *ContactInfoController) CreateContactInfo(ctx *gin.Context) {
	var req dto.CreateContactInfoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	info := &models.ContactInfo{
		PhoneNumber: req.PhoneNumber,
		Range:       req.Range,
		Subrange:    req.Subrange,
		Forward:     req.Forward,
		Extension:   req.Extension,
		CID:         req.CID,
	}
	if err := c.contactInfoService.CreateContactInfo(ctx, info); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(info))
}

// GetContactInfoByNumber retrieves a contact line by phone number
func (c *ContactInfoController) GetContactInfoByNumber(ctx *gin.Context) {
	number, ok := phoneNumberParam(ctx)
	if !ok {
		return
	}

	info, err := c.contactInfoService.GetContactInfoByNumber(ctx, number)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}

// GetContactInfosByCID lists the contact lines of a contactable
func (c *ContactInfoController) GetContactInfosByCID(ctx *gin.Context) {
	cid, ok := parseIDParam(ctx, "cid")
	if !ok {
		return
	}

	infos, err := c.contactInfoService.GetContactInfosByCID(ctx, cid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(infos))
}

// UpdateContactInfo updates the routing fields of a contact line
func (c *ContactInfoController) UpdateContactInfo(ctx *gin.Context) {
	number, ok := phoneNumberParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContactInfoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	existing, err := c.contactInfoService.GetContactInfoByNumber(ctx, number)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	existing.Range = req.Range
	existing.Subrange = req.Subrange
	existing.Forward = req.Forward
	existing.Extension = req.Extension

	if err := c.contactInfoService.UpdateContactInfo(ctx, existing); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(existing))
}

// DeleteContactInfo deletes a contact line
func (c *ContactInfoController) DeleteContactInfo(ctx *gin.Context) {
	number, ok := phoneNumberParam(ctx)
	if !ok {
		return
	}

	if err := c.contactInfoService.DeleteContactInfo(ctx, number); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "contact info deleted"}))
}
