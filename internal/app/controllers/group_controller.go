package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/middleware"
)

// GroupController handles group operations
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// CreateGroup handles group creation
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.groupService.CreateGroup(ctx, req.GName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(group))
}

// GetGroupByID retrieves a group and its members
func (c *GroupController) GetGroupByID(ctx *gin.Context) {
	gid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	group, err := c.groupService.GetGroupByID(ctx, gid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group))
}

// GetAllGroups lists all groups
func (c *GroupController) GetAllGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetAllGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(groups))
}

// UpdateGroup renames a group
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	gid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.groupService.UpdateGroup(ctx, gid, req.GName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "group updated"}))
}

// DeleteGroup deletes a group
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	gid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.groupService.DeleteGroup(ctx, gid); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "group deleted"}))
}

// AddMember adds an employee to a group
func (c *GroupController) AddMember(ctx *gin.Context) {
	gid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddGroupMemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.groupService.AddMember(ctx, gid, req.EmpID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MessageResponse{Message: "member added"}))
}

// RemoveMember removes an employee from a group
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	gid, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	empID, ok := parseIDParam(ctx, "empId")
	if !ok {
		return
	}

	if err := c.groupService.RemoveMember(ctx, gid, empID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "member removed"}))
}
