package dto

import "github.com/milad/unitel/internal/app/models"

// CreateGroupRequest creates an employee group.
type CreateGroupRequest struct {
	GName string `json:"gname" binding:"required,max=255"`
}

// UpdateGroupRequest renames a group.
type UpdateGroupRequest struct {
	GName string `json:"gname" binding:"required,max=255"`
}

// AddGroupMemberRequest adds an employee to a group.
type AddGroupMemberRequest struct {
	EmpID int64 `json:"emp_id" binding:"required,min=1"`
}

// GroupResponse is a group with its member entries.
type GroupResponse struct {
	models.Group
	Members []models.Colleague `json:"members,omitempty"`
}

// CreateFavoriteCategoryRequest creates a favorite bucket for a user.
type CreateFavoriteCategoryRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// AddFavoriteRequest pins a contactable into a category.
type AddFavoriteRequest struct {
	CID int64 `json:"cid" binding:"required,min=1"`
}
