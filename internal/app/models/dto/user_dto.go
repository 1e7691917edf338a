package dto

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Phone    string `json:"phone" binding:"required,max=20"`
	FullName string `json:"full_name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse is the public projection of a user row.
type UserResponse struct {
	UID      int64  `json:"uid"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
}

// EditNameRequest updates the display name.
type EditNameRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
