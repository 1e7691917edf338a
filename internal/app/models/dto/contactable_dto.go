package dto

// CreatePostRequest creates a post together with its contactable identity.
type CreatePostRequest struct {
	PName       string  `json:"pname" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty"`
}

// UpdatePostRequest updates a post.
type UpdatePostRequest struct {
	PName       string  `json:"pname" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty"`
}

// CreateSpaceRequest creates a space together with its contactable identity.
type CreateSpaceRequest struct {
	SName string  `json:"sname" binding:"required,max=255"`
	Room  *string `json:"room" binding:"omitempty,max=255"`
}

// UpdateSpaceRequest updates a space.
type UpdateSpaceRequest struct {
	SName string  `json:"sname" binding:"required,max=255"`
	Room  *string `json:"room" binding:"omitempty,max=255"`
}

// CreateESPRequest assigns an employee to a (space, post) pair.
type CreateESPRequest struct {
	EmpID int64 `json:"emp_id" binding:"required,min=1"`
	SID   int64 `json:"sid" binding:"required,min=1"`
	PID   int64 `json:"pid" binding:"required,min=1"`
}

// CreateContactInfoRequest attaches a phone line to a contactable.
type CreateContactInfoRequest struct {
	PhoneNumber string  `json:"phone_number" binding:"required,max=20"`
	Range       *string `json:"range" binding:"omitempty,max=255"`
	Subrange    *string `json:"subrange" binding:"omitempty,max=255"`
	Forward     *string `json:"forward" binding:"omitempty,max=255"`
	Extension   *string `json:"extension" binding:"omitempty,max=50"`
	CID         int64   `json:"cid" binding:"required,min=1"`
}

// UpdateContactInfoRequest updates the routing fields of a phone line.
type UpdateContactInfoRequest struct {
	Range     *string `json:"range" binding:"omitempty,max=255"`
	Subrange  *string `json:"subrange" binding:"omitempty,max=255"`
	Forward   *string `json:"forward" binding:"omitempty,max=255"`
	Extension *string `json:"extension" binding:"omitempty,max=50"`
}
