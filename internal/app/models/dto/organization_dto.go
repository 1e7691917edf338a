package dto

// CreateFacultyRequest creates a faculty.
type CreateFacultyRequest struct {
	FName string `json:"fname" binding:"required,max=255"`
}

// UpdateFacultyRequest renames a faculty.
type UpdateFacultyRequest struct {
	FName string `json:"fname" binding:"required,max=255"`
}

// CreateDepartmentRequest creates a department under a faculty.
type CreateDepartmentRequest struct {
	DName string `json:"dname" binding:"required,max=255"`
	FID   int64  `json:"fid" binding:"required,min=1"`
}

// UpdateDepartmentRequest updates a department's name or faculty.
type UpdateDepartmentRequest struct {
	DName string `json:"dname" binding:"required,max=255"`
	FID   int64  `json:"fid" binding:"required,min=1"`
}
