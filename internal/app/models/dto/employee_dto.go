package dto

import "github.com/milad/unitel/internal/app/models"

// CreateEmployeeRequest promotes an existing user to an employee. A fresh
// contactable identity is allocated alongside the employee row.
type CreateEmployeeRequest struct {
	UID          int64  `json:"uid" binding:"required,min=1"`
	Phone        string `json:"phone" binding:"required,max=20"`
	NationalCode string `json:"national_code" binding:"required,max=50"`
	PersonelNo   string `json:"personel_no" binding:"required,max=255"`
}

// SetFacultyMemberRequest classifies an employee as faculty staff.
type SetFacultyMemberRequest struct {
	DID int64 `json:"did" binding:"required,min=1"`
}

// SetNonFacultyMemberRequest classifies an employee as non-faculty staff.
type SetNonFacultyMemberRequest struct {
	Workarea *string `json:"workarea" binding:"omitempty,max=255"`
}

// EmployeeResponse is an employee with its user and classification rows.
type EmployeeResponse struct {
	models.Employee
	FullName         string                   `json:"full_name"`
	FacultyMember    *models.FacultyMember    `json:"faculty_member,omitempty"`
	NonFacultyMember *models.NonFacultyMember `json:"non_faculty_member,omitempty"`
	ESPs             []models.ESP             `json:"esps,omitempty"`
}
