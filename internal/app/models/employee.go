package models

// Employee is a staff record. Every employee owns a contactable identity
// (CID) and references exactly one user row for its display name and phone.
type Employee struct {
	EmpID        int64  `json:"emp_id"`
	CID          int64  `json:"cid"`
	UID          int64  `json:"uid"`
	Phone        string `json:"phone"`
	NationalCode string `json:"national_code"`
	PersonelNo   string `json:"personel_no"`
}

// FacultyMember classifies an employee as academic staff in one department.
type FacultyMember struct {
	EmpID int64 `json:"emp_id"`
	DID   int64 `json:"did"`
}

// NonFacultyMember classifies an employee as administrative staff.
// Workarea is a free-text grouping label and may be absent.
type NonFacultyMember struct {
	EmpID    int64   `json:"emp_id"`
	Workarea *string `json:"workarea"`
}
