package models

// User is an account holder addressed by phone number. Employees link to a
// user row for their display name; plain users only browse the directory.
type User struct {
	UID      int64  `json:"uid"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Password string `json:"-"`
}
