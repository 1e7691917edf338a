package models

import "time"

// Group is a named collection of employees.
type Group struct {
	GID       int64     `json:"gid"`
	GName     string    `json:"gname"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMembership links an employee to a group.
type GroupMembership struct {
	EmpID int64 `json:"emp_id"`
	GID   int64 `json:"gid"`
}
