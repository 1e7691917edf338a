package models

// Read models backing the related-contacts engine. Each resolver gets the
// exact flattened shape it needs instead of a generic association graph.

// FacultyContext flattens facultyMember -> department -> faculty for the
// current employee.
type FacultyContext struct {
	DID   int64
	DName string
	FID   int64
	FName string
}

// ESPWithPost is one of the current employee's assignments joined to its
// post, in assignment table order.
type ESPWithPost struct {
	SID   int64
	PID   int64
	PName string
}

// EmployeeProfile is the single eager load behind classification dispatch.
// Faculty and NonFaculty are mutually exclusive; both nil means the
// employee is unclassified and has no computed colleagues.
type EmployeeProfile struct {
	EmpID      int64
	FullName   string
	Faculty    *FacultyContext
	NonFaculty *NonFacultyMember
	ESPs       []ESPWithPost
}

// Colleague is a directory entry for another employee.
type Colleague struct {
	EmpID int64  `json:"emp_id"`
	Name  string `json:"name"`
}

// FacultyColleague carries the department grouping key alongside the entry.
type FacultyColleague struct {
	EmpID int64
	Name  string
	DID   int64
	DName string
}
