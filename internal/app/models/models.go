package models

// Role values carried in the JWT "role" claim. The aggregation engine
// rejects anything outside this set.
const (
	RoleEmployee = "employee"
	RoleUser     = "user"
)

// Principal is the authenticated caller, resolved from the bearer token
// once per request. EmpID is set only for employee-role tokens.
type Principal struct {
	UID   int64
	Phone string
	Role  string
	EmpID *int64
}
