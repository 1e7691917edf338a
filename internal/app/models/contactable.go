package models

// Contactable rows give employees, posts and spaces a shared identity space
// so contact infos and favorites can point at any of them through one key.
type Contactable struct {
	CID int64 `json:"cid"`
}

// Post is an organizational role addressable independently of any employee.
// Its primary key is the contactable id.
type Post struct {
	CID         int64   `json:"cid"`
	PName       string  `json:"pname"`
	Description *string `json:"description"`
}

// Space is a physical location (office, lab, hall) with its own contact
// identity.
type Space struct {
	CID   int64   `json:"cid"`
	SName string  `json:"sname"`
	Room  *string `json:"room"`
}

// ESP assigns an employee to a (space, post) pair. One employee may hold
// many assignments.
type ESP struct {
	EmpID int64 `json:"emp_id"`
	SID   int64 `json:"sid"`
	PID   int64 `json:"pid"`
}

// ContactInfo is a reachable phone line attached to a contactable.
type ContactInfo struct {
	PhoneNumber string  `json:"phone_number"`
	Range       *string `json:"range"`
	Subrange    *string `json:"subrange"`
	Forward     *string `json:"forward"`
	Extension   *string `json:"extension"`
	CID         int64   `json:"cid"`
}
