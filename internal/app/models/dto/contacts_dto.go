package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/milad/unitel/internal/app/models"
)

// RelatedContactsResponse is the payload of GET /multi-model/related-contacts.
type RelatedContactsResponse struct {
	Success bool           `json:"success"`
	Role    string         `json:"role"`
	Data    []ContactBlock `json:"data"`
}

// ContactBlock is one titled element of the related-contacts list. Exactly
// one of the collection fields is populated, depending on the block kind.
type ContactBlock struct {
	Title       string               `json:"title"`
	Departments *DepartmentGroupList `json:"departments,omitempty"`
	Employees   []models.Colleague   `json:"employees,omitempty"`
	Colleagues  []models.Colleague   `json:"colleagues,omitempty"`
	Posts       []PostEntry          `json:"posts,omitempty"`
	Spaces      []SpaceEntry         `json:"spaces,omitempty"`
}

// PostEntry is a post as listed in a contact block.
type PostEntry struct {
	PID         int64   `json:"pid"`
	PName       string  `json:"pname"`
	Description *string `json:"description"`
}

// SpaceEntry is a space as listed in a contact block.
type SpaceEntry struct {
	SID   int64   `json:"sid"`
	SName string  `json:"sname"`
	Room  *string `json:"room"`
}

// DepartmentGroup collects the colleagues of one department.
type DepartmentGroup struct {
	Title     string             `json:"title"`
	Employees []models.Colleague `json:"employees"`
}

// DepartmentGroupList maps department ids to groups while remembering
// insertion order. It marshals to a JSON object whose keys appear in that
// order, so "move to end" is an observable part of the contract rather than
// an accident of map iteration.
type DepartmentGroupList struct {
	order  []int64
	groups map[int64]*DepartmentGroup
}

// NewDepartmentGroupList returns an empty ordered group list.
func NewDepartmentGroupList() *DepartmentGroupList {
	return &DepartmentGroupList{groups: make(map[int64]*DepartmentGroup)}
}

// Len returns the number of groups.
func (l *DepartmentGroupList) Len() int {
	return len(l.order)
}

// Keys returns the department ids in insertion order.
func (l *DepartmentGroupList) Keys() []int64 {
	keys := make([]int64, len(l.order))
	copy(keys, l.order)
	return keys
}

// Get returns the group for a department id, if present.
func (l *DepartmentGroupList) Get(did int64) (*DepartmentGroup, bool) {
	g, ok := l.groups[did]
	return g, ok
}

// Put inserts a group under did, appending the key if it is new.
func (l *DepartmentGroupList) Put(did int64, group *DepartmentGroup) {
	if _, ok := l.groups[did]; !ok {
		l.order = append(l.order, did)
	}
	l.groups[did] = group
}

// Append adds a colleague under did, lazily creating the group with the
// given title on first encounter.
func (l *DepartmentGroupList) Append(did int64, title string, c models.Colleague) {
	g, ok := l.groups[did]
	if !ok {
		g = &DepartmentGroup{Title: title, Employees: []models.Colleague{}}
		l.Put(did, g)
	}
	g.Employees = append(g.Employees, c)
}

// MoveToEnd reorders an existing key to the last position, keeping its
// group untouched. Unknown keys are ignored.
func (l *DepartmentGroupList) MoveToEnd(did int64) {
	if _, ok := l.groups[did]; !ok {
		return
	}
	for i, key := range l.order {
		if key == did {
			l.order = append(l.order[:i], l.order[i+1:]...)
			l.order = append(l.order, did)
			return
		}
	}
}

// MarshalJSON emits the groups as an object keyed by department id in
// insertion order.
func (l *DepartmentGroupList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, did := range l.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatInt(did, 10)))
		buf.WriteByte(':')
		group, err := json.Marshal(l.groups[did])
		if err != nil {
			return nil, err
		}
		buf.Write(group)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
