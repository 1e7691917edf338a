package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milad/unitel/internal/app/models"
)

func TestDepartmentGroupListAppendCreatesGroupOnce(t *testing.T) {
	list := NewDepartmentGroupList()

	list.Append(1, "دپارتمان-Software", models.Colleague{EmpID: 2, Name: "Ali"})
	list.Append(1, "ignored on second append", models.Colleague{EmpID: 3, Name: "Nika"})

	assert.Equal(t, 1, list.Len())
	group, ok := list.Get(1)
	require.True(t, ok)
	assert.Equal(t, "دپارتمان-Software", group.Title)
	assert.Len(t, group.Employees, 2)
}

func TestDepartmentGroupListKeysFollowInsertionOrder(t *testing.T) {
	list := NewDepartmentGroupList()
	list.Append(5, "e", models.Colleague{EmpID: 1})
	list.Append(2, "b", models.Colleague{EmpID: 2})
	list.Append(9, "i", models.Colleague{EmpID: 3})
	list.Append(2, "b", models.Colleague{EmpID: 4})

	assert.Equal(t, []int64{5, 2, 9}, list.Keys())
}

func TestDepartmentGroupListMoveToEnd(t *testing.T) {
	list := NewDepartmentGroupList()
	list.Put(1, &DepartmentGroup{Title: "a"})
	list.Put(2, &DepartmentGroup{Title: "b"})
	list.Put(3, &DepartmentGroup{Title: "c"})

	list.MoveToEnd(1)
	assert.Equal(t, []int64{2, 3, 1}, list.Keys())

	// Unknown keys leave the order untouched.
	list.MoveToEnd(42)
	assert.Equal(t, []int64{2, 3, 1}, list.Keys())

	// Moving the tail is a no-op.
	list.MoveToEnd(1)
	assert.Equal(t, []int64{2, 3, 1}, list.Keys())
}

func TestDepartmentGroupListMarshalPreservesOrder(t *testing.T) {
	list := NewDepartmentGroupList()
	list.Append(10, "دپارتمان-Hardware", models.Colleague{EmpID: 2, Name: "Ali"})
	list.Put(7, &DepartmentGroup{Title: "دپارتمان-Software", Employees: []models.Colleague{}})
	list.MoveToEnd(10)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"7": {"title": "دپارتمان-Software", "employees": []},
		"10": {"title": "دپارتمان-Hardware", "employees": [{"emp_id": 2, "name": "Ali"}]}
	}`, string(raw))

	// JSONEq ignores key order, so pin it explicitly.
	assert.Regexp(t, `^\{"7":.*"10":`, string(raw))
}

func TestDepartmentGroupListMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(NewDepartmentGroupList())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestDepartmentGroupListRoundTripsThroughContactBlock(t *testing.T) {
	list := NewDepartmentGroupList()
	list.Append(1, "دپارتمان-Software", models.Colleague{EmpID: 2, Name: "Ali"})

	block := ContactBlock{Title: "دانشکده-Engineering", Departments: list}
	raw, err := json.Marshal(block)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "دانشکده-Engineering", decoded["title"])
	assert.Contains(t, decoded, "departments")
	assert.NotContains(t, decoded, "colleagues")
	assert.NotContains(t, decoded, "posts")
}
