package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// fakeDirectory is an in-memory ContactDirectory. Each method returns the
// configured slice and records the arguments it was called with.
type fakeDirectory struct {
	profile            *models.EmployeeProfile
	profileErr         error
	facultyColleagues  []models.FacultyColleague
	facultyPosts       []dto.PostEntry
	facultySpaces      []dto.SpaceEntry
	workAreaColleagues []models.Colleague
	postColleagues     []models.Colleague
	recentEmployees    []models.Colleague
	recentPosts        []dto.PostEntry
	recentSpaces       []dto.SpaceEntry
	listErr            error

	gotWorkarea      string
	gotPostIDs       []int64
	gotExcludeEmpID  int64
	workAreaCalls    int
	postCalls        int
	recentLimitsSeen []int
}

func (f *fakeDirectory) GetEmployeeProfile(_ context.Context, empID int64) (*models.EmployeeProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeDirectory) ListFacultyColleagues(_ context.Context, fid, excludeEmpID int64) ([]models.FacultyColleague, error) {
	f.gotExcludeEmpID = excludeEmpID
	return f.facultyColleagues, f.listErr
}

func (f *fakeDirectory) ListFacultyPosts(_ context.Context, fid int64) ([]dto.PostEntry, error) {
	return f.facultyPosts, f.listErr
}

func (f *fakeDirectory) ListFacultySpaces(_ context.Context, fid int64) ([]dto.SpaceEntry, error) {
	return f.facultySpaces, f.listErr
}

func (f *fakeDirectory) ListWorkAreaColleagues(_ context.Context, workarea string, excludeEmpID int64) ([]models.Colleague, error) {
	f.workAreaCalls++
	f.gotWorkarea = workarea
	f.gotExcludeEmpID = excludeEmpID
	return f.workAreaColleagues, f.listErr
}

func (f *fakeDirectory) ListPostColleagues(_ context.Context, postIDs []int64, excludeEmpID int64) ([]models.Colleague, error) {
	f.postCalls++
	f.gotPostIDs = postIDs
	f.gotExcludeEmpID = excludeEmpID
	return f.postColleagues, f.listErr
}

func (f *fakeDirectory) ListRecentEmployees(_ context.Context, limit int) ([]models.Colleague, error) {
	f.recentLimitsSeen = append(f.recentLimitsSeen, limit)
	return f.recentEmployees, f.listErr
}

func (f *fakeDirectory) ListRecentPosts(_ context.Context, limit int) ([]dto.PostEntry, error) {
	f.recentLimitsSeen = append(f.recentLimitsSeen, limit)
	return f.recentPosts, f.listErr
}

func (f *fakeDirectory) ListRecentSpaces(_ context.Context, limit int) ([]dto.SpaceEntry, error) {
	f.recentLimitsSeen = append(f.recentLimitsSeen, limit)
	return f.recentSpaces, f.listErr
}

func strPtr(s string) *string { return &s }
func idPtr(v int64) *int64    { return &v }

func employeePrincipal(empID int64) *models.Principal {
	return &models.Principal{UID: 10, Phone: "09120000000", Role: models.RoleEmployee, EmpID: idPtr(empID)}
}

func facultyProfile() *models.EmployeeProfile {
	return &models.EmployeeProfile{
		EmpID:    1,
		FullName: "Sara",
		Faculty: &models.FacultyContext{
			DID:   100,
			DName: "Software",
			FID:   7,
			FName: "Engineering",
		},
	}
}

func TestGetRelatedContactsRejectsNilPrincipal(t *testing.T) {
	svc := NewContactsService(&fakeDirectory{}, true)

	_, err := svc.GetRelatedContacts(context.Background(), nil)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetRelatedContactsRejectsUnknownRole(t *testing.T) {
	svc := NewContactsService(&fakeDirectory{}, true)

	_, err := svc.GetRelatedContacts(context.Background(), &models.Principal{Role: "admin"})
	require.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestGetRelatedContactsEmployeeWithoutEmpID(t *testing.T) {
	svc := NewContactsService(&fakeDirectory{}, true)

	principal := &models.Principal{UID: 1, Phone: "0912", Role: models.RoleEmployee}
	_, err := svc.GetRelatedContacts(context.Background(), principal)
	require.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestGetRelatedContactsUnclassifiedEmployee(t *testing.T) {
	dir := &fakeDirectory{profile: &models.EmployeeProfile{EmpID: 1, FullName: "Sara"}}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.RoleEmployee, result.Role)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)
}

func TestFacultyMemberGroupsColleaguesByDepartment(t *testing.T) {
	dir := &fakeDirectory{
		profile: facultyProfile(),
		facultyColleagues: []models.FacultyColleague{
			{EmpID: 2, Name: "Ali", DID: 200, DName: "Hardware"},
			{EmpID: 3, Name: "Nika", DID: 100, DName: "Software"},
			{EmpID: 4, Name: "Reza", DID: 200, DName: "Hardware"},
		},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	block := result.Data[0]
	assert.Equal(t, "دانشکده-Engineering", block.Title)
	require.NotNil(t, block.Departments)

	// Own department moves to the end of the key order.
	assert.Equal(t, []int64{200, 100}, block.Departments.Keys())

	hardware, ok := block.Departments.Get(200)
	require.True(t, ok)
	assert.Equal(t, "دپارتمان-Hardware", hardware.Title)
	assert.Len(t, hardware.Employees, 2)

	software, ok := block.Departments.Get(100)
	require.True(t, ok)
	assert.Equal(t, []models.Colleague{{EmpID: 3, Name: "Nika"}}, software.Employees)

	// The caller never appears among their own colleagues.
	assert.Equal(t, int64(1), dir.gotExcludeEmpID)
}

func TestFacultyMemberOwnDepartmentAlwaysPresent(t *testing.T) {
	dir := &fakeDirectory{
		profile: facultyProfile(),
		facultyColleagues: []models.FacultyColleague{
			{EmpID: 2, Name: "Ali", DID: 200, DName: "Hardware"},
		},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	departments := result.Data[0].Departments
	assert.Equal(t, []int64{200, 100}, departments.Keys())

	own, ok := departments.Get(100)
	require.True(t, ok)
	assert.Equal(t, "دپارتمان-Software", own.Title)
	assert.Empty(t, own.Employees)
	assert.NotNil(t, own.Employees)
}

func TestFacultyMemberPostAndSpaceBlocks(t *testing.T) {
	dir := &fakeDirectory{
		profile:       facultyProfile(),
		facultyPosts:  []dto.PostEntry{{PID: 9, PName: "Dean"}},
		facultySpaces: []dto.SpaceEntry{{SID: 4, SName: "Lab", Room: strPtr("B12")}},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 3)

	assert.Equal(t, "دانشکده-Engineering", result.Data[0].Title)
	assert.Equal(t, "پست ها-Engineering", result.Data[1].Title)
	assert.Equal(t, result.Data[1].Posts, dir.facultyPosts)
	assert.Equal(t, "فضاها-Engineering", result.Data[2].Title)
	assert.Equal(t, result.Data[2].Spaces, dir.facultySpaces)
}

func TestFacultyMemberSkipsEmptyPostAndSpaceBlocks(t *testing.T) {
	dir := &fakeDirectory{profile: facultyProfile()}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "دانشکده-Engineering", result.Data[0].Title)
}

func TestFacultyMemberDepartmentKeyOrderInJSON(t *testing.T) {
	dir := &fakeDirectory{
		profile: facultyProfile(),
		facultyColleagues: []models.FacultyColleague{
			{EmpID: 2, Name: "Ali", DID: 200, DName: "Hardware"},
			{EmpID: 3, Name: "Nika", DID: 300, DName: "Networks"},
			{EmpID: 4, Name: "Reza", DID: 100, DName: "Software"},
		},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	payload := string(raw)
	// Own department (100) serializes after the other two.
	assert.Less(t, strings.Index(payload, `"200"`), strings.Index(payload, `"300"`))
	assert.Less(t, strings.Index(payload, `"300"`), strings.Index(payload, `"100"`))
}

func TestNonFacultyWithoutWorkareaStrict(t *testing.T) {
	dir := &fakeDirectory{
		profile: &models.EmployeeProfile{
			EmpID:      1,
			NonFaculty: &models.NonFacultyMember{EmpID: 1},
			ESPs:       []models.ESPWithPost{{SID: 2, PID: 5, PName: "Operator"}},
		},
		postColleagues: []models.Colleague{{EmpID: 8, Name: "Omid"}},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.NotNil(t, result.Data)

	// Strict mode skips the post-colleague lookup entirely.
	assert.Zero(t, dir.postCalls)
	assert.Zero(t, dir.workAreaCalls)
}

func TestNonFacultyWithoutWorkareaLenient(t *testing.T) {
	dir := &fakeDirectory{
		profile: &models.EmployeeProfile{
			EmpID:      1,
			NonFaculty: &models.NonFacultyMember{EmpID: 1},
			ESPs:       []models.ESPWithPost{{SID: 2, PID: 5, PName: "Operator"}},
		},
		postColleagues: []models.Colleague{{EmpID: 8, Name: "Omid"}},
	}
	svc := NewContactsService(dir, false)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "هم پست-Operator", result.Data[0].Title)
	assert.Equal(t, dir.postColleagues, result.Data[0].Colleagues)
	assert.Zero(t, dir.workAreaCalls)
}

func TestNonFacultyWorkareaBlock(t *testing.T) {
	dir := &fakeDirectory{
		profile: &models.EmployeeProfile{
			EmpID:      1,
			NonFaculty: &models.NonFacultyMember{EmpID: 1, Workarea: strPtr("Registrar")},
		},
		workAreaColleagues: []models.Colleague{{EmpID: 5, Name: "Mina"}},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "همکار ها-Registrar", result.Data[0].Title)
	assert.Equal(t, dir.workAreaColleagues, result.Data[0].Colleagues)
	assert.Equal(t, "Registrar", dir.gotWorkarea)
}

func TestNonFacultyEmptyWorkareaBlockIsOmitted(t *testing.T) {
	dir := &fakeDirectory{
		profile: &models.EmployeeProfile{
			EmpID:      1,
			NonFaculty: &models.NonFacultyMember{EmpID: 1, Workarea: strPtr("Registrar")},
		},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 1, dir.workAreaCalls)
}

func TestNonFacultyPostBlockUsesFirstAssignmentTitle(t *testing.T) {
	dir := &fakeDirectory{
		profile: &models.EmployeeProfile{
			EmpID:      1,
			NonFaculty: &models.NonFacultyMember{EmpID: 1, Workarea: strPtr("IT")},
			ESPs: []models.ESPWithPost{
				{SID: 1, PID: 5, PName: "Operator"},
				{SID: 2, PID: 5, PName: "Operator"},
				{SID: 3, PID: 9, PName: "Supervisor"},
			},
		},
		postColleagues: []models.Colleague{{EmpID: 8, Name: "Omid"}},
	}
	svc := NewContactsService(dir, true)

	result, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "هم پست-Operator", result.Data[0].Title)

	// Post ids are forwarded assignment by assignment, duplicates included.
	assert.Equal(t, []int64{5, 5, 9}, dir.gotPostIDs)
}

func TestGenericUserSnapshot(t *testing.T) {
	dir := &fakeDirectory{
		recentEmployees: []models.Colleague{{EmpID: 9, Name: "New"}},
		recentPosts:     []dto.PostEntry{{PID: 3, PName: "Clerk"}},
		recentSpaces:    []dto.SpaceEntry{{SID: 2, SName: "Archive"}},
	}
	svc := NewContactsService(dir, true)

	principal := &models.Principal{UID: 4, Phone: "0912", Role: models.RoleUser}
	result, err := svc.GetRelatedContacts(context.Background(), principal)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, result.Role)
	require.Len(t, result.Data, 3)

	assert.Equal(t, "کارمندان", result.Data[0].Title)
	assert.Equal(t, "پست", result.Data[1].Title)
	assert.Equal(t, "فضا", result.Data[2].Title)

	for _, limit := range dir.recentLimitsSeen {
		assert.Equal(t, recentLimit, limit)
	}
}

func TestGenericUserSkipsEmptyBlocks(t *testing.T) {
	dir := &fakeDirectory{
		recentPosts: []dto.PostEntry{{PID: 3, PName: "Clerk"}},
	}
	svc := NewContactsService(dir, true)

	principal := &models.Principal{UID: 4, Phone: "0912", Role: models.RoleUser}
	result, err := svc.GetRelatedContacts(context.Background(), principal)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "پست", result.Data[0].Title)
}

func TestGetRelatedContactsPropagatesDirectoryErrors(t *testing.T) {
	boom := errors.New("connection reset")

	dir := &fakeDirectory{profileErr: boom}
	svc := NewContactsService(dir, true)
	_, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.ErrorIs(t, err, boom)

	dir = &fakeDirectory{profile: facultyProfile(), listErr: boom}
	svc = NewContactsService(dir, true)
	_, err = svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.ErrorIs(t, err, boom)
}

func TestGetRelatedContactsIsIdempotent(t *testing.T) {
	dir := &fakeDirectory{
		profile: facultyProfile(),
		facultyColleagues: []models.FacultyColleague{
			{EmpID: 2, Name: "Ali", DID: 200, DName: "Hardware"},
			{EmpID: 3, Name: "Nika", DID: 100, DName: "Software"},
		},
	}
	svc := NewContactsService(dir, true)

	first, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)
	second, err := svc.GetRelatedContacts(context.Background(), employeePrincipal(1))
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}
