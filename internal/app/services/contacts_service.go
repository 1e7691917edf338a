package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/milad/unitel/internal/app/models"
	"github.com/milad/unitel/internal/app/models/dto"
	"github.com/milad/unitel/internal/pkg/apperrors"
)

// recentLimit is the snapshot size served to plain user-role principals.
const recentLimit = 5

// ContactDirectory is the read-side view of the store the aggregation
// engine traverses. repositories.ContactRepository is the production
// implementation.
type ContactDirectory interface {
	GetEmployeeProfile(ctx context.Context, empID int64) (*models.EmployeeProfile, error)
	ListFacultyColleagues(ctx context.Context, fid, excludeEmpID int64) ([]models.FacultyColleague, error)
	ListFacultyPosts(ctx context.Context, fid int64) ([]dto.PostEntry, error)
	ListFacultySpaces(ctx context.Context, fid int64) ([]dto.SpaceEntry, error)
	ListWorkAreaColleagues(ctx context.Context, workarea string, excludeEmpID int64) ([]models.Colleague, error)
	ListPostColleagues(ctx context.Context, postIDs []int64, excludeEmpID int64) ([]models.Colleague, error)
	ListRecentEmployees(ctx context.Context, limit int) ([]models.Colleague, error)
	ListRecentPosts(ctx context.Context, limit int) ([]dto.PostEntry, error)
	ListRecentSpaces(ctx context.Context, limit int) ([]dto.SpaceEntry, error)
}

// ContactsService defines the related-contacts aggregation operations
type ContactsService interface {
	GetRelatedContacts(ctx context.Context, principal *models.Principal) (*dto.RelatedContactsResponse, error)
}

// contactsServiceImpl implements the ContactsService interface
type contactsServiceImpl struct {
	directory ContactDirectory
	// strictWorkarea keeps the legacy short-circuit: a non-faculty employee
	// without a work area gets no related contacts at all, post colleagues
	// included.
	strictWorkarea bool
}

// NewContactsService creates a new contacts service instance
func NewContactsService(directory ContactDirectory, strictWorkarea bool) ContactsService {
	return &contactsServiceImpl{
		directory:      directory,
		strictWorkarea: strictWorkarea,
	}
}

// employmentClass is an employee's classification, computed once from the
// two optional association rows. Faculty wins if both rows exist.
type employmentClass int

const (
	classUnclassified employmentClass = iota
	classFaculty
	classNonFaculty
)

func classify(profile *models.EmployeeProfile) employmentClass {
	switch {
	case profile.Faculty != nil:
		return classFaculty
	case profile.NonFaculty != nil:
		return classNonFaculty
	default:
		return classUnclassified
	}
}

// GetRelatedContacts dispatches on the principal's role and classification
// and returns the titled contact blocks for it. The whole computation is
// read-only and fails as a unit; no partial block list is ever returned
// alongside an error.
func (s *contactsServiceImpl) GetRelatedContacts(ctx context.Context, principal *models.Principal) (*dto.RelatedContactsResponse, error) {
	if principal == nil {
		return nil, fmt.Errorf("%w: principal is nil", apperrors.ErrValidationFailed)
	}

	var (
		blocks []dto.ContactBlock
		err    error
	)

	switch principal.Role {
	case models.RoleEmployee:
		if principal.EmpID == nil {
			return nil, apperrors.ErrEmployeeNotFound
		}
		blocks, err = s.resolveEmployee(ctx, *principal.EmpID)
	case models.RoleUser:
		blocks, err = s.resolveGenericUser(ctx)
	default:
		return nil, apperrors.ErrInvalidRole
	}
	if err != nil {
		return nil, err
	}

	return &dto.RelatedContactsResponse{
		Success: true,
		Role:    principal.Role,
		Data:    blocks,
	}, nil
}

// resolveEmployee loads the employee's classification context in one eager
// fetch and dispatches to the matching resolver. An unclassified employee
// gets an empty block list, which is a valid result rather than an error.
func (s *contactsServiceImpl) resolveEmployee(ctx context.Context, empID int64) ([]dto.ContactBlock, error) {
	profile, err := s.directory.GetEmployeeProfile(ctx, empID)
	if err != nil {
		return nil, err
	}

	switch classify(profile) {
	case classFaculty:
		return s.resolveFacultyMember(ctx, profile)
	case classNonFaculty:
		return s.resolveNonFacultyMember(ctx, profile)
	default:
		return []dto.ContactBlock{}, nil
	}
}

// resolveFacultyMember assembles the faculty-wide colleague graph: all
// colleagues in the same faculty grouped by department, plus the posts and
// spaces occupied by at least one member of the faculty. The three reads
// are independent once the faculty id is known and run concurrently.
func (s *contactsServiceImpl) resolveFacultyMember(ctx context.Context, profile *models.EmployeeProfile) ([]dto.ContactBlock, error) {
	faculty := profile.Faculty

	var (
		colleagues []models.FacultyColleague
		posts      []dto.PostEntry
		spaces     []dto.SpaceEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		colleagues, err = s.directory.ListFacultyColleagues(gctx, faculty.FID, profile.EmpID)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.directory.ListFacultyPosts(gctx, faculty.FID)
		return err
	})
	g.Go(func() error {
		var err error
		spaces, err = s.directory.ListFacultySpaces(gctx, faculty.FID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	departments := dto.NewDepartmentGroupList()
	for _, c := range colleagues {
		departments.Append(c.DID, "دپارتمان-"+c.DName, models.Colleague{EmpID: c.EmpID, Name: c.Name})
	}

	// The caller's own department always closes the key order, populated or
	// not.
	if _, ok := departments.Get(faculty.DID); ok {
		departments.MoveToEnd(faculty.DID)
	} else {
		departments.Put(faculty.DID, &dto.DepartmentGroup{
			Title:     "دپارتمان-" + faculty.DName,
			Employees: []models.Colleague{},
		})
	}

	blocks := []dto.ContactBlock{{
		Title:       "دانشکده-" + faculty.FName,
		Departments: departments,
	}}

	if len(posts) > 0 {
		blocks = append(blocks, dto.ContactBlock{
			Title: "پست ها-" + faculty.FName,
			Posts: posts,
		})
	}
	if len(spaces) > 0 {
		blocks = append(blocks, dto.ContactBlock{
			Title:  "فضاها-" + faculty.FName,
			Spaces: spaces,
		})
	}

	return blocks, nil
}

// resolveNonFacultyMember assembles colleagues sharing the same work area
// and colleagues holding any of the same posts, in that order.
func (s *contactsServiceImpl) resolveNonFacultyMember(ctx context.Context, profile *models.EmployeeProfile) ([]dto.ContactBlock, error) {
	workarea := profile.NonFaculty.Workarea
	if workarea == nil && s.strictWorkarea {
		return []dto.ContactBlock{}, nil
	}

	blocks := []dto.ContactBlock{}

	if workarea != nil {
		colleagues, err := s.directory.ListWorkAreaColleagues(ctx, *workarea, profile.EmpID)
		if err != nil {
			return nil, err
		}
		if len(colleagues) > 0 {
			blocks = append(blocks, dto.ContactBlock{
				Title:      "همکار ها-" + *workarea,
				Colleagues: colleagues,
			})
		}
	}

	if len(profile.ESPs) > 0 {
		postIDs := make([]int64, 0, len(profile.ESPs))
		for _, esp := range profile.ESPs {
			postIDs = append(postIDs, esp.PID)
		}

		colleagues, err := s.directory.ListPostColleagues(ctx, postIDs, profile.EmpID)
		if err != nil {
			return nil, err
		}
		if len(colleagues) > 0 {
			// The block title names only the first assignment's post, even
			// for employees holding several.
			blocks = append(blocks, dto.ContactBlock{
				Title:      "هم پست-" + profile.ESPs[0].PName,
				Colleagues: colleagues,
			})
		}
	}

	return blocks, nil
}

// resolveGenericUser serves non-employee users a snapshot of the newest
// employees, posts and spaces. Identity order stands in for recency since
// the tables carry no creation timestamp.
func (s *contactsServiceImpl) resolveGenericUser(ctx context.Context) ([]dto.ContactBlock, error) {
	var (
		employees []models.Colleague
		posts     []dto.PostEntry
		spaces    []dto.SpaceEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.directory.ListRecentEmployees(gctx, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.directory.ListRecentPosts(gctx, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		spaces, err = s.directory.ListRecentSpaces(gctx, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	blocks := []dto.ContactBlock{}
	if len(employees) > 0 {
		blocks = append(blocks, dto.ContactBlock{Title: "کارمندان", Employees: employees})
	}
	if len(posts) > 0 {
		blocks = append(blocks, dto.ContactBlock{Title: "پست", Posts: posts})
	}
	if len(spaces) > 0 {
		blocks = append(blocks, dto.ContactBlock{Title: "فضا", Spaces: spaces})
	}

	return blocks, nil
}
