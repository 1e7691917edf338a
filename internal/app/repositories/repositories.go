package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories acts as a container for all repositories
type Repositories struct {
	UserRepository        *UserRepository
	OTPRepository         *OTPRepository
	FacultyRepository     *FacultyRepository
	DepartmentRepository  *DepartmentRepository
	EmployeeRepository    *EmployeeRepository
	PostRepository        *PostRepository
	SpaceRepository       *SpaceRepository
	ESPRepository         *ESPRepository
	ContactInfoRepository *ContactInfoRepository
	GroupRepository       *GroupRepository
	FavoriteRepository    *FavoriteRepository
	ContactRepository     *ContactRepository
}

// NewRepositories creates a new Repositories instance with all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		OTPRepository:         NewOTPRepository(db),
		FacultyRepository:     NewFacultyRepository(db),
		DepartmentRepository:  NewDepartmentRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
		PostRepository:        NewPostRepository(db),
		SpaceRepository:       NewSpaceRepository(db),
		ESPRepository:         NewESPRepository(db),
		ContactInfoRepository: NewContactInfoRepository(db),
		GroupRepository:       NewGroupRepository(db),
		FavoriteRepository:    NewFavoriteRepository(db),
		ContactRepository:     NewContactRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503" // 23503 is foreign_key_violation
}
