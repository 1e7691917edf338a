package services

import (
	"time"

	"github.com/milad/unitel/internal/app/repositories"
	"github.com/milad/unitel/internal/config"
	"github.com/milad/unitel/internal/pkg/auth"
	"github.com/milad/unitel/internal/pkg/sms"
)

// Services acts as a container for all application services
type Services struct {
	AuthService        AuthService
	UserService        UserService
	FacultyService     FacultyService
	DepartmentService  DepartmentService
	EmployeeService    EmployeeService
	PostService        PostService
	SpaceService       SpaceService
	ESPService         ESPService
	ContactInfoService ContactInfoService
	GroupService       GroupService
	FavoriteService    FavoriteService
	ContactsService    ContactsService
}

// NewServices wires all services against the repository container
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	smsService sms.Service,
	cfg *config.Config,
) *Services {
	otpLifetime := time.Duration(cfg.OTP.ExpirationMinutes) * time.Minute

	return &Services{
		AuthService: NewAuthService(
			repos.OTPRepository,
			repos.UserRepository,
			repos.EmployeeRepository,
			jwtService,
			smsService,
			otpLifetime,
		),
		UserService:       NewUserService(repos.UserRepository),
		FacultyService:    NewFacultyService(repos.FacultyRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.FacultyRepository),
		EmployeeService: NewEmployeeService(
			repos.EmployeeRepository,
			repos.UserRepository,
			repos.DepartmentRepository,
			repos.ESPRepository,
			repos.ContactRepository,
		),
		PostService:  NewPostService(repos.PostRepository),
		SpaceService: NewSpaceService(repos.SpaceRepository),
		ESPService: NewESPService(
			repos.ESPRepository,
			repos.EmployeeRepository,
			repos.SpaceRepository,
			repos.PostRepository,
		),
		ContactInfoService: NewContactInfoService(repos.ContactInfoRepository),
		GroupService:       NewGroupService(repos.GroupRepository, repos.EmployeeRepository),
		FavoriteService:    NewFavoriteService(repos.FavoriteRepository),
		ContactsService:    NewContactsService(repos.ContactRepository, cfg.Contacts.StrictWorkarea),
	}
}
