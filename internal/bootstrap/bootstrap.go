package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/milad/unitel/internal/app/controllers"
	appRepos "github.com/milad/unitel/internal/app/repositories"
	appRoutes "github.com/milad/unitel/internal/app/routes"
	appServices "github.com/milad/unitel/internal/app/services"
	"github.com/milad/unitel/internal/config"
	"github.com/milad/unitel/internal/db"
	appMiddleware "github.com/milad/unitel/internal/middleware"
	pkgAuth "github.com/milad/unitel/internal/pkg/auth"
	"github.com/milad/unitel/internal/pkg/helpers"
	"github.com/milad/unitel/internal/pkg/logger"
	"github.com/milad/unitel/internal/pkg/sms"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	SMSService     sms.Service
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.SMSService = sms.NewPanelService(sms.PanelConfig{
		BaseURL:  cfg.SMS.BaseURL,
		Username: cfg.SMS.Username,
		Password: cfg.SMS.Password,
	}, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.SMSService, cfg)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.Services.AuthService),
		User:        appControllers.NewUserController(deps.Services.UserService),
		Faculty:     appControllers.NewFacultyController(deps.Services.FacultyService),
		Department:  appControllers.NewDepartmentController(deps.Services.DepartmentService),
		Employee:    appControllers.NewEmployeeController(deps.Services.EmployeeService),
		Post:        appControllers.NewPostController(deps.Services.PostService),
		Space:       appControllers.NewSpaceController(deps.Services.SpaceService),
		ESP:         appControllers.NewESPController(deps.Services.ESPService),
		ContactInfo: appControllers.NewContactInfoController(deps.Services.ContactInfoService),
		Group:       appControllers.NewGroupController(deps.Services.GroupService),
		Favorite:    appControllers.NewFavoriteController(deps.Services.FavoriteService),
		Contacts:    appControllers.NewContactsController(deps.Services.ContactsService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
