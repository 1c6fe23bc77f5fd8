package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lansen/driveadmin/internal/app/controllers"
	appMigrations "github.com/lansen/driveadmin/internal/app/migrations"
	appRepos "github.com/lansen/driveadmin/internal/app/repositories"
	appRoutes "github.com/lansen/driveadmin/internal/app/routes"
	appServices "github.com/lansen/driveadmin/internal/app/services"
	"github.com/lansen/driveadmin/internal/config"
	"github.com/lansen/driveadmin/internal/db"
	appMiddleware "github.com/lansen/driveadmin/internal/middleware"
	pkgAuth "github.com/lansen/driveadmin/internal/pkg/auth"
	"github.com/lansen/driveadmin/internal/pkg/logger"
	"github.com/lansen/driveadmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       appServices.UserService
	CarService        appServices.CarService
	SubjectService    appServices.SubjectService
	AuthService       appServices.AuthService
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	CarController     *appControllers.CarController
	SubjectController *appControllers.SubjectController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	SessionService    *pkgAuth.SessionService
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the admin account.
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// The console stays usable if an admin account already exists
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		Lifetime:  cfg.SessionLifetime(),
		Issuer:    cfg.Session.Issuer,
	})

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, cfg.Validation.MaxBirthYear)
	deps.CarService = appServices.NewCarService(deps.Repos.CarRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.SessionService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.AuthMiddleware, cfg.Session.Secure)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CarController = appControllers.NewCarController(deps.CarService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(appMiddleware.Recovery())

	router.LoadHTMLGlob("templates/*.html")

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CarController,
		deps.SubjectController,
		deps.AuthMiddleware,
	)

	return router
}
