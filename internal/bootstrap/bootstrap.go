package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/registro-academico/internal/app/auth"
	appControllers "github.com/yigit/registro-academico/internal/app/controllers"
	"github.com/yigit/registro-academico/internal/app/jobs"
	appMigrations "github.com/yigit/registro-academico/internal/app/migrations"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	appRepos "github.com/yigit/registro-academico/internal/app/repositories"
	appRoutes "github.com/yigit/registro-academico/internal/app/routes"
	appServices "github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/app/validators"
	"github.com/yigit/registro-academico/internal/config"
	"github.com/yigit/registro-academico/internal/db"
	appMiddleware "github.com/yigit/registro-academico/internal/middleware"
	pkgAuth "github.com/yigit/registro-academico/internal/pkg/auth"
	"github.com/yigit/registro-academico/internal/pkg/email"
	"github.com/yigit/registro-academico/internal/pkg/filestorage"
	"github.com/yigit/registro-academico/internal/pkg/logger"
	"github.com/yigit/registro-academico/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	Validators     *validators.Validators
	AuthMiddleware *appMiddleware.AuthMiddleware
	Scheduler      *jobs.Scheduler
	FileStorage    *filestorage.LocalStorage
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	defer migrator.Close()

	if err := migrator.MigrateUp(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// SeedDefaults creates default roles and the configured administrator
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	err := seed.CreateDefaultData(ctx,
		deps.Repos.Roles,
		deps.Repos.Users,
		pkgAuth.NewPasswordHasher(pkgAuth.DefaultArgon2Params),
		seed.Admin{Email: cfg.Seed.AdminEmail, Password: cfg.Seed.AdminPassword},
		deps.Logger,
	)
	if err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.ImagesURLPrefix)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	mailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, logger.WithComponent("email"))

	deps.Services = appServices.NewServices(appServices.Dependencies{
		Repos:       deps.Repos,
		Hasher:      pkgAuth.NewPasswordHasher(pkgAuth.DefaultArgon2Params),
		Tokens:      jwtService,
		Mailer:      mailer,
		Storage:     deps.FileStorage,
		Recovery:    appServices.RecoveryConfig{PinLength: cfg.Recovery.PinLength, PinTTL: cfg.PinTTL()},
		MaxImageLen: cfg.Upload.MaxImageBytes,
	})

	authorizer, err := appAuth.NewAuthorizer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize authorizer: %w", err)
	}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth, authorizer)

	deps.Scheduler, err = jobs.NewScheduler(cfg.Recovery.CleanupSchedule, deps.Services.Recovery, logger.WithComponent("jobs"))
	if err != nil {
		return nil, err
	}

	deps.Validators = validators.New(validators.Tables{
		Roles:       deps.Repos.Roles,
		Users:       deps.Repos.Users,
		Careers:     deps.Repos.Careers,
		Teachers:    deps.Repos.Teachers,
		Students:    deps.Repos.Students,
		Subjects:    deps.Repos.Subjects,
		Periods:     deps.Repos.Periods,
		Enrollments: deps.Repos.Enrollments,
		Activities:  deps.Repos.Activities,
	})

	deps.Controllers = NewControllers(deps.Services, deps.Repos, dbPool, cfg.Upload.MaxImageBytes)
	return deps, nil
}

// NewControllers builds the handler set mounted by the router
func NewControllers(s *appServices.Services, repos *appRepos.Repositories, pinger appControllers.Pinger, maxImageBytes int64) appRoutes.Controllers {
	return appRoutes.Controllers{
		Roles:       appControllers.NewResourceController[models.Role, dto.RoleRequest](s.Roles),
		Users:       appControllers.NewResourceController[models.User, dto.UserUpdateRequest](s.Users),
		Careers:     appControllers.NewResourceController[models.Career, dto.CareerRequest](s.Careers),
		Teachers:    appControllers.NewResourceController[models.Teacher, dto.TeacherRequest](s.Teachers),
		Students:    appControllers.NewResourceController[models.Student, dto.StudentRequest](s.Students),
		Subjects:    appControllers.NewResourceController[models.Subject, dto.SubjectRequest](s.Subjects),
		Periods:     appControllers.NewResourceController[models.Period, dto.PeriodRequest](s.Periods),
		Enrollments: appControllers.NewResourceController[models.Enrollment, dto.EnrollmentRequest](s.Enrollments),
		Activities:  appControllers.NewResourceController[models.Activity, dto.ActivityRequest](s.Activities),
		Attendance:  appControllers.NewResourceController[models.Attendance, dto.AttendanceRequest](s.Attendance),
		Grades:      appControllers.NewResourceController[models.Grade, dto.GradeRequest](s.Grades),

		Auth:   appControllers.NewAuthController(s.Auth, s.Recovery, logger.WithComponent("auth")),
		Images: appControllers.NewImageController(s.Images, repos.Teachers, repos.Students, maxImageBytes),
		Health: appControllers.NewHealthController(pinger),
	}
}

// RouterOptions are the HTTP concerns configured around the routes
type RouterOptions struct {
	Mode            string
	RateLimit       bool
	RateLimitN      int
	RateLimitWindow time.Duration
	AllowedOrigins  []string
	ImagesURLPrefix string
	ImagesPath      string
	EnableSwagger   bool
	EnableMetrics   bool
}

// RouterOptionsFromConfig derives RouterOptions from the configuration
func RouterOptionsFromConfig(cfg *config.Config) RouterOptions {
	return RouterOptions{
		Mode:            cfg.Server.Mode,
		RateLimit:       cfg.RateLimit.Enabled,
		RateLimitN:      cfg.RateLimit.Requests,
		RateLimitWindow: cfg.RateLimitWindow(),
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		ImagesURLPrefix: cfg.Server.ImagesURLPrefix,
		ImagesPath:      cfg.Server.StoragePath,
		EnableSwagger:   true,
		EnableMetrics:   true,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(opts RouterOptions, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(opts.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(),
		appMiddleware.SecurityHeaders(),
		appMiddleware.CORS(opts.AllowedOrigins),
	)
	if opts.EnableMetrics {
		router.Use(appMiddleware.Metrics())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if opts.EnableSwagger {
		appRoutes.SetupSwagger(router)
	}

	if opts.ImagesPath != "" && opts.ImagesURLPrefix != "" {
		router.Static(opts.ImagesURLPrefix, opts.ImagesPath)
	}

	api := router.Group("/api")
	if opts.RateLimit {
		api.Use(appMiddleware.RateLimit(opts.RateLimitN, opts.RateLimitWindow))
	}
	appRoutes.SetupRouter(api, deps.Controllers, deps.Validators, deps.AuthMiddleware)

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.RespondError(c, http.StatusNotFound, "Ruta no encontrada")
	})

	return router
}
