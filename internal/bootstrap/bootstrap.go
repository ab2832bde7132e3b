package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sauravjha/registrar/docs" // Import generated swagger docs
	appControllers "github.com/sauravjha/registrar/internal/app/controllers"
	"github.com/sauravjha/registrar/internal/app/models"
	appRoutes "github.com/sauravjha/registrar/internal/app/routes"
	appServices "github.com/sauravjha/registrar/internal/app/services"
	"github.com/sauravjha/registrar/internal/app/store"
	"github.com/sauravjha/registrar/internal/config"
	"github.com/sauravjha/registrar/internal/db"
	appMiddleware "github.com/sauravjha/registrar/internal/middleware"
	"github.com/sauravjha/registrar/internal/pkg/logger"
	"github.com/sauravjha/registrar/internal/pkg/metrics"
	"github.com/sauravjha/registrar/internal/seed"
	"github.com/sauravjha/registrar/internal/storage"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store   *store.Store
	Metrics *metrics.Metrics

	CourseTypeService   *appServices.CourseTypeService
	CourseService       *appServices.CourseService
	OfferingService     *appServices.OfferingService
	StudentService      *appServices.StudentService
	RegistrationService *appServices.RegistrationService
	UIService           *appServices.UIService

	CourseTypeController   *appControllers.CourseTypeController
	CourseController       *appControllers.CourseController
	OfferingController     *appControllers.OfferingController
	StudentController      *appControllers.StudentController
	RegistrationController *appControllers.RegistrationController
	UIController           *appControllers.UIController

	Logger zerolog.Logger

	// DB is non-nil only for the postgres storage driver.
	DB *db.PostgresDB
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the snapshot slot selected by the storage driver.
// For the postgres driver it also returns the owning connection pool so the
// caller can close it on shutdown.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Slot, *db.PostgresDB, error) {
	switch cfg.Storage.Driver {
	case "file":
		slot, err := storage.NewFileSlot(cfg.Storage.FilePath, lgr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.FilePath).Msg("Using file snapshot storage")
		return slot, nil, nil

	case "sqlite":
		slot, err := storage.NewSQLiteSlot(cfg.Storage.SQLitePath, lgr)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.SQLitePath).Msg("Using sqlite snapshot storage")
		return slot, nil, nil

	case "postgres":
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		slot, err := storage.NewPostgresSlot(context.Background(), database.Pool, lgr)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to prepare postgres storage: %w", err)
		}
		lgr.Info().Msg("Using postgres snapshot storage")
		return slot, database, nil

	case "memory":
		lgr.Warn().Msg("Using in-memory storage, data will not survive a restart")
		return storage.NewMemorySlot(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes the store, services, and controllers, and
// hydrates the store from the snapshot slot (seeding sample data when the
// slot is empty).
func BuildDependencies(cfg *config.Config, slot storage.Slot, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, DB: database}

	deps.Metrics = metrics.New()
	deps.Store = store.New(slot, lgr,
		store.WithMetrics(deps.Metrics),
		store.WithToastDuration(cfg.ToastDuration()),
	)

	// Hydrate from the previous snapshot, if any. An unreadable snapshot is
	// treated as empty rather than blocking startup.
	snapshot, err := slot.Load(context.Background())
	if err != nil {
		lgr.Warn().Err(err).Msg("Stored snapshot is unreadable, starting empty")
		snapshot = models.Snapshot{}
	}
	if !snapshot.IsEmpty() {
		deps.Store.Dispatch(store.LoadData{Snapshot: snapshot})
		lgr.Info().
			Int("courseTypes", len(snapshot.CourseTypes)).
			Int("courses", len(snapshot.Courses)).
			Int("offerings", len(snapshot.CourseOfferings)).
			Int("students", len(snapshot.Students)).
			Int("registrations", len(snapshot.Registrations)).
			Msg("Snapshot loaded")
	} else {
		seed.CreateDefaultData(deps.Store, lgr)
	}

	// Initialize services
	deps.CourseTypeService = appServices.NewCourseTypeService(deps.Store)
	deps.CourseService = appServices.NewCourseService(deps.Store)
	deps.OfferingService = appServices.NewOfferingService(deps.Store)
	deps.StudentService = appServices.NewStudentService(deps.Store)
	deps.RegistrationService = appServices.NewRegistrationService(deps.Store)
	deps.UIService = appServices.NewUIService(deps.Store)

	// Initialize controllers
	deps.CourseTypeController = appControllers.NewCourseTypeController(deps.CourseTypeService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.OfferingController = appControllers.NewOfferingController(deps.OfferingService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)
	deps.UIController = appControllers.NewUIController(deps.UIService, deps.Store)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry(), promhttp.HandlerOpts{})))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseTypeController,
		deps.CourseController,
		deps.OfferingController,
		deps.StudentController,
		deps.RegistrationController,
		deps.UIController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
