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

	appControllers "github.com/praveenraj/scholarhub/internal/app/controllers"
	appMigrations "github.com/praveenraj/scholarhub/internal/app/migrations"
	appRepos "github.com/praveenraj/scholarhub/internal/app/repositories"
	appRoutes "github.com/praveenraj/scholarhub/internal/app/routes"
	appServices "github.com/praveenraj/scholarhub/internal/app/services"
	"github.com/praveenraj/scholarhub/internal/config"
	"github.com/praveenraj/scholarhub/internal/db"
	appMiddleware "github.com/praveenraj/scholarhub/internal/middleware"
	pkgGenai "github.com/praveenraj/scholarhub/internal/pkg/genai"
	"github.com/praveenraj/scholarhub/internal/pkg/helpers"
	"github.com/praveenraj/scholarhub/internal/pkg/logger"
	"github.com/praveenraj/scholarhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	ScholarshipService    appServices.ScholarshipService
	ApplicationService    appServices.ApplicationService
	ChatService           appServices.ChatService
	AuthController        *appControllers.AuthController
	ScholarshipController *appControllers.ScholarshipController
	ApplicationController *appControllers.ApplicationController
	ChatController        *appControllers.ChatController
	SystemController      *appControllers.SystemController
	Repos                 *appRepos.Repositories
	Generator             pkgGenai.TextGenerator
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Demo data is a convenience, not a startup requirement
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	if cfg.Gemini.APIKey != "" {
		generator, err := pkgGenai.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize Gemini client")
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		deps.Generator = generator
		lgr.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")
	} else {
		// The chat endpoint reports the missing key per request instead
		// of blocking startup.
		lgr.Warn().Msg("GEMINI_API_KEY not set, chatbot endpoint disabled")
	}

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, lgr)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Repos.ScholarshipRepository)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository)
	deps.ChatService = appServices.NewChatService(
		deps.Repos.ChatRepository,
		deps.Generator,
		helpers.ParseDuration(cfg.Gemini.Timeout, 30*time.Second),
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.SystemController = appControllers.NewSystemController(dbPool, lgr)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ScholarshipController,
		deps.ApplicationController,
		deps.ChatController,
		deps.SystemController,
	)

	return router
}
