package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/cache"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/phrazzld/taskboard-api/internal/validation"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client

	// Stores
	userStore     store.UserStore
	categoryStore store.CategoryStore
	priorityStore store.PriorityStore
	boardStore    store.BoardStore
	taskStore     store.TaskStore

	// Services
	jwtService      auth.JWTService
	authService     service.AuthService
	categoryService service.CategoryService
	priorityService service.PriorityService
	boardService    service.BoardService
	taskService     service.TaskService
	existence       *service.ExistenceChecker
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.priorityStore = postgres.NewPostgresPriorityStore(db, logger)
	app.boardStore = postgres.NewPostgresBoardStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	if cfg.Cache.RedisURL != "" {
		app.redis, err = cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.userStore = cache.NewCachedUserStore(app.userStore, app.redis, cfg.Cache.UserListTTL(), logger)
		logger.Info("user directory cache enabled",
			slog.Duration("ttl", cfg.Cache.UserListTTL()))
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.authService = service.NewAuthService(app.userStore, hasher, hasher, app.jwtService, logger)
	app.categoryService = service.NewCategoryService(app.categoryStore, logger)
	app.priorityService = service.NewPriorityService(app.priorityStore, logger)
	app.boardService = service.NewBoardService(app.boardStore, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.existence = service.NewExistenceChecker(
		app.categoryStore,
		app.userStore,
		app.boardStore,
		app.priorityStore,
		logger,
	)

	logger.Info("application initialized successfully")
	return app, nil
}

// setupRouter builds the HTTP handler from the application's services.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Logger:         app.logger,
		Auth:           app.authService,
		Categories:     app.categoryService,
		Priorities:     app.priorityService,
		Boards:         app.boardService,
		Tasks:          app.taskService,
		Tokens:         app.jwtService,
		Gate:           app.existence,
		Validator:      validation.New(),
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
	})
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", slog.String("error", err.Error()))
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}

// runServe backs the serve subcommand.
func runServe(ctx context.Context) error {
	cfg, logger, err := loadAppConfig()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", logger); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(ctx, cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}
