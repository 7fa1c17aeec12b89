package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/validation"
)

// RouterDeps are the collaborators the HTTP surface is built from.
type RouterDeps struct {
	Logger *slog.Logger

	Auth       service.AuthService
	Categories service.CategoryService
	Priorities service.PriorityService
	Boards     service.BoardService
	Tasks      service.TaskService

	Tokens    auth.JWTService
	Gate      *service.ExistenceChecker
	Validator *validation.Validator

	// AllowedOrigins configures CORS. Empty disables the CORS middleware.
	AllowedOrigins []string
}

// NewRouter builds the application router: standard middleware, the public
// auth routes, and every authenticated resource route.
func NewRouter(deps RouterDeps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware(deps.Logger))
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	v := deps.Validator
	authHandler := NewAuthHandler(deps.Auth)
	authMiddleware := middleware.NewAuthMiddleware(deps.Tokens)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.Logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	// Public
	r.With(ValidateBody[RegisterRequest](v)).Post("/auth/register", authHandler.Register)
	r.With(ValidateBody[LoginRequest](v)).Post("/auth/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/auth/users", authHandler.ListUsers)

		categories := NewCategoryHandler(deps.Categories)
		r.Route("/categories", func(r chi.Router) {
			create := r.With(ValidateBody[CreateCategoryRequest](v))
			create.Post("/", categories.Create)
			create.Post("/create", categories.Create)
			r.Get("/", categories.List)
			r.Get("/{id}", categories.Get)
			r.With(ValidateBody[UpdateCategoryRequest](v)).Patch("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})

		priorities := NewPriorityHandler(deps.Priorities)
		r.Route("/priorities", func(r chi.Router) {
			create := r.With(ValidateBody[CreatePriorityRequest](v))
			create.Post("/", priorities.Create)
			create.Post("/create", priorities.Create)
			r.Get("/", priorities.List)
			r.Get("/{id}", priorities.Get)
			r.With(ValidateBody[UpdatePriorityRequest](v)).Patch("/{id}", priorities.Update)
			r.Delete("/{id}", priorities.Delete)
		})

		boards := NewBoardHandler(deps.Boards)
		r.Route("/boards", func(r chi.Router) {
			r.With(ValidateBody[CreateBoardRequest](v)).Post("/", boards.Create)
			r.Get("/", boards.List)
			r.Get("/{id}", boards.Get)
			update := r.With(ValidateBody[UpdateBoardRequest](v))
			update.Put("/{id}", boards.Update)
			update.Patch("/{id}", boards.Update)
			r.Delete("/{id}", boards.Delete)
		})

		tasks := NewTaskHandler(deps.Tasks)
		r.Route("/tasks", func(r chi.Router) {
			create := r.With(
				ValidateBody[CreateTaskRequest](v),
				CheckReferences(deps.Gate, (*CreateTaskRequest).References),
			)
			create.Post("/", tasks.Create)
			create.Post("/create", tasks.Create)

			r.Get("/", tasks.List)
			r.Get("/user/{id}", tasks.ListBy(func(f *domain.TaskFilter, id string) { f.AssignedTo = id }))
			r.Get("/category/{id}", tasks.ListBy(func(f *domain.TaskFilter, id string) { f.Category = id }))
			r.Get("/priority/{id}", tasks.ListBy(func(f *domain.TaskFilter, id string) { f.Priority = id }))
			r.Get("/creator/{id}", tasks.ListBy(func(f *domain.TaskFilter, id string) { f.CreatedBy = id }))
			r.Get("/status/{status}", tasks.ListByStatus)
			r.Get("/due/{date}", tasks.ListByDueDate)
			r.Get("/{id}", tasks.Get)

			update := r.With(
				ValidateBody[UpdateTaskRequest](v),
				CheckReferences(deps.Gate, (*UpdateTaskRequest).References),
			)
			update.Put("/{id}", tasks.Update)
			update.Patch("/{id}", tasks.Update)
			r.Patch("/{id}/complete", tasks.Complete)
			r.Delete("/{id}", tasks.Delete)
		})
	})

	return r
}
