package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AuthService registers users, logs them in and lists the user directory.
type AuthService interface {
	// Register creates a user. Returns a conflict error if the email is taken.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies credentials and issues a token. Unknown emails and wrong
	// passwords produce the same unauthorized error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// ListUsers returns every registered user, newest first.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type authService struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	tokens   auth.JWTService
	logger   *slog.Logger
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates an AuthService.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	logger *slog.Logger,
) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "auth_service")),
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, Validation("password", "password must be at most 72 bytes", err)
		}
		return nil, Internal("hash password", err)
	}

	user, err := domain.NewUser(name, email, hashed)
	if err != nil {
		return nil, fromDomain("create user", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration rejected: email already registered")
			return nil, Conflict("Email already registered", err)
		}
		log.Error("failed to create user", slog.String("error", redact.Error(err)))
		return nil, Internal("create user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login failed", slog.String("reason", "unknown email"))
			return "", nil, Unauthorized(ErrInvalidCredentials)
		}
		log.Error("failed to look up user for login", slog.String("error", redact.Error(err)))
		return "", nil, Internal("log in", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed",
			slog.String("reason", "password mismatch"),
			slog.String("user_id", user.ID))
		return "", nil, Unauthorized(ErrInvalidCredentials)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token", slog.String("error", redact.Error(err)))
		return "", nil, Internal("issue token", err)
	}
	return token, user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users",
			slog.String("error", redact.Error(err)))
		return nil, Internal("list users", err)
	}
	return users, nil
}
