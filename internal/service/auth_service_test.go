package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (AuthService, *mocks.MemoryUserStore, *mocks.MockJWTService) {
	users := mocks.NewMemoryUserStore()
	hasher := &mocks.MockPasswordHasher{}
	tokens := &mocks.MockJWTService{Token: "signed-token"}
	return NewAuthService(users, hasher, hasher, tokens, nil), users, tokens
}

func TestAuthServiceRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _ := newTestAuthService()

	u, err := svc.Register(ctx, "Ada", " Ada@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, mocks.PlainHashPrefix+"secret", u.HashedPassword)

	_, err = svc.Register(ctx, "Imposter", "ada@example.com", "other")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, 1, users.Count())

	_, err = svc.Register(ctx, "Bad", "not-an-email", "secret")
	assert.Equal(t, KindValidation, KindOf(err))

	users.Err = errors.New("connection refused")
	_, err = svc.Register(ctx, "Grace", "grace@example.com", "secret")
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestAuthServiceRegisterHashFailures(t *testing.T) {
	t.Parallel()
	users := mocks.NewMemoryUserStore()

	tooLong := &mocks.MockPasswordHasher{HashErr: auth.ErrPasswordTooLong}
	svc := NewAuthService(users, tooLong, tooLong, &mocks.MockJWTService{}, nil)
	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", strings.Repeat("x", 80))
	assert.Equal(t, KindValidation, KindOf(err))

	broken := &mocks.MockPasswordHasher{HashErr: errors.New("rng failure")}
	svc = NewAuthService(users, broken, broken, &mocks.MockJWTService{}, nil)
	_, err = svc.Register(context.Background(), "Ada", "ada@example.com", "secret")
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Zero(t, users.Count())
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, tokens := newTestAuthService()

	registered, err := svc.Register(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "ADA@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, registered.ID, user.ID)

	_, _, wrongPassword := svc.Login(ctx, "ada@example.com", "guess")
	_, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret")
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)

	var a, b *Error
	require.ErrorAs(t, wrongPassword, &a)
	require.ErrorAs(t, unknownEmail, &b)
	assert.Equal(t, KindUnauthorized, a.Kind)
	assert.Equal(t, a.Kind, b.Kind)
	assert.Equal(t, a.Message, b.Message, "both failures must look identical to the caller")

	tokens.Err = errors.New("signing failed")
	_, _, err = svc.Login(ctx, "ada@example.com", "secret")
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestAuthServiceListUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, users, _ := newTestAuthService()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "secret")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Grace", "grace@example.com", "secret")
	require.NoError(t, err)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Grace", list[0].Name, "newest first")

	users.Err = errors.New("down")
	_, err = svc.ListUsers(ctx)
	assert.Equal(t, KindInternal, KindOf(err))
}
