package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("missing fields are rejected and nothing is stored", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			body     map[string]string
			wantPath string
		}{
			{"missing name", map[string]string{"email": "a@example.com", "password": "secret"}, "name"},
			{"missing email", map[string]string{"name": "Ann", "password": "secret"}, "email"},
			{"missing password", map[string]string{"name": "Ann", "email": "a@example.com"}, "password"},
			{"bad email", map[string]string{"name": "Ann", "email": "nope", "password": "secret"}, "email"},
			{"short password", map[string]string{"name": "Ann", "email": "a@example.com", "password": "abc"}, "password"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				s := newTestServer(t)

				w := s.do(t, http.MethodPost, "/auth/register", "", tt.body)

				require.Equal(t, http.StatusBadRequest, w.Code)
				body := decodeError(t, w)
				assert.Equal(t, api.MessageValidationFailed, body.Error)
				require.NotEmpty(t, body.Issues)
				assert.Equal(t, tt.wantPath, body.Issues[0].Path)
				assert.Equal(t, 0, s.stores.Users.Count())
			})
		}
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)

		w := s.do(t, http.MethodPost, "/auth/register", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, s.stores.Users.Count())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t)
		body := map[string]string{"name": "Ann", "email": "ann@example.com", "password": "secret"}

		first := s.do(t, http.MethodPost, "/auth/register", "", body)
		require.Equal(t, http.StatusCreated, first.Code)
		var created api.RegisterResponse
		decode(t, first, &created)
		assert.Equal(t, "ann@example.com", created.User.Email)
		assert.Equal(t, "Ann", created.User.Name)
		assert.True(t, domain.IsValidID(created.User.ID))
		assert.NotContains(t, first.Body.String(), "password")

		body["email"] = "ANN@example.com"
		second := s.do(t, http.MethodPost, "/auth/register", "", body)
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Equal(t, "Email already registered", decodeError(t, second).Error)
		assert.Equal(t, 1, s.stores.Users.Count())
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.signup(t, "Ann", "ann@example.com")

	wrongPassword := s.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "ann@example.com", "password": "not-it",
	})
	unknownEmail := s.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "bob@example.com", "password": "secret-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, decodeError(t, wrongPassword).Error, decodeError(t, unknownEmail).Error)

	malformed := s.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "not-an-email", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, malformed.Code)
}

func TestAuthGate(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	_, token := s.signup(t, "Ann", "ann@example.com")

	t.Run("missing and forged tokens", func(t *testing.T) {
		for _, tok := range []string{"", "not.a.token"} {
			w := s.do(t, http.MethodGet, "/auth/users", tok, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, middleware.UnauthorizedMessage, decodeError(t, w).Error)
		}
	})

	t.Run("token accepted until expiry", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/auth/users", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var users []api.UserResponse
		decode(t, w, &users)
		require.Len(t, users, 1)
		assert.Equal(t, "ann@example.com", users[0].Email)

		s.clock.Advance(59 * time.Minute)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/auth/users", token, nil).Code)

		s.clock.Advance(2 * time.Minute)
		assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/auth/users", token, nil).Code)
	})
}

func TestCategoryRoutes(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	_, token := s.signup(t, "Ann", "ann@example.com")

	id := s.create(t, "/categories", token, "category", map[string]string{"name": "Work"})
	s.create(t, "/categories/create", token, "category", map[string]string{"name": "Home"})

	w := s.do(t, http.MethodGet, "/categories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Category
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Home", list[0].Name, "newest first")

	w = s.do(t, http.MethodPatch, "/categories/"+id, token, map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, validation.MessageEmptyPatch, decodeError(t, w).Issues[0].Message)

	w = s.do(t, http.MethodPatch, "/categories/"+id, token, map[string]string{"name": "Office"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated api.CategoryResponse
	decode(t, w, &updated)
	assert.Equal(t, "Category updated successfully", updated.Message)
	assert.Equal(t, "Office", updated.Category.Name)

	w = s.do(t, http.MethodDelete, "/categories/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Category deleted successfully"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/categories/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category with id "+id+" not found", decodeError(t, w).Error)

	w = s.do(t, http.MethodGet, "/categories/not-an-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decodeError(t, w).Issues[0].Path)
}

func TestPriorityRoutes(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	_, token := s.signup(t, "Ann", "ann@example.com")

	w := s.do(t, http.MethodPost, "/priorities", token, map[string]interface{}{"name": "High", "type": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "type", decodeError(t, w).Issues[0].Path)

	id := s.create(t, "/priorities/create", token, "priority", map[string]interface{}{"name": "High", "type": 1})

	w = s.do(t, http.MethodPatch, "/priorities/"+id, token, map[string]interface{}{"type": 2})
	require.Equal(t, http.StatusOK, w.Code)
	var updated api.PriorityResponse
	decode(t, w, &updated)
	assert.Equal(t, 2, updated.Priority.Type)
	assert.Equal(t, "High", updated.Priority.Name)
}

func TestBoardRoutes(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	_, token := s.signup(t, "Ann", "ann@example.com")

	w := s.do(t, http.MethodPost, "/boards", token, map[string]string{"name": "Q3", "status": "Paused"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	require.Len(t, body.Issues, 2)

	id := s.create(t, "/boards", token, "", map[string]string{"name": "Roadmap", "description": "Next quarter"})

	w = s.do(t, http.MethodGet, "/boards/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var b domain.Board
	decode(t, w, &b)
	assert.Equal(t, domain.BoardStatusOpen, b.Status)
	require.NotNil(t, b.Description)

	w = s.do(t, http.MethodPut, "/boards/"+id, token, map[string]interface{}{"description": nil, "status": "Closed"})
	require.Equal(t, http.StatusOK, w.Code)
	b = domain.Board{}
	decode(t, w, &b)
	assert.Nil(t, b.Description)
	assert.Equal(t, domain.BoardStatusClosed, b.Status)
	assert.Equal(t, "Roadmap", b.Name)

	w = s.do(t, http.MethodDelete, "/boards/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(t, http.MethodDelete, "/boards/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
