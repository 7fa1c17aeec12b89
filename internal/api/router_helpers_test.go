package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/taskboard-api/internal/api"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/validation"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-characters"

// testClock is shared by the token service and the validator so tests can
// move time forward.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	handler http.Handler
	stores  *mocks.MemoryStores
	clock   *testClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &testClock{now: time.Now().UTC()}
	stores := mocks.NewMemoryStores()

	tokens, err := auth.NewJWTServiceWithClock(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	}, clock.Now)
	require.NoError(t, err)

	hasher := &mocks.MockPasswordHasher{}

	handler := api.NewRouter(api.RouterDeps{
		Logger:     logger,
		Auth:       service.NewAuthService(stores.Users, hasher, hasher, tokens, logger),
		Categories: service.NewCategoryService(stores.Categories, logger),
		Priorities: service.NewPriorityService(stores.Priorities, logger),
		Boards:     service.NewBoardService(stores.Boards, logger),
		Tasks:      service.NewTaskService(stores.Tasks, logger),
		Tokens:     tokens,
		Gate: service.NewExistenceChecker(
			stores.Categories, stores.Users, stores.Boards, stores.Priorities, logger,
		),
		Validator: validation.NewWithClock(clock.Now),
	})

	return &testServer{handler: handler, stores: stores, clock: clock}
}

// do sends a request. body may be nil, a raw string, or any JSON-encodable value.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// signup registers a user and logs in, returning the user id and a token.
func (s *testServer) signup(t *testing.T, name, email string) (string, string) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": email, "password": "secret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.LoginResponse
	decode(t, w, &resp)
	return resp.User.ID, resp.Token
}

// create posts body to path, expects 201 and returns the created id found at
// the top level or under key.
func (s *testServer) create(t *testing.T, path, token, key string, body interface{}) string {
	t.Helper()

	w := s.do(t, http.MethodPost, path, token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]json.RawMessage
	decode(t, w, &resp)
	raw := json.RawMessage(w.Body.Bytes())
	if key != "" {
		raw = resp[key]
	}
	var obj struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &obj))
	require.NotEmpty(t, obj.ID)
	return obj.ID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	decode(t, w, &body)
	return body
}
