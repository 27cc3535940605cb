package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noteboard-be/internal/bootstrap"
	"noteboard-be/internal/config"
	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t   *testing.T
	srv *Server
	cfg *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "development",
			CorsAllowedOrigins: "*",
			EventsTopic:        "noteboard.events.test",
		},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Auth: config.AuthConfig{
			JWTSecret:              "test-secret",
			JWTIssuer:              "https://noteboard.test",
			AccessTokenTTL:         time.Hour,
			LegacyPlaintextEnabled: true,
			BcryptCost:             4,
		},
		RateLimit: config.RateLimitConfig{
			Backend:    config.RateLimitMemory,
			LoginRPS:   100,
			LoginBurst: 100,
			Window:     time.Minute,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	uowFactory := memory.NewRepositoryFactory(memory.NewStore())
	container := bootstrap.NewContainer(context.Background(), cfg, uowFactory, logger.NewNopLogger())
	t.Cleanup(container.Close)

	return &testServer{t: t, srv: New(cfg, container), cfg: cfg}
}

func (ts *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	ts.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.GetApp().Test(req, -1)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(ts.t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(ts.t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func (ts *testServer) register(username, password, role string) dto.UserResponse {
	ts.t.Helper()

	status, env := ts.do(http.MethodPost, "/api/users/register", "", dto.RegisterRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
	require.Equal(ts.t, http.StatusCreated, status, env.Message)

	var user dto.UserResponse
	require.NoError(ts.t, json.Unmarshal(env.Data, &user))
	return user
}

func (ts *testServer) login(username, password string) string {
	ts.t.Helper()

	status, env := ts.do(http.MethodPost, "/api/users/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(ts.t, http.StatusOK, status, env.Message)

	var res dto.LoginResponse
	require.NoError(ts.t, json.Unmarshal(env.Data, &res))
	require.NotEmpty(ts.t, res.Token)
	assert.Equal(ts.t, "Bearer", res.TokenType)
	return res.Token
}

func TestHello(t *testing.T) {
	ts := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	resp, err := ts.srv.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello from Noteboard REST", string(body))
}

func TestNotebookFlowForCurrentUser(t *testing.T) {
	cfg := testConfig()
	ts := newTestServer(t, cfg)

	alice := ts.register("alice", "secret", "")
	assert.Equal(t, "user", alice.Role)
	ts.register("bob", "hunter2", "")

	token := ts.login("alice", "secret")

	claims, err := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, time.Hour).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, "user", claims.Role)

	status, env := ts.do(http.MethodPost, "/api/notebooks", token, dto.CreateNotebookRequest{
		Title:       "Groceries",
		Description: "Weekly list",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	var created dto.NotebookResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, alice.Id, created.UserId)

	status, env = ts.do(http.MethodGet, "/api/notebooks/current-user", token, nil)
	require.Equal(t, http.StatusOK, status)

	var mine []dto.NotebookResponse
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "Groceries", mine[0].Title)
	assert.Equal(t, "Weekly list", mine[0].Description)

	bobToken := ts.login("bob", "hunter2")
	status, env = ts.do(http.MethodGet, "/api/notebooks/current-user", bobToken, nil)
	require.Equal(t, http.StatusOK, status)

	var theirs []dto.NotebookResponse
	require.NoError(t, json.Unmarshal(env.Data, &theirs))
	assert.Empty(t, theirs)

	// listing and showing notebooks is public
	status, _ = ts.do(http.MethodGet, "/api/notebooks/"+created.Id.String(), "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestNoteAndTagFlow(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.register("alice", "secret", "")
	token := ts.login("alice", "secret")

	_, env := ts.do(http.MethodPost, "/api/notebooks", token, dto.CreateNotebookRequest{Title: "Work", Description: "Job notes"})
	var nb dto.NotebookResponse
	require.NoError(t, json.Unmarshal(env.Data, &nb))

	status, env := ts.do(http.MethodPost, "/api/notes", token, map[string]interface{}{
		"title":    "Standup",
		"content":  "Yesterday, today, blockers",
		"notebook": map[string]interface{}{"id": nb.Id},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var note dto.NoteResponse
	require.NoError(t, json.Unmarshal(env.Data, &note))

	status, env = ts.do(http.MethodPost, "/api/tags", token, dto.CreateTagRequest{Name: "daily"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var tag dto.TagResponse
	require.NoError(t, json.Unmarshal(env.Data, &tag))

	path := "/api/notes/" + note.Id.String() + "/tags/" + tag.Id.String()
	for i := 0; i < 2; i++ {
		status, env = ts.do(http.MethodPost, path, token, nil)
		require.Equal(t, http.StatusOK, status, env.Message)
	}
	require.NoError(t, json.Unmarshal(env.Data, &note))
	require.Len(t, note.Tags, 1)
	assert.Equal(t, "daily", note.Tags[0].Name)

	status, env = ts.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Empty(t, note.Tags)

	status, _ = ts.do(http.MethodDelete, "/api/notes/"+note.Id.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, env = ts.do(http.MethodGet, "/api/notes/"+note.Id.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error)
}

func TestErrorResponses(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.register("alice", "secret", "")
	ts.register("root", "toor", "admin")
	userToken := ts.login("alice", "secret")
	adminToken := ts.login("root", "toor")

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       interface{}
		wantStatus int
		wantKind   string
	}{
		{"no token on protected route", http.MethodGet, "/api/notes", "", nil, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"garbage token", http.MethodGet, "/api/notes", "not-a-token", nil, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"user on admin route", http.MethodGet, "/api/users", userToken, nil, http.StatusForbidden, "FORBIDDEN"},
		{"admin on admin route", http.MethodGet, "/api/users", adminToken, nil, http.StatusOK, ""},
		{"wrong password", http.MethodPost, "/api/users/login", "", dto.LoginRequest{Username: "alice", Password: "nope"}, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"unknown user", http.MethodPost, "/api/users/login", "", dto.LoginRequest{Username: "mallory", Password: "secret"}, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"duplicate username", http.MethodPost, "/api/users/register", "", dto.RegisterRequest{Username: "alice", Password: "x"}, http.StatusBadRequest, "DUPLICATE_VALUE"},
		{"note without notebook", http.MethodPost, "/api/notes", userToken, map[string]string{"title": "t", "content": "c"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad uuid", http.MethodGet, "/api/notes/123", userToken, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown route", http.MethodGet, "/api/nothing", "", nil, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := ts.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantKind != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantKind, env.Error)
				assert.Equal(t, tt.wantStatus, env.Code)
			}
		})
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.LoginRPS = 0.001
	cfg.RateLimit.LoginBurst = 2
	ts := newTestServer(t, cfg)

	creds := dto.LoginRequest{Username: "ghost", Password: "boo"}
	for i := 0; i < 2; i++ {
		status, _ := ts.do(http.MethodPost, "/api/users/login", "", creds)
		assert.Equal(t, http.StatusBadRequest, status)
	}

	status, env := ts.do(http.MethodPost, "/api/users/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error)
}

func TestListPagination(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.register("alice", "secret", "")
	token := ts.login("alice", "secret")
	for _, name := range []string{"one", "two", "three"} {
		status, env := ts.do(http.MethodPost, "/api/tags", token, dto.CreateTagRequest{Name: name})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	get := func(query string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/api/tags"+query, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := ts.srv.GetApp().Test(req, -1)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	resp := get("?limit=2&offset=1&sort=desc")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get("X-Total-Count"))

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var tags []dto.TagResponse
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "two", tags[0].Name)
	assert.Equal(t, "one", tags[1].Name)

	resp = get("?limit=1000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env = envelope{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error)
}

// Role assignment has no allow-list: self-registration and PATCH both accept "admin".
func TestRoleAssignmentIsUnrestricted(t *testing.T) {
	ts := newTestServer(t, testConfig())

	boss := ts.register("boss", "pw", "admin")
	assert.Equal(t, "admin", boss.Role)

	eve := ts.register("eve", "pw", "")
	token := ts.login("eve", "pw")
	status, _ := ts.do(http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, env := ts.do(http.MethodPatch, "/api/users/"+eve.Id.String(), token, map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, status, env.Message)

	token = ts.login("eve", "pw")
	status, _ = ts.do(http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusOK, status)
}
