package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/democratise-ai/backend/auth"
	"github.com/democratise-ai/backend/config"
	"github.com/democratise-ai/backend/database"
	"github.com/democratise-ai/backend/handlers"
	"github.com/democratise-ai/backend/models"
	"github.com/democratise-ai/backend/router"
)

// envelope mirrors the JSON shape every endpoint responds with.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	t      *testing.T
	app    *fiber.App
	db     *gorm.DB
	tokens *auth.TokenService
}

// newTestEnv builds the full application against an in-memory SQLite
// database. A single pooled connection keeps the shared :memory: store
// visible across request transactions.
func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func newTestEnvWith(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	router.SetupRoutes(app, handlers.New(tokens, cfg), cfg, db)

	return &testEnv{t: t, app: app, db: db, tokens: tokens}
}

// createUser inserts an account directly and returns it with a valid
// bearer token.
func (e *testEnv) createUser(name, email string) (*models.User, string) {
	e.t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(e.t, err)

	user := models.User{Name: name, Email: email, PasswordHash: hash, IsActive: true}
	require.NoError(e.t, e.db.Create(&user).Error)

	token, err := e.tokens.Issue(user.Email, 0)
	require.NoError(e.t, err)
	return &user, token
}

func (e *testEnv) request(req *http.Request) (*http.Response, envelope) {
	e.t.Helper()

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	resp.Body.Close()

	var env envelope
	if len(body) > 0 {
		require.NoError(e.t, json.Unmarshal(body, &env), "body: %s", body)
	}
	return resp, env
}

// doJSON sends a JSON request, optionally authenticated.
func (e *testEnv) doJSON(method, path, token string, payload any) (*http.Response, envelope) {
	e.t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(e.t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return e.request(req)
}

// doForm sends a form-encoded request (the login flow).
func (e *testEnv) doForm(method, path string, form url.Values) (*http.Response, envelope) {
	e.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return e.request(req)
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out), "data: %s", env.Data)
	return out
}
