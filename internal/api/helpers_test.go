package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foliocms/internal/auth"
	"foliocms/internal/config"
	"foliocms/internal/content"
	"foliocms/internal/database"
	"foliocms/internal/session"
)

var testDBCounter atomic.Int64

const testCookieName = "foliocms_session"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	stores *content.Stores
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stores := content.NewStores(db)
	sessions := session.NewMemoryStore()

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: testCookieName},
		Auth:    config.AuthConfig{LoginRateLimitPerHour: 100},
	}

	router := NewRouter(logger)
	RegisterRoutes(router, db, stores, sessions, nil, logger, cfg)

	return &testEnv{router: router, db: db, stores: stores}
}

func (e *testEnv) createUser(t *testing.T, username, password string, isAdmin bool) database.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := database.User{Username: username, PasswordHash: hashed, IsAdmin: isAdmin}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := e.doJSON(t, http.MethodPost, "/api/login", map[string]string{"username": username, "password": password}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %q: status %d, body %s", username, rec.Code, rec.Body.String())
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return decoded
}
