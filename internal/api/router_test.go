package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xero1ghost/arcania-backend/internal/config"
	"github.com/xero1ghost/arcania-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := config.Config{
		Port:        "8080",
		Environment: "test",
		CORS: cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		},
	}
	return NewRouter(cfg, db)
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// The full client workflow: signup, pre-login salt fetch, login, vault
// save and read, account deletion, and the post-deletion not-founds.
func TestAccountLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/signup",
		`{"email":"a@x.com","authSalt":"s1","encryptionSalt":"s2","authHash":"h1","masterPasswordCheckHash":"h3"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodGet, "/api/get-salts/a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authSalt":"s1"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/login", `{"email":"a@x.com","providedAuthHash":"h1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/api/login", `{"email":"a@x.com","providedAuthHash":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodGet, "/api/get-unlock-data/a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"encryptionSalt":"s2","masterPasswordCheckHash":"h3"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/save-vault/a@x.com", `[{"id":1}]`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/get-vault/a@x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1}]`, w.Body.String())

	w = do(router, http.MethodPost, "/api/delete-account", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/get-vault/a@x.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestUnknownRouteIsJSON(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/nope", "/api/nope"} {
		w := do(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "path: %s", path)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://arcania.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// Path emails arrive URL-encoded from browsers; the mux decodes them
// before lookup.
func TestEscapedEmailPath(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/signup",
		`{"email":"a+tag@x.com","authSalt":"s1","encryptionSalt":"s2","authHash":"h1","masterPasswordCheckHash":"h3"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodGet, "/api/get-salts/a%2Btag%40x.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authSalt":"s1"}`, w.Body.String())
}
