package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskmanager/config"
	httpmiddleware "taskmanager/internal/delivery/http/middleware"
	"taskmanager/internal/delivery/http/router"
	"taskmanager/internal/delivery/http/router/handler"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/infra/auth"
	"taskmanager/internal/infra/metrics"
	"taskmanager/internal/infra/persistence/postgres"
	"taskmanager/internal/infra/pubsub"
	"taskmanager/internal/usecase"
	"taskmanager/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

// newTestServer wires the real stack over an in-memory database.
func newTestServer(t *testing.T) (*Server, *testClock) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(ctx, sqlDB, postgres.DialectSQLite))

	secret, err := auth.NewSecret([]byte(testSecret))
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(secret, time.Hour)
	require.NoError(t, err)
	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	clock := &testClock{now: time.Unix(1_700_000_000, 0).UTC()}
	credentials := postgres.NewCredentialRepository(postgres.WithSession(db, logger, false))
	authMetrics := metrics.NewAuthMetrics()

	authUC, err := impl.NewAuthService(credentials, hasher, tokens, pubsub.NewNoopPublisher(logger), authMetrics, service.Clock(clock), logger)
	require.NoError(t, err)
	credentialUC := impl.NewCredentialService(credentials, hasher, logger)

	created, err := credentialUC.EnsureCredential(ctx, &usecase.EnsureCredentialInput{
		Username: "hexlet@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.True(t, created)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	r := router.NewRouter(handler.NewAuthHandler(authUC), httpmiddleware.NewAuthMiddleware(authUC), authMetrics.Handler())

	return NewServer(cfg, logger, r), clock
}

func do(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	return rec
}

func login(t *testing.T, srv *Server, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return do(t, srv, req)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_LoginAndAccessProtectedRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := login(t, srv, "hexlet@example.com", "s3cret-pass")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.Token)
	rec = do(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subject":"hexlet@example.com"`)
}

func TestServer_LoginFailuresAreIndistinguishable(t *testing.T) {
	srv, _ := newTestServer(t)

	wrongPassword := login(t, srv, "hexlet@example.com", "nope")
	unknownUser := login(t, srv, "ghost@example.com", "nope")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestServer_ProtectedRouteRejections(t *testing.T) {
	srv, clock := newTestServer(t)

	rec := login(t, srv, "hexlet@example.com", "s3cret-pass")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	token := body.Data.Token
	tampered := tamperSignature(token)

	tests := []struct {
		name     string
		header   string
		advance  time.Duration
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "UNAUTHORIZED"},
		{name: "placeholder", header: "Bearer null", wantCode: "UNAUTHORIZED"},
		{name: "not compact", header: "Bearer abc", wantCode: "MALFORMED_TOKEN"},
		{name: "tampered signature", header: "Bearer " + tampered, wantCode: "INVALID_SIGNATURE"},
		{name: "expired", header: "Bearer " + token, advance: time.Hour, wantCode: "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := clock.now
			clock.now = clock.now.Add(tt.advance)
			defer func() { clock.now = saved }()

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := do(t, srv, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	login(t, srv, "hexlet@example.com", "nope")
	rec = do(t, srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_password")
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorCode(t, rec))
}

// tamperSignature replaces the first signature character.
func tamperSignature(token string) string {
	i := strings.LastIndex(token, ".") + 1
	replacement := "A"
	if token[i] == 'A' {
		replacement = "B"
	}

	return token[:i] + replacement + token[i+1:]
}
