package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Malex1718/expressBookReviews/internal/api/http/handlers"
	"github.com/Malex1718/expressBookReviews/internal/auth"
	"github.com/Malex1718/expressBookReviews/internal/config"
	"github.com/Malex1718/expressBookReviews/internal/events"
	"github.com/Malex1718/expressBookReviews/internal/observability"
	"github.com/Malex1718/expressBookReviews/internal/repository"
	"github.com/Malex1718/expressBookReviews/internal/service"
	"github.com/Malex1718/expressBookReviews/internal/session"
)

const testCookie = "session_id"

func newTestApp(t *testing.T) *fiber.App {
	return newTestAppWithOptions(t, 0, nil)
}

func newTestAppWithOptions(t *testing.T, delay time.Duration, metrics *observability.Metrics) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App:     config.AppConfig{Name: "book-review-service", Version: "test"},
		Session: config.SessionConfig{Backend: "memory", CookieName: testCookie},
		Auth:    config.AuthConfig{JWTSecret: "access", AccessTokenTTLMinutes: 60},
	}

	catalogRepo := repository.NewCatalogRepository(repository.DefaultSeed())
	userRepo := repository.NewUserRepository()
	sessions := session.NewMemoryStore()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessions,
		Dispatcher:   dispatcher,
	})

	registry := prometheus.NewRegistry()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions),
		Users:          handlers.NewUsersHandler(authService, testCookie),
		Books:          handlers.NewBooksHandler(service.NewCatalogService(catalogRepo)),
		Reviews:        handlers.NewReviewsHandler(service.NewReviewService(catalogRepo, dispatcher)),
		SessionGate:    auth.NewSessionGate(authService.TokenManager(), sessions, testCookie),
		MetricsGather:  registry,
		SimulatedDelay: delay,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/register",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must set the session cookie")
	return cookie
}

func TestPublicCatalogRoutes(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp), 10)

	resp = doJSON(t, app, http.MethodGet, "/isbn/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	book := decodeBody(t, resp)
	assert.Equal(t, "Things Fall Apart", book["title"])

	resp = doJSON(t, app, http.MethodGet, "/isbn/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/author/achebe", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp), 1)

	resp = doJSON(t, app, http.MethodGet, "/author/nobody", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/title/pride", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/review/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/stats", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody(t, resp)
	assert.Equal(t, float64(10), stats["total_books"])

	resp = doJSON(t, app, http.MethodGet, "/search?author=achebe", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp), 1)
}

func TestRegisterValidationStatuses(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
	}{
		{"missing fields", map[string]string{"username": "alice"}, http.StatusBadRequest},
		{"invalid username", map[string]string{"username": "a!", "password": "pass1234"}, http.StatusBadRequest},
		{"weak password", map[string]string{"username": "alice", "password": "abc"}, http.StatusBadRequest},
		{"valid", map[string]string{"username": "alice", "password": "pass1234"}, http.StatusOK},
		{"duplicate", map[string]string{"username": "alice", "password": "pass1234"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/register", tt.body, nil)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestLoginStatuses(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/register",
		map[string]string{"username": "alice", "password": "pass1234"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login",
		map[string]string{"username": "alice", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login",
		map[string]string{"username": "alice"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login",
		map[string]string{"username": "alice", "password": "pass1234"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
}

func TestReviewLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	// gate rejects anonymous mutation
	resp := doJSON(t, app, http.MethodPut, "/auth/review/1?review=Great", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cookie := login(t, app, "alice", "pass1234")

	resp = doJSON(t, app, http.MethodPut, "/auth/review/1?review=Great+book", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/review/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reviews := decodeBody(t, resp)
	assert.Contains(t, reviews, "alice")

	resp = doJSON(t, app, http.MethodGet, "/auth/reviews", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// missing review text
	resp = doJSON(t, app, http.MethodPut, "/auth/review/1", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unknown book
	resp = doJSON(t, app, http.MethodPut, "/auth/review/99?review=lost", nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/auth/review/1", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// nothing left to delete
	resp = doJSON(t, app, http.MethodDelete, "/auth/review/1", nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/auth/reviews", nil, cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app, "alice", "pass1234")

	resp := doJSON(t, app, http.MethodPost, "/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/auth/review/1?review=too+late", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDelayedRoutesMirrorReads(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/async/books", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Len(t, body["data"], 10)

	resp = doJSON(t, app, http.MethodGet, "/promise/isbn/1", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/promise/isbn/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSimulatedDelayOnlyAffectsDemoRoutes(t *testing.T) {
	const delay = 150 * time.Millisecond
	app := newTestAppWithOptions(t, delay, nil)
	cookie := login(t, app, "alice", "pass1234")

	start := time.Now()
	resp := doJSON(t, app, http.MethodPut, "/auth/review/1?review=Great+book", nil, cookie)
	elapsed := time.Since(start)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Less(t, elapsed, delay,
		"authenticated routes must not sleep when the demo delay is configured")

	start = time.Now()
	resp = doJSON(t, app, http.MethodGet, "/async/books", nil, nil)
	elapsed = time.Since(start)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, elapsed, delay, "demo routes honor the configured delay")
}

func TestErrorResponsesRecordedWithMappedStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	app := newTestAppWithOptions(t, 0, metrics)

	resp := doJSON(t, app, http.MethodGet, "/isbn/99", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	families, err := registry.Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() != "bookreviews_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := make(map[string]string)
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["path"] == "/isbn/99" && labels["status"] == "404" {
				found = true
				assert.Equal(t, float64(1), metric.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found, "request counter carries the mapped error status, not 200")
}

func TestHealthRoutes(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
