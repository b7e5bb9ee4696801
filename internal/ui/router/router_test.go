package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/notifier"
)

func setupTestRouter(t *testing.T, isDev bool) chi.Router {
	t.Helper()

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	store := sessions.NewCookieStore([]byte("test-secret"))
	require.NoError(t, SetupRoutes(router, cfg, store, nil, notifier.NewHub(), isDev))
	return router
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestAllPagesRoute(t *testing.T) {
	router := setupTestRouter(t, false)

	pages := []string{
		"/", "/conditions", "/services", "/about", "/team", "/faq",
		"/insurances", "/appointments", "/contact", "/blog",
		"/anxiety", "/depression", "/adhd", "/ocd", "/bipolar",
		"/ptsd", "/schizophrenia",
		"/medication", "/evaluation", "/therapy", "/telepsychiatry",
	}
	for _, path := range pages {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
		assert.Contains(t, rec.Body.String(), "site-header", "GET %s should render the shared layout", path)
	}
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	router := setupTestRouter(t, false)

	rec := get(t, router, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := rec.Body.String()
	// The 404 is a full page with the site layout, not a bare error.
	assert.Contains(t, body, "Page not found")
	assert.Contains(t, body, "site-header")
	assert.Contains(t, body, "site-footer")
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t, false)

	rec := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReloadEndpointsOnlyInDev(t *testing.T) {
	prod := setupTestRouter(t, false)
	rec := get(t, prod, "/hotreload")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	dev := setupTestRouter(t, true)
	rec = get(t, dev, "/hotreload")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestHotReloadBroadcastsToHub(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	hub := notifier.NewHub()
	router := chi.NewRouter()
	store := sessions.NewCookieStore([]byte("test-secret"))
	require.NoError(t, SetupRoutes(router, cfg, store, nil, hub, true))

	pings := hub.Subscribe()
	defer hub.Unsubscribe(pings)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotreload", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-pings:
	default:
		t.Fatal("hotreload should ping reload subscribers")
	}
}
